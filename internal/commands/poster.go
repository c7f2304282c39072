package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
	"github.com/klabast/wb-services/fullbleed-calendar/internal/render"
)

func newPosterCommand(opts *rootOptions) *cobra.Command {
	var (
		year, month int
		out         string
		dark        bool
	)

	cmd := &cobra.Command{
		Use:   "poster",
		Short: "Render a month (or, with --month 0, a year) as a PNG poster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 {
				if err := calendar.ValidateMonth(month - 1); err != nil {
					return err
				}
			}

			cfg, err := opts.config()
			if err != nil {
				return err
			}
			fonts, err := render.LoadFonts()
			if err != nil {
				return err
			}

			posterOpts := render.PosterOptions{Width: cfg.PosterWidth, Height: cfg.PosterHeight, Dark: dark}
			y := yearFlag(year, opts.now())

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer f.Close()

			if month == 0 {
				err = fonts.WriteYearPoster(f, y, posterOpts)
			} else {
				err = fonts.WriteMonthPoster(f, calendar.Date{Year: y, Month: month - 1}, posterOpts)
			}
			if err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Poster written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current year)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12; 0 renders the whole year")
	cmd.Flags().StringVarP(&out, "out", "o", "calendar.png", "Output file")
	cmd.Flags().BoolVar(&dark, "dark", false, "Use the dark palette")
	return cmd
}
