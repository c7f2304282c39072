package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
	"github.com/klabast/wb-services/fullbleed-calendar/internal/render"
)

func newPrintCommand(opts *rootOptions) *cobra.Command {
	var (
		year, month  int
		view, format string
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print a month or year grid",
		Example: `  fullbleed-calendar print --year 2023 --month 1
  fullbleed-calendar print --view year --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := calendar.ParseView(view)
			if err != nil {
				return err
			}
			now := opts.now()
			d := calendar.Date{Year: yearFlag(year, now), Month: monthFlag(month, now)}

			out := cmd.OutOrStdout()
			if format == render.FormatText {
				return printText(out, v, d)
			}
			if v == calendar.ViewYear {
				return render.ExportYear(out, format, d.Year, calendar.BuildYear(d.Year))
			}
			grid, err := calendar.BuildMonth(d.Year, d.Month)
			if err != nil {
				return err
			}
			return render.ExportMonth(out, format, d, grid)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current year)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current month)")
	cmd.Flags().StringVar(&view, "view", "month", "month or year")
	cmd.Flags().StringVar(&format, "format", render.FormatText, "txt, csv or json")
	return cmd
}

// printText renders with colour when out is a terminal, warning when the
// terminal is narrower than the layout
func printText(out io.Writer, v calendar.View, d calendar.Date) error {
	styles := render.PlainStyles()
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		styles = render.ColorStyles()

		need := render.MonthWidth()
		if v == calendar.ViewYear {
			need = render.YearWidth()
		}
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width < need {
			fmt.Fprintf(os.Stderr, "⚠️  Terminal is %d columns wide, layout needs %d\n", width, need)
		}
	}

	var text string
	if v == calendar.ViewYear {
		text = render.YearText(d.Year, calendar.BuildYear(d.Year), -1, styles)
	} else {
		grid, err := calendar.BuildMonth(d.Year, d.Month)
		if err != nil {
			return err
		}
		text = render.MonthText(d, grid, styles)
	}

	_, err := io.WriteString(out, text)
	return err
}
