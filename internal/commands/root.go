package commands

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/app"
)

// Version is set at build time via ldflags
var Version = "dev"

type rootOptions struct {
	envFile string
	out     io.Writer
	now     func() time.Time
}

func (o *rootOptions) config() (*app.Config, error) {
	return app.LoadConfig(o.envFile)
}

// NewRootCommand assembles the fullbleed-calendar command tree
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &rootOptions{out: out, now: time.Now}

	root := &cobra.Command{
		Use:           "fullbleed-calendar",
		Short:         "Typographic month and year calendar",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Optional .env file read before the environment")

	root.AddCommand(
		newServeCommand(opts),
		newPrintCommand(opts),
		newPosterCommand(opts),
		newBrowseCommand(opts),
	)
	return root
}

// monthFlag converts a 1-12 flag value into a 0-based month, where 0 on
// the flag means "current month"
func monthFlag(flagValue int, now time.Time) int {
	if flagValue == 0 {
		return int(now.Month()) - 1
	}
	return flagValue - 1
}

// yearFlag returns the flag value, or the current year when unset
func yearFlag(flagValue int, now time.Time) int {
	if flagValue == 0 {
		return now.Year()
	}
	return flagValue
}
