package commands

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/calendar"
	"github.com/klabast/wb-services/fullbleed-calendar/internal/render"
)

const (
	monthHelp = "←/→ month · y year view · t today · q quit"
	yearHelp  = "←/→ pick month · ↑/↓ year · enter open · y month view · q quit"
)

// browser is the interactive navigator. It owns the single display state
// and rebuilds the visible grid after every key.
type browser struct {
	state  calendar.State
	today  calendar.Date
	cursor int
	styles render.Styles
}

func newBrowser(today calendar.Date, styles render.Styles) browser {
	return browser{
		state:  calendar.NewState(today),
		today:  today,
		cursor: today.Month,
		styles: styles,
	}
}

func (b browser) Init() tea.Cmd { return nil }

func (b browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return b, tea.Quit
	case "y", "tab":
		b.state = b.state.ToggleView()
		b.cursor = b.state.Month
		return b, nil
	case "t":
		b.state = calendar.State{Date: b.today, View: b.state.View}
		b.cursor = b.today.Month
		return b, nil
	}

	if b.state.View == calendar.ViewYear {
		return b.updateYear(key.String()), nil
	}
	return b.updateMonth(key.String()), nil
}

func (b browser) updateMonth(key string) browser {
	switch key {
	case "left", "h":
		b.state = b.state.Prev()
	case "right", "l":
		b.state = b.state.Next()
	}
	return b
}

func (b browser) updateYear(key string) browser {
	switch key {
	case "left", "h":
		b.cursor = (b.cursor + calendar.MonthsPerYear - 1) % calendar.MonthsPerYear
	case "right", "l":
		b.cursor = (b.cursor + 1) % calendar.MonthsPerYear
	case "up", "k":
		b.state = b.state.Prev()
	case "down", "j":
		b.state = b.state.Next()
	case "enter":
		if next, err := b.state.SelectMonth(b.cursor); err == nil {
			b.state = next
		}
	}
	return b
}

func (b browser) View() string {
	var sb strings.Builder
	if b.state.View == calendar.ViewYear {
		sb.WriteString(render.YearText(b.state.Year, calendar.BuildYear(b.state.Year), b.cursor, b.styles))
		sb.WriteString("\n" + yearHelp + "\n")
	} else {
		sb.WriteString(render.MonthText(b.state.Date, calendar.MustBuildMonth(b.state.Year, b.state.Month), b.styles))
		sb.WriteString("\n" + monthHelp + "\n")
	}
	return sb.String()
}

func newBrowseCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Navigate the calendar interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newBrowser(calendar.Today(opts.now()), render.ColorStyles())
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
}
