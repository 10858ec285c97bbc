package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMuted)
	helpStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
)

func newScratchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scratch",
		Short: "Type a note and watch dates, clusters and repeats as you go",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			return startScratch(app)
		},
	}
}

func startScratch(app *App) error {
	defer app.sync()
	_, err := tea.NewProgram(newScratchModel(app), tea.WithAltScreen()).Run()
	return err
}

type scratchModel struct {
	app    *App
	input  textinput.Model
	ref    time.Time
	result analysis
	width  int
}

func newScratchModel(app *App) scratchModel {
	input := textinput.New()
	input.Placeholder = "Colton starts school on September 2nd #home"
	input.CharLimit = 500
	input.Focus()
	ref, _ := app.Reference("")
	return scratchModel{
		app:    app,
		input:  input,
		ref:    ref,
		result: analyzeText("", ref, app.Config.Clusters),
	}
}

func (m scratchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m scratchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+u":
			m.input.SetValue("")
			m.result = analyzeText("", m.ref, m.app.Config.Clusters)
			return m, nil
		}
	}
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.result = analyzeText(m.input.Value(), m.ref, m.app.Config.Clusters)
	}
	return m, cmd
}

func (m scratchModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("daybook scratch"))
	b.WriteString(helpStyle.Render("  today " + m.ref.Format("2006-01-02")))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(m.input.View()))
	b.WriteString("\n\n")

	width := max(m.width-4, 0)
	b.WriteString(labelStyle.Render("Events") + "\n")
	if len(m.result.Events) == 0 {
		b.WriteString(helpStyle.Render("  none") + "\n")
	}
	for _, ev := range m.result.Events {
		fmt.Fprintf(&b, "  %s  %s\n", ev.Date, wrapIndent(ev.Title, width, strings.Repeat(" ", 14)))
	}

	b.WriteString(labelStyle.Render("Clusters") + "\n")
	if len(m.result.Clusters) == 0 {
		b.WriteString(helpStyle.Render("  none") + "\n")
	} else {
		b.WriteString("  " + strings.Join(m.result.Clusters, ", ") + "\n")
	}

	b.WriteString(labelStyle.Render("Repeats") + "\n")
	if m.result.Recurrence == nil {
		b.WriteString(helpStyle.Render("  none") + "\n")
	} else {
		fmt.Fprintf(&b, "  %s %s\n", m.result.Recurrence.Text, helpStyle.Render(m.result.Recurrence.Rule))
	}

	b.WriteString("\n" + helpStyle.Render("esc quit • ctrl+u clear"))
	return b.String()
}
