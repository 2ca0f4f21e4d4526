// Package tui implements the interactive theme picker.
package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hueforge/huebuild/internal/models"
	"github.com/hueforge/huebuild/internal/state"
	"github.com/hueforge/huebuild/internal/themes"
	"github.com/hueforge/huebuild/internal/tui/styles"
	"github.com/hueforge/huebuild/internal/validate"
)

// Config wires the picker to its collaborators.
type Config struct {
	Set    themes.Set
	Holder *state.Holder
}

// Run launches the picker and blocks until it exits.
func Run(cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type entry struct {
	def    *themes.Definition
	result models.ValidationResult
}

type model struct {
	width   int
	height  int
	holder  *state.Holder
	entries []entry
	cursor  int
	styles  styles.Styles
}

func newModel(cfg Config) model {
	ids := make([]string, 0, len(cfg.Set))
	for id := range cfg.Set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	results := validate.ValidateThemes(cfg.Set.Themes())

	entries := make([]entry, 0, len(ids))
	cursor := 0
	active := cfg.Holder.State().ColorTheme
	for i, id := range ids {
		entries = append(entries, entry{def: cfg.Set[id], result: results[id]})
		if id == active {
			cursor = i
		}
	}

	m := model{
		holder:  cfg.Holder,
		entries: entries,
		cursor:  cursor,
	}
	m.styles = m.stylesForCursor()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.styles = m.stylesForCursor()
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.styles = m.stylesForCursor()
			}
		case "enter", " ":
			if len(m.entries) > 0 {
				m.holder.SetColorTheme(m.entries[m.cursor].def.ID)
			}
		case "d":
			m.holder.ToggleDarkMode()
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	snapshot := m.holder.State()

	lines := []string{
		m.styles.Title.Render("huebuild theme picker"),
		"",
	}

	for i, e := range m.entries {
		marker := "  "
		if e.def.ID == snapshot.ColorTheme {
			marker = m.styles.Accent.Render("* ")
		}

		name := fmt.Sprintf("%s (%s)", e.def.Name, e.def.ID)
		if i == m.cursor {
			name = m.styles.Focus.Render("> " + name)
		} else {
			name = m.styles.Text.Render("  " + name)
		}

		badge := m.styles.Success.Render("ok")
		if !e.result.Valid {
			badge = m.styles.Error.Render(fmt.Sprintf("%d error(s)", len(e.result.Errors)))
		} else if len(e.result.Warnings) > 0 {
			badge = m.styles.Warning.Render(fmt.Sprintf("%d warning(s)", len(e.result.Warnings)))
		}

		lines = append(lines, fmt.Sprintf("%s%s  %s", marker, name, badge))
	}

	lines = append(lines, "",
		m.styles.Muted.Render(fmt.Sprintf("active: %s  dark: %v", snapshot.ColorTheme, snapshot.DarkMode)),
		m.styles.Muted.Render("enter select | d dark mode | q quit"),
	)

	return strings.Join(lines, "\n") + "\n"
}

func (m model) stylesForCursor() styles.Styles {
	if len(m.entries) == 0 {
		return styles.DefaultStyles()
	}
	return styles.BuildStyles(styles.FromTheme(m.entries[m.cursor].def.Theme))
}
