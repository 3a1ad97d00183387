// Package tui implements the interactive choice picker on Bubbletea.
//
// The picker is a single cursor list following the Elm architecture:
// the model holds the choices and a cursor, Update moves the cursor or
// resolves the selection, View renders the list with clickable URLs.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/repohome-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/repohome-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
)

// Model is the picker's Bubbletea model.
type Model struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	project string
	choices []domain.Choice
	cursor  int

	// selected holds the resolved choice after Select; nil until then.
	selected *domain.Choice

	// cancelled is set when the user dismissed the picker.
	cancelled bool

	width  int
	height int
}

// NewModel creates a picker model over the given choices.
func NewModel(project string, choices []domain.Choice, s *styles.Styles) Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return Model{
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		project: project,
		choices: choices,
		width:   80,
		height:  24,
	}
}

// Init initialises the picker.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			choice := m.choices[m.cursor]
			if choice.IsCancel() {
				m.cancelled = true
			} else {
				m.selected = &choice
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the picker.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("repohome"))
	if m.project != "" {
		b.WriteString(m.styles.Help.Render("  " + m.project))
	}
	b.WriteString("\n\n")

	for i, choice := range m.choices {
		cursor := "  "
		style := m.styles.Normal
		if i == m.cursor {
			cursor = "> "
			style = m.styles.Selected
		}

		b.WriteString(cursor + style.Render(choice.Label))
		if choice.URL != "" {
			link := styles.Hyperlink(choice.URL, choice.URL)
			b.WriteString("  " + m.styles.URL.Render(link))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("[j/k] Navigate  [Enter] Open  [Esc] Cancel"))

	return b.String()
}

// Selected returns the resolved choice, or nil when none was made.
func (m Model) Selected() *domain.Choice {
	return m.selected
}

// Cancelled returns true when the picker was dismissed.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Ensure Prompter implements the interface.
var _ driven.Prompter = (*Prompter)(nil)

// Prompter runs the picker as a Bubbletea program.
type Prompter struct {
	styles  *styles.Styles
	project string
}

// NewPrompter creates a picker prompter. project is shown in the header
// and may be empty.
func NewPrompter(project string) *Prompter {
	return &Prompter{styles: styles.DefaultStyles(), project: project}
}

// Pick shows the choices and blocks until the user selects one.
func (p *Prompter) Pick(ctx context.Context, choices []domain.Choice) (domain.Choice, error) {
	program := tea.NewProgram(
		NewModel(p.project, choices, p.styles),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return domain.Choice{}, domain.ErrCancelled
		}
		return domain.Choice{}, err
	}

	m, ok := final.(Model)
	if !ok || m.Cancelled() || m.Selected() == nil {
		return domain.Choice{}, domain.ErrCancelled
	}
	return *m.Selected(), nil
}
