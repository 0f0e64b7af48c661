package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	reasonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
)

// promptModel is the bubbletea model for one prompt. The validation
// reason is re-computed on every keystroke and shown under the input;
// enter is accepted only while the current value validates.
type promptModel struct {
	title        string
	defaultValue string
	validate     Validator

	input     textinput.Model
	reason    string
	cancelled bool
	done      bool
}

func newPromptModel(title, defaultValue string, validate Validator) promptModel {
	ti := textinput.New()
	ti.Placeholder = defaultValue
	ti.Focus()

	return promptModel{
		title:        title,
		defaultValue: defaultValue,
		validate:     validate,
		input:        ti,
	}
}

// value returns the entered text, falling back to the default.
func (m promptModel) value() string {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		return m.defaultValue
	}
	return v
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if m.validate(m.value()) == "" {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reason = m.validate(m.value())
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	if m.defaultValue != "" {
		b.WriteString(" " + hintStyle.Render("("+m.defaultValue+")"))
	}
	b.WriteString("\n" + m.input.View() + "\n")
	if m.reason != "" {
		b.WriteString(reasonStyle.Render("  "+m.reason) + "\n")
	}
	b.WriteString(hintStyle.Render("  [enter] accept   [esc] cancel") + "\n")
	return b.String()
}
