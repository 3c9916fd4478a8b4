package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/catalogr/internal/core"
	"github.com/inovacc/catalogr/internal/model"
)

const fmtField = " %s\n %s\n\n"

var (
	focusedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle    = focusedStyle
	noStyle        = lipgloss.NewStyle()
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	successStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	helpStyleForms = blurredStyle

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Submit"))
)

type signInResultMsg struct {
	session *model.Session
	err     error
}

// LoginModel is the Bubbletea model for the sign-in form.
type LoginModel struct {
	focusIndex int
	inputs     []textinput.Model
	spinner    spinner.Model
	sessions   *core.SessionManager
	busy       bool
	errText    string
	session    *model.Session
}

// NewLoginModel creates a new sign-in form bound to a session manager.
func NewLoginModel(sessions *core.SessionManager) *LoginModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = focusedStyle

	m := &LoginModel{
		inputs:   make([]textinput.Model, 2),
		spinner:  s,
		sessions: sessions,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 128

		switch i {
		case 0:
			t.Placeholder = "name@example.com"
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case 1:
			t.Placeholder = "password"
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}

		m.inputs[i] = t
	}

	return m
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signInResultMsg:
		m.busy = false

		if msg.err != nil {
			// Stay on the form so the operator can correct and retry
			m.errText = msg.err.Error()

			return m, nil
		}

		m.session = msg.session

		return m, tea.Quit

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			if m.busy {
				return m, nil
			}

			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				m.busy = true
				m.errText = ""

				return m, tea.Batch(m.spinner.Tick, m.signIn)
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle

					continue
				}

				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *LoginModel) signIn() tea.Msg {
	sess, err := m.sessions.SignIn(context.Background(), m.inputs[0].Value(), m.inputs[1].Value())

	return signInResultMsg{session: sess, err: err}
}

func (m *LoginModel) View() string {
	if m.session != nil {
		return successStyle.Render("\n  ✓ Signed in.\n\n")
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	s := headerStyle.Render("Sign in to the catalog API") + "\n\n"
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Username (email):"), m.inputs[0].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Password:"), m.inputs[1].View())

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", *button)

	if m.busy {
		s += m.spinner.View() + " Signing in...\n\n"
	}

	if m.errText != "" {
		s += errorStyle.Render(" ✗ "+m.errText) + "\n\n"
	}

	s += helpStyleForms.Render(" tab/shift+tab: navigate • enter: submit • esc: quit")

	return s
}

// Session returns the signed-in session, or nil when the form was
// cancelled or sign-in never succeeded.
func (m *LoginModel) Session() *model.Session {
	return m.session
}
