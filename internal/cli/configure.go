package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/catalogr/internal/database"
	"github.com/inovacc/catalogr/internal/model"
)

type ConfigureModel struct {
	focusIndex int
	inputs     []textinput.Model
	db         database.Store
	Saved      bool
	Err        error
}

func NewConfigureModel(db database.Store) (ConfigureModel, error) {
	// Load existing config or defaults
	cfg, err := db.GetConfig()
	if err != nil {
		return ConfigureModel{}, err
	}

	m := ConfigureModel{
		inputs: make([]textinput.Model, 3),
		db:     db,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256

		switch i {
		case 0:
			t.Placeholder = "https://ec-course-api.hexschool.io/v2"
			t.SetValue(cfg.APIBase)
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case 1:
			t.Placeholder = "your course path"
			t.SetValue(cfg.APIPath)
		case 2:
			t.Placeholder = "30"
			t.CharLimit = 4
			t.SetValue(strconv.Itoa(cfg.TimeoutSeconds))
		}

		m.inputs[i] = t
	}

	return m, nil
}

func (m *ConfigureModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConfigureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case successMsg:
		m.Saved = true
		return m, tea.Quit
	case errMsg:
		m.Err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.saveConfig
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

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *ConfigureModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *ConfigureModel) View() string {
	if m.Saved {
		return successStyle.Render("\n  ✓ Configuration saved successfully!\n\n")
	}

	if m.Err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  ✗ Error: %v\n\n", m.Err))
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	s := headerStyle.Render("Configure Catalogr Settings") + "\n"
	s += blurredStyle.Render("Edit the fields below and press Tab to navigate") + "\n\n"
	s += fmt.Sprintf(fmtField, blurredStyle.Render("API Base URL:"), m.inputs[0].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("API Path:"), m.inputs[1].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Request Timeout (seconds):"), m.inputs[2].View())

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n\n %s\n\n", *button)
	s += helpStyleForms.Render(" tab/shift+tab: navigate • enter: submit • esc: quit")

	return s
}

func (m *ConfigureModel) saveConfig() tea.Msg {
	timeout, err := strconv.Atoi(m.inputs[2].Value())
	if err != nil || timeout <= 0 {
		timeout = model.DefaultConfig().TimeoutSeconds
	}

	cfg := &model.Config{
		APIBase:        m.inputs[0].Value(),
		APIPath:        m.inputs[1].Value(),
		TimeoutSeconds: timeout,
	}

	if err := m.db.SaveConfig(cfg); err != nil {
		return errMsg{err}
	}

	return successMsg{}
}

type successMsg struct{}
type errMsg struct{ err error }
