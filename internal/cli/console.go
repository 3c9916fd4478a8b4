package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/inovacc/catalogr/internal/api"
	"github.com/inovacc/catalogr/internal/model"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// modalMode is which operation the modal is configured for. It changes
// only through openModal and closeModal, never by inference from the
// draft contents.
type modalMode int

const (
	modeNone modalMode = iota
	modeCreate
	modeEdit
	modeDelete
)

func (m modalMode) String() string {
	switch m {
	case modeCreate:
		return "create"
	case modeEdit:
		return "edit"
	case modeDelete:
		return "delete"
	default:
		return "none"
	}
}

type productItem struct {
	product model.Product
}

func (i productItem) Title() string {
	if !i.product.Enabled {
		return i.product.Title + " (disabled)"
	}

	return i.product.Title
}

func (i productItem) Description() string {
	return fmt.Sprintf("%s | %s -> %s %s",
		i.product.Category,
		humanize.Commaf(i.product.OriginPrice),
		humanize.Commaf(i.product.Price),
		i.product.Unit,
	)
}

func (i productItem) FilterValue() string {
	return i.product.Title
}

// draftFields is the fixed part of the modal form; image slots follow it.
var draftFields = []struct {
	name, label, placeholder string
}{
	{"title", "Title", "product title"},
	{"category", "Category", "product category"},
	{"unit", "Unit", "e.g. piece"},
	{"origin_price", "Origin Price", "0"},
	{"price", "Price", "0"},
	{"imageUrl", "Main Image URL", "https://..."},
	{"description", "Description", "short description"},
	{"content", "Content", "long-form copy"},
}

func consoleHelpKeys() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

type productsLoadedMsg struct {
	products []model.Product
	err      error
}

type mutationDoneMsg struct {
	mode modalMode
	err  error
}

// ConsoleModel is the interactive product console: a list view paired
// with one modal form driven by a mode and a single draft record.
type ConsoleModel struct {
	client *api.Client

	list     list.Model
	products []model.Product

	mode       modalMode
	draft      model.Draft
	inputs     []textinput.Model
	focusIndex int

	busy     bool
	spinner  spinner.Model
	errText  string
	quitting bool
}

// NewConsole creates the console model. The first list load happens on
// Init.
func NewConsole(client *api.Client) ConsoleModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Products"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.AdditionalShortHelpKeys = consoleHelpKeys

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = focusedStyle

	return ConsoleModel{
		client:  client,
		list:    l,
		spinner: s,
		busy:    true,
	}
}

func (m ConsoleModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refreshCmd())
}

func (m ConsoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case productsLoadedMsg:
		m.busy = false

		if msg.err != nil {
			// The previous list stays untouched on a failed fetch
			m.errText = msg.err.Error()

			return m, nil
		}

		m.replaceProducts(msg.products)

		return m, nil

	case mutationDoneMsg:
		return m.applyMutationResult(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeNone:
			return m.updateList(msg)
		case modeDelete:
			return m.updateDeleteConfirm(msg)
		default:
			return m.updateForm(msg)
		}
	}

	return m, nil
}

func (m ConsoleModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true

		return m, tea.Quit

	case "r":
		if m.busy {
			return m, nil
		}

		m.busy = true
		m.errText = ""

		return m, tea.Batch(m.spinner.Tick, m.refreshCmd())

	case "n":
		m.openModal(modeCreate, nil)

		return m, textinput.Blink

	case "e", "enter":
		if p, ok := m.selectedProduct(); ok {
			m.openModal(modeEdit, &p)

			return m, textinput.Blink
		}

		return m, nil

	case "d":
		if p, ok := m.selectedProduct(); ok {
			m.openModal(modeDelete, &p)
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ConsoleModel) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true

		return m, tea.Quit

	case "esc":
		m.closeModal()

		return m, nil

	case "enter", "y":
		if m.busy {
			return m, nil
		}

		m.busy = true
		m.errText = ""

		return m, tea.Batch(m.spinner.Tick, m.submitCmd())
	}

	return m, nil
}

func (m ConsoleModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	enabledIndex := len(m.inputs)
	submitIndex := len(m.inputs) + 1

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true

		return m, tea.Quit

	case "esc":
		m.closeModal()

		return m, nil

	case "ctrl+n":
		m.syncDraft()
		m.draft = m.draft.AppendImageSlot()
		m.rebuildInputs()
		m.focusIndex = len(m.inputs) - 1
		m.applyFormFocus()

		return m, textinput.Blink

	case "ctrl+r":
		m.syncDraft()
		m.draft = m.draft.RemoveLastImageSlot()
		m.rebuildInputs()

		if m.focusIndex > len(m.inputs) {
			m.focusIndex = len(m.inputs)
		}

		m.applyFormFocus()

		return m, nil

	case " ":
		if m.focusIndex == enabledIndex {
			m.draft = m.draft.SetEnabled(!m.draft.Enabled)

			return m, nil
		}

	case "tab", "shift+tab", "up", "down", "enter":
		s := msg.String()

		if s == "enter" && m.focusIndex == submitIndex {
			if m.busy {
				return m, nil
			}

			m.syncDraft()
			m.busy = true
			m.errText = ""

			return m, tea.Batch(m.spinner.Tick, m.submitCmd())
		}

		if s == "enter" && m.focusIndex == enabledIndex {
			m.draft = m.draft.SetEnabled(!m.draft.Enabled)

			return m, nil
		}

		if s == "up" || s == "shift+tab" {
			m.focusIndex--
		} else {
			m.focusIndex++
		}

		if m.focusIndex > submitIndex {
			m.focusIndex = 0
		} else if m.focusIndex < 0 {
			m.focusIndex = submitIndex
		}

		cmds := m.applyFormFocus()

		return m, tea.Batch(cmds...)
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	m.syncDraft()

	return m, tea.Batch(cmds...)
}

// openModal seeds the draft for the given mode and switches the view to
// the modal. Create ignores the source product and starts from the empty
// template.
func (m *ConsoleModel) openModal(mode modalMode, source *model.Product) {
	if mode == modeCreate || source == nil {
		m.draft = model.EmptyDraft()
	} else {
		m.draft = model.DraftOf(*source)
	}

	m.mode = mode
	m.focusIndex = 0
	m.errText = ""

	if mode == modeDelete {
		m.inputs = nil

		return
	}

	m.rebuildInputs()
	m.applyFormFocus()
}

// closeModal hides the modal and resets the editing state. Mode goes back
// to none so a later open never shows stale data.
func (m *ConsoleModel) closeModal() {
	m.mode = modeNone
	m.draft = model.Draft{}
	m.inputs = nil
	m.focusIndex = 0
	m.errText = ""
}

func (m ConsoleModel) applyMutationResult(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil {
		// Keep the modal open so the operator can retry or cancel
		m.errText = msg.err.Error()

		return m, nil
	}

	m.closeModal()
	m.busy = true

	return m, tea.Batch(m.spinner.Tick, m.refreshCmd())
}

// replaceProducts swaps the held list wholesale; the list is always
// server-derived.
func (m *ConsoleModel) replaceProducts(products []model.Product) {
	m.products = products
	m.errText = ""

	items := make([]list.Item, len(products))
	for i, p := range products {
		items[i] = productItem{product: p}
	}

	m.list.SetItems(items)
}

func (m ConsoleModel) selectedProduct() (model.Product, bool) {
	i, ok := m.list.SelectedItem().(productItem)
	if !ok {
		return model.Product{}, false
	}

	return i.product, true
}

func (m *ConsoleModel) rebuildInputs() {
	inputs := make([]textinput.Model, 0, len(draftFields)+len(m.draft.ImagesURL))

	for _, f := range draftFields {
		t := textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 512
		t.Placeholder = f.placeholder
		t.SetValue(m.draft.Field(f.name))
		inputs = append(inputs, t)
	}

	for i, u := range m.draft.ImagesURL {
		t := textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 512
		t.Placeholder = fmt.Sprintf("image URL %d", i+1)
		t.SetValue(u)
		inputs = append(inputs, t)
	}

	m.inputs = inputs
}

func (m *ConsoleModel) applyFormFocus() []tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
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

	return cmds
}

// syncDraft copies the form values back into the draft. Every call goes
// through the draft's own mutation operations so the replacement stays
// whole-value.
func (m *ConsoleModel) syncDraft() {
	d := m.draft

	for i, f := range draftFields {
		d = d.SetField(f.name, m.inputs[i].Value())
	}

	for i := range d.ImagesURL {
		d = d.SetImageAt(i, m.inputs[len(draftFields)+i].Value())
	}

	m.draft = d
}

func (m ConsoleModel) refreshCmd() tea.Cmd {
	client := m.client

	return func() tea.Msg {
		products, err := client.ListProducts(context.Background())

		return productsLoadedMsg{products: products, err: err}
	}
}

// submitCmd dispatches the pending mutation by mode. The mode and draft
// are captured by value so a close during flight cannot change what is
// sent.
func (m ConsoleModel) submitCmd() tea.Cmd {
	mode := m.mode
	draft := m.draft
	client := m.client

	return func() tea.Msg {
		ctx := context.Background()

		switch mode {
		case modeDelete:
			return mutationDoneMsg{mode: mode, err: client.DeleteProduct(ctx, draft.ID)}

		case modeCreate, modeEdit:
			payload, err := draft.Payload()
			if err != nil {
				return mutationDoneMsg{mode: mode, err: err}
			}

			if mode == modeEdit {
				return mutationDoneMsg{mode: mode, err: client.UpdateProduct(ctx, draft.ID, payload)}
			}

			return mutationDoneMsg{mode: mode, err: client.CreateProduct(ctx, payload)}
		}

		return mutationDoneMsg{mode: mode}
	}
}

func (m ConsoleModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeDelete:
		return m.viewDeleteConfirm()
	case modeCreate, modeEdit:
		return m.viewForm()
	default:
		return m.viewList()
	}
}

func (m ConsoleModel) viewList() string {
	s := docStyle.Render(m.list.View())

	if m.busy {
		s += "\n " + m.spinner.View() + " Loading products..."
	}

	if m.errText != "" {
		s += "\n" + errorStyle.Render(" ✗ "+m.errText)
	}

	return s + "\n"
}

func (m ConsoleModel) viewDeleteConfirm() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))

	s := "\n " + headerStyle.Render("Delete product") + "\n\n"
	s += fmt.Sprintf(" Delete %q?\n\n", m.draft.Title)

	if m.busy {
		s += " " + m.spinner.View() + " Deleting...\n\n"
	}

	if m.errText != "" {
		s += errorStyle.Render(" ✗ "+m.errText) + "\n\n"
	}

	s += helpStyleForms.Render(" enter: delete • esc: cancel")

	return s
}

func (m ConsoleModel) viewForm() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	title := "New product"
	if m.mode == modeEdit {
		title = "Edit product"
	}

	s := "\n " + headerStyle.Render(title) + "\n\n"

	for i, f := range draftFields {
		s += fmt.Sprintf(fmtField, blurredStyle.Render(f.label+":"), m.inputs[i].View())
	}

	if len(m.draft.ImagesURL) > 0 {
		s += " " + blurredStyle.Render("Secondary images:") + "\n"

		for i := range m.draft.ImagesURL {
			s += " " + m.inputs[len(draftFields)+i].View() + "\n"
		}

		s += "\n"
	}

	checkbox := "[ ]"
	if m.draft.Enabled {
		checkbox = "[x]"
	}

	enabledLine := fmt.Sprintf(" %s Enabled", checkbox)
	if m.focusIndex == len(m.inputs) {
		enabledLine = focusedStyle.Render(enabledLine)
	} else {
		enabledLine = blurredStyle.Render(enabledLine)
	}

	s += enabledLine + "\n"

	button := &blurredButton
	if m.focusIndex == len(m.inputs)+1 {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", *button)

	if m.busy {
		s += " " + m.spinner.View() + " Saving...\n\n"
	}

	if m.errText != "" {
		s += errorStyle.Render(" ✗ "+m.errText) + "\n\n"
	}

	s += helpStyleForms.Render(" tab: navigate • space: toggle enabled • ctrl+n/ctrl+r: add/remove image • enter: submit • esc: cancel")

	return s
}
