package cli

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/catalogr/internal/api"
	"github.com/inovacc/catalogr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsoleWithServer(t *testing.T, handler http.Handler) ConsoleModel {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL, "course", api.ClientOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return NewConsole(client)
}

func sampleProduct() model.Product {
	return model.Product{
		ID:          "42",
		Title:       "Mug",
		Category:    "kitchen",
		OriginPrice: 10,
		Price:       8,
		Unit:        "piece",
		Enabled:     true,
		ImageURL:    "https://img/main.png",
		ImagesURL:   []string{"a", "b"},
	}
}

func TestOpenModal_EditSeedsFromProduct(t *testing.T) {
	m := newConsoleWithServer(t, http.NotFoundHandler())

	p := sampleProduct()
	m.openModal(modeEdit, &p)

	assert.Equal(t, modeEdit, m.mode)
	assert.Equal(t, model.DraftOf(p), m.draft)
	assert.Len(t, m.inputs, len(draftFields)+len(p.ImagesURL))
	assert.Equal(t, "Mug", m.inputs[0].Value())
}

func TestOpenModal_CreateIgnoresSourceRow(t *testing.T) {
	m := newConsoleWithServer(t, http.NotFoundHandler())

	p := sampleProduct()
	m.openModal(modeCreate, &p)

	assert.Equal(t, modeCreate, m.mode)
	assert.Equal(t, model.EmptyDraft(), m.draft)
}

func TestOpenModal_DeleteHasNoForm(t *testing.T) {
	m := newConsoleWithServer(t, http.NotFoundHandler())

	p := sampleProduct()
	m.openModal(modeDelete, &p)

	assert.Equal(t, modeDelete, m.mode)
	assert.Nil(t, m.inputs)
	assert.Equal(t, "Mug", m.draft.Title)
}

func TestCloseModal_ResetsModeAndDraft(t *testing.T) {
	m := newConsoleWithServer(t, http.NotFoundHandler())

	p := sampleProduct()
	m.openModal(modeEdit, &p)
	m.closeModal()

	assert.Equal(t, modeNone, m.mode)
	assert.Equal(t, model.Draft{}, m.draft)
	assert.Nil(t, m.inputs)
}

func TestReplaceProducts_SwapsWholesale(t *testing.T) {
	m := newConsoleWithServer(t, http.NotFoundHandler())

	m.replaceProducts([]model.Product{sampleProduct(), {ID: "2", Title: "Plate"}})
	require.Len(t, m.products, 2)
	require.Len(t, m.list.Items(), 2)

	m.replaceProducts([]model.Product{{ID: "3", Title: "Bowl"}})
	require.Len(t, m.products, 1)
	require.Len(t, m.list.Items(), 1)
}

func TestProductsLoadFailure_KeepsExistingList(t *testing.T) {
	m := newConsoleWithServer(t, http.NotFoundHandler())
	m.replaceProducts([]model.Product{sampleProduct()})

	updated, _ := m.Update(productsLoadedMsg{err: assert.AnError})
	got := updated.(ConsoleModel)

	assert.Len(t, got.products, 1, "failed refresh must not clear the list")
	assert.NotEmpty(t, got.errText)
}

func TestMutationFailure_KeepsModalOpen(t *testing.T) {
	m := newConsoleWithServer(t, http.NotFoundHandler())

	p := sampleProduct()
	m.openModal(modeEdit, &p)
	m.busy = true

	updated, cmd := m.applyMutationResult(mutationDoneMsg{mode: modeEdit, err: assert.AnError})
	got := updated.(ConsoleModel)

	assert.Equal(t, modeEdit, got.mode)
	assert.False(t, got.busy)
	assert.NotEmpty(t, got.errText)
	assert.Nil(t, cmd)
}

func TestMutationSuccess_ClosesAndRefreshes(t *testing.T) {
	m := newConsoleWithServer(t, http.NotFoundHandler())

	p := sampleProduct()
	m.openModal(modeEdit, &p)
	m.busy = true

	updated, cmd := m.applyMutationResult(mutationDoneMsg{mode: modeEdit})
	got := updated.(ConsoleModel)

	assert.Equal(t, modeNone, got.mode)
	assert.True(t, got.busy, "refresh in flight after a successful mutation")
	assert.NotNil(t, cmd)
}

func TestSubmit_DeleteTargetsDraftID(t *testing.T) {
	var gotMethod, gotPath string

	m := newConsoleWithServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	p := sampleProduct()
	m.openModal(modeDelete, &p)

	msg := m.submitCmd()()
	result, ok := msg.(mutationDoneMsg)
	require.True(t, ok)
	require.NoError(t, result.err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/course/admin/product/42", gotPath)
}

func TestSubmit_CreateRejectsBadPriceWithoutCall(t *testing.T) {
	var called bool

	m := newConsoleWithServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	m.openModal(modeCreate, nil)
	m.draft = m.draft.SetField("price", "not-a-number")

	msg := m.submitCmd()()
	result, ok := msg.(mutationDoneMsg)
	require.True(t, ok)
	require.Error(t, result.err)

	assert.False(t, called, "a bad price never reaches the server")
}

func TestSubmitIgnoredWhileBusy(t *testing.T) {
	m := newConsoleWithServer(t, http.NotFoundHandler())

	p := sampleProduct()
	m.openModal(modeDelete, &p)
	m.busy = true

	updated, cmd := m.updateDeleteConfirm(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(ConsoleModel)

	assert.Nil(t, cmd)
	assert.Equal(t, modeDelete, got.mode)
}

func TestSyncDraft_CopiesFormValues(t *testing.T) {
	m := newConsoleWithServer(t, http.NotFoundHandler())

	p := sampleProduct()
	m.openModal(modeEdit, &p)

	m.inputs[0].SetValue("Tea Mug")
	m.inputs[len(draftFields)].SetValue("changed")
	m.syncDraft()

	assert.Equal(t, "Tea Mug", m.draft.Title)
	assert.Equal(t, "changed", m.draft.ImagesURL[0])
	assert.Equal(t, "b", m.draft.ImagesURL[1])
}

func TestFormImageSlotKeys(t *testing.T) {
	m := newConsoleWithServer(t, http.NotFoundHandler())

	m.openModal(modeCreate, nil)
	require.Len(t, m.inputs, len(draftFields))

	updated, _ := m.updateForm(tea.KeyMsg{Type: tea.KeyCtrlN})
	got := updated.(ConsoleModel)
	require.Len(t, got.inputs, len(draftFields)+1)
	assert.Equal(t, []string{""}, got.draft.ImagesURL)

	updated, _ = got.updateForm(tea.KeyMsg{Type: tea.KeyCtrlR})
	got = updated.(ConsoleModel)
	require.Len(t, got.inputs, len(draftFields))
	assert.Empty(t, got.draft.ImagesURL)

	// Removing with no slots left stays a no-op
	updated, _ = got.updateForm(tea.KeyMsg{Type: tea.KeyCtrlR})
	got = updated.(ConsoleModel)
	assert.Empty(t, got.draft.ImagesURL)
}
