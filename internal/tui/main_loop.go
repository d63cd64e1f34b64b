package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/view"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenConfirmDelete
	screenBuildInfo
)

// copyToClipboard is swapped in tests.
var copyToClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx       context.Context
	store     adapter.ContactStore
	snapshots SnapshotSource
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	state view.State
	idx   int

	search    textinput.Model
	searching bool

	screen screen
	// back is the screen a confirmation or the build info returns to.
	back     screen
	form     contactFormModel
	confirm  confirmModel
	overlay  *errorOverlayModel
	loading  bool
	deleting bool

	status string
	errMsg string
}

func newMainLoopModel(ctx context.Context, store adapter.ContactStore, snapshots SnapshotSource, buildInfo models.AppBuildInfo, log *logger.Logger) mainLoopModel {
	search := textinput.New()
	search.Placeholder = "name, email, company or occupation"
	search.Prompt = "/ "
	search.Width = 40

	return mainLoopModel{
		ctx:       ctx,
		store:     store,
		snapshots: snapshots,
		buildInfo: buildInfo,
		logger:    log,
		state:     view.NewState(),
		search:    search,
		loading:   true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadContacts(), waitForSnapshot(m.snapshots))
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		return m.applyContacts(msg.contacts, msg.err), nil
	case snapshotMsg:
		return m.applyContacts(msg.Contacts, msg.Err), waitForSnapshot(m.snapshots)
	case deleteDoneMsg:
		m.deleting = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "mainLoopModel.Update").Str("contact_id", msg.id).Msg("delete failed")
			m.errMsg = msgContactDeleteFailed
			if errors.Is(msg.err, adapter.ErrNotFound) {
				m.errMsg += ": " + msgContactNoLongerExist
			}
			return m, m.cmdLoadContacts()
		}
		m.state = view.Reduce(m.state, view.ContactDeleted{ID: msg.id})
		m.clampIndex()
		m.screen = screenList
		m.status = msgContactDeleted
		m.errMsg = ""
		return m, m.cmdLoadContacts()
	case submitDoneMsg:
		if m.screen != screenForm {
			return m, nil
		}
		var done bool
		m.form, done = m.form.handleSubmitDone(msg)
		if !done {
			if msg.err != nil && m.form.errMsg != "" {
				m.overlay = &errorOverlayModel{message: m.form.errMsg}
			}
			return m, m.cmdLoadContacts()
		}
		m.form.session.Close()
		m.state = view.Reduce(m.state, view.SetModalMode{Mode: view.ModalClosed})
		m.screen = screenList
		m.status = msg.outcome.Message
		m.errMsg = ""
		return m, m.cmdLoadContacts()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenForm {
			var cmd tea.Cmd
			m.form, cmd = m.form.update(msg)
			return m, cmd
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(keyMsg)
	case screenConfirmDelete:
		return m.updateConfirm(keyMsg)
	case screenBuildInfo:
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.info) {
			m.screen = m.back
		}
		return m, nil
	case screenDetail:
		return m.updateDetail(keyMsg)
	}

	if m.searching {
		return m.updateSearch(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m mainLoopModel) applyContacts(contacts []models.Contact, err error) mainLoopModel {
	if err != nil {
		m.errMsg = humanizeServerUnavailableError(err)
		return m
	}
	if m.errMsg == msgServerUnavailable {
		m.errMsg = ""
	}

	m.state = view.Reduce(m.state, view.SetContacts{Contacts: contacts})
	if m.screen == screenDetail && m.state.Selected == nil {
		m.screen = screenList
		m.status = msgContactNoLongerExist
	}
	m.clampIndex()
	return m
}

func (m *mainLoopModel) clampIndex() {
	n := len(m.state.Visible())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) current() (models.Contact, bool) {
	visible := m.state.Visible()
	if len(visible) == 0 || m.idx < 0 || m.idx >= len(visible) {
		return models.Contact{}, false
	}
	return visible[m.idx], true
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.state.Visible())-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.esc):
		if m.state.Query.Search != "" {
			m.search.SetValue("")
			m.state = view.Reduce(m.state, view.SetSearchQuery{Search: ""})
			m.clampIndex()
		}
	case key.Matches(keyMsg, keys.sort):
		m.state = view.Reduce(m.state, view.SetSortDirection{Sort: m.state.Query.Sort.Next()})
		m.clampIndex()
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		m.status = ""
		if m.snapshots != nil {
			m.snapshots.Refresh()
		}
		return m, m.cmdLoadContacts()
	case key.Matches(keyMsg, keys.info):
		m.back = m.screen
		m.screen = screenBuildInfo
	case key.Matches(keyMsg, keys.add):
		return m.openForm(nil), nil
	case key.Matches(keyMsg, keys.enter):
		contact, ok := m.current()
		if !ok {
			m.status = msgNoContacts
			return m, nil
		}
		m.state = view.Reduce(m.state, view.SelectContact{Contact: contact})
		m.screen = screenDetail
	case key.Matches(keyMsg, keys.edit):
		contact, ok := m.current()
		if !ok {
			m.status = msgNoContacts
			return m, nil
		}
		m.state = view.Reduce(m.state, view.SelectContact{Contact: contact})
		return m.openForm(&contact), nil
	case key.Matches(keyMsg, keys.delete):
		contact, ok := m.current()
		if !ok {
			m.status = msgNoContacts
			return m, nil
		}
		m.state = view.Reduce(m.state, view.SelectContact{Contact: contact})
		return m.askDelete(contact), nil
	}
	return m, nil
}

func (m mainLoopModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.searching = false
			m.search.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != m.state.Query.Search {
		m.state = view.Reduce(m.state, view.SetSearchQuery{Search: value})
		m.idx = 0
	}
	return m, cmd
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Selected == nil {
		m.screen = screenList
		return m, nil
	}
	contact := *m.state.Selected

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.state = view.Reduce(m.state, view.ClearSelection{})
		m.screen = screenList
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.edit):
		return m.openForm(&contact), nil
	case key.Matches(keyMsg, keys.delete):
		return m.askDelete(contact), nil
	case key.Matches(keyMsg, keys.info):
		m.back = m.screen
		m.screen = screenBuildInfo
	case key.Matches(keyMsg, keys.copy):
		if strings.TrimSpace(contact.Email) == "" {
			m.status = msgNothingToCopy
			return m, nil
		}
		if err := copyToClipboard(contact.Email); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = msgCopied
	}
	return m, nil
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		if m.deleting || m.state.Selected == nil {
			return m, nil
		}
		m.deleting = true
		m.screen = m.back
		return m, m.cmdDelete(m.state.Selected.ID)
	case key.Matches(keyMsg, keys.no):
		m.screen = m.back
	}
	return m, nil
}

func (m mainLoopModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.form.session.Close()
		m.state = view.Reduce(m.state, view.SetModalMode{Mode: view.ModalClosed})
		m.screen = screenList
		if m.state.Selected != nil {
			m.screen = screenDetail
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		var cmd tea.Cmd
		m.form, cmd = m.form.submit(m.ctx)
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) openForm(contact *models.Contact) mainLoopModel {
	mode := view.ModalAdd
	if contact != nil {
		mode = view.ModalEdit
	}
	m.state = view.Reduce(m.state, view.SetModalMode{Mode: mode})
	m.form = newContactFormModel(m.store, m.logger, contact)
	m.screen = screenForm
	m.status = ""
	m.errMsg = ""
	return m
}

func (m mainLoopModel) askDelete(contact models.Contact) mainLoopModel {
	m.confirm = confirmModel{message: contact.FullName()}
	m.back = m.screen
	m.screen = screenConfirmDelete
	return m
}

func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	switch m.screen {
	case screenForm:
		return m.form.View()
	case screenConfirmDelete:
		return m.confirm.View()
	case screenBuildInfo:
		return renderBuildInfoWindow(m.buildInfo)
	case screenDetail:
		if m.state.Selected == nil {
			return renderPage("CONTACT", msgContactNoLongerExist, "esc: back")
		}
		return renderPage("CONTACT", m.viewDetail(*m.state.Selected), "esc: back │ e: edit │ d: delete │ c: copy email │ v: about")
	}

	return renderPage("CONTACTS", m.viewList(), "a: add │ enter: open │ e: edit │ d: delete │ /: search │ o: sort │ r: reload │ v: about │ q: quit")
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.searching || m.state.Query.Search != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Sort by last contact: %s\n", sortLabel(m.state.Query.Sort))

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString(noticeStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n")

	visible := m.state.Visible()
	switch {
	case m.loading && len(m.state.Contacts) == 0:
		b.WriteString("Loading contacts...")
	case len(visible) == 0 && m.state.Query.Search != "":
		b.WriteString("No contacts match \"" + m.state.Query.Search + "\"")
	case len(visible) == 0:
		b.WriteString(msgNoContacts)
	default:
		b.WriteString("  Name                     │ Email                      │ Company          │ Last contact\n")
		b.WriteString("───────────────────────────┼────────────────────────────┼──────────────────┼─────────────\n")
		for i, c := range visible {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			fmt.Fprintf(&b, "%s %-24s │ %-26s │ %-16s │ %s\n",
				cursor,
				fitText(c.FullName(), 24),
				fitText(c.Email, 26),
				fitText(valueOrDash(c.Company), 16),
				formatDate(c.LastContact),
			)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewDetail(c models.Contact) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(c.FullName()) + "\n\n")
	fmt.Fprintf(&b, "Email:        %s\n", valueOrDash(c.Email))
	fmt.Fprintf(&b, "Phone:        %s\n", valueOrDash(c.Phone))
	fmt.Fprintf(&b, "Company:      %s\n", valueOrDash(c.Company))
	fmt.Fprintf(&b, "Occupation:   %s\n", valueOrDash(c.Occupation))
	fmt.Fprintf(&b, "Birthday:     %s\n", formatDate(c.Birthday))
	fmt.Fprintf(&b, "Last contact: %s\n", formatDate(c.LastContact))
	fmt.Fprintf(&b, "Notes:        %s\n", valueOrDash(c.Notes))

	image := "-"
	if c.Image != nil {
		image = *c.Image
	}
	fmt.Fprintf(&b, "Photo:        %s\n", image)

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + noticeStyle.Render(m.status) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func sortLabel(d models.SortDirection) string {
	switch d {
	case models.SortAscending:
		return "oldest first"
	case models.SortDescending:
		return "newest first"
	}
	return "off"
}

func (m mainLoopModel) cmdLoadContacts() tea.Cmd {
	ctx := m.ctx
	store := m.store

	return func() tea.Msg {
		contacts, err := store.List(ctx)
		return listLoadedMsg{contacts: contacts, err: err}
	}
}

func (m mainLoopModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	store := m.store

	return func() tea.Msg {
		return deleteDoneMsg{id: id, err: store.Delete(ctx, id)}
	}
}

func waitForSnapshot(src SnapshotSource) tea.Cmd {
	if src == nil {
		return nil
	}
	ch := src.Snapshots()

	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(s)
	}
}
