package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/form"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldImage is the path of a local image file. It is not a contact field.
const fieldImage = "image"

type formField struct {
	name        string
	label       string
	placeholder string
}

var contactFormFields = []formField{
	{name: form.FieldFirstName, label: "First Name"},
	{name: form.FieldLastName, label: "Last Name"},
	{name: form.FieldEmail, label: "Email"},
	{name: form.FieldLastContact, label: "Last Contact", placeholder: "YYYY-MM-DD"},
	{name: form.FieldPhone, label: "Phone"},
	{name: form.FieldCompany, label: "Company"},
	{name: form.FieldOccupation, label: "Occupation"},
	{name: form.FieldBirthday, label: "Birthday", placeholder: "YYYY-MM-DD"},
	{name: form.FieldNotes, label: "Notes"},
	{name: fieldImage, label: "Image file", placeholder: "path/to/photo.png"},
}

func fieldLabel(name string) string {
	for _, f := range contactFormFields {
		if f.name == name {
			return f.label
		}
	}
	return name
}

// contactFormModel is the add/edit screen. Every keystroke is written through
// to the session, which owns the draft and its validation.
type contactFormModel struct {
	session *form.Session
	inputs  []textinput.Model
	focus   int

	// loadedImage is the path whose bytes are already in the draft.
	loadedImage string

	submitting bool
	notice     string
	errMsg     string
}

func newContactFormModel(store adapter.ContactStore, log *logger.Logger, contact *models.Contact) contactFormModel {
	session := form.NewSession(store, form.WithLogger(log))
	if contact != nil {
		session.InitializeFrom(*contact)
	}

	draft := session.Draft()
	values := map[string]string{
		form.FieldFirstName:   draft.Fields.FirstName,
		form.FieldLastName:    draft.Fields.LastName,
		form.FieldEmail:       draft.Fields.Email,
		form.FieldLastContact: draft.Fields.LastContact,
		form.FieldPhone:       draft.Fields.Phone,
		form.FieldCompany:     draft.Fields.Company,
		form.FieldOccupation:  draft.Fields.Occupation,
		form.FieldBirthday:    draft.Fields.Birthday,
		form.FieldNotes:       draft.Fields.Notes,
	}

	inputs := make([]textinput.Model, len(contactFormFields))
	for i, f := range contactFormFields {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].Placeholder = f.placeholder
		inputs[i].SetValue(values[f.name])
	}
	inputs[0].Focus()

	return contactFormModel{session: session, inputs: inputs}
}

func (m contactFormModel) editMode() bool {
	return m.session.Draft().EditMode()
}

func (m contactFormModel) focusedField() string {
	return contactFormFields[m.focus].name
}

func (m contactFormModel) moveFocus(delta int) contactFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

// update handles input for the form. Submission is started by the caller
// through submit.
func (m contactFormModel) update(msg tea.Msg) (contactFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			return m.moveFocus(1), nil
		case key.Matches(keyMsg, keys.backtab):
			return m.moveFocus(-1), nil
		}
	}

	field := m.focusedField()
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if value := m.inputs[m.focus].Value(); value != before && field != fieldImage {
		if err := m.session.SetField(field, value); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m, cmd
}

// submit validates the draft and returns the command that writes it to the
// store. A nil command means the submit was refused and the reason is in
// notice or errMsg.
func (m contactFormModel) submit(ctx context.Context) (contactFormModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.notice = ""
	m.errMsg = ""

	if err := m.loadImage(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	if errs := m.session.Validate(); errs.Any() {
		m.notice = missingFieldsNotice(errs, m.session.Draft().Fields)
		return m, nil
	}

	m.submitting = true
	session := m.session
	return m, func() tea.Msg {
		outcome, err := session.Submit(ctx)
		return submitDoneMsg{outcome: outcome, err: err}
	}
}

// loadImage reads the image file named in the image field into the draft,
// once per path. Files above [form.MaxImageSize] are refused before reading.
func (m *contactFormModel) loadImage() error {
	path := strings.TrimSpace(m.inputs[len(m.inputs)-1].Value())
	if path == "" || path == m.loadedImage {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read image: %w", err)
	}
	if info.Size() > form.MaxImageSize {
		return fmt.Errorf("cannot use image: %w", form.ErrPayloadTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read image: %w", err)
	}
	if err = m.session.SetLocalImage(data, ""); err != nil {
		return fmt.Errorf("cannot use image: %w", err)
	}

	m.loadedImage = path
	return nil
}

// handleSubmitDone applies the submit result. It reports whether the form is
// finished and can be closed.
func (m contactFormModel) handleSubmitDone(msg submitDoneMsg) (contactFormModel, bool) {
	m.submitting = false

	var verr *form.ValidationError
	switch {
	case msg.err == nil:
		return m, true
	case errors.As(msg.err, &verr):
		m.notice = missingFieldsNotice(verr.Fields, m.session.Draft().Fields)
	case msg.outcome.Kind == form.OutcomeDegraded:
		m.notice = msg.outcome.Message
		m.errMsg = humanizeServerUnavailableError(msg.err)
	default:
		m.errMsg = submitErrorMessage(msg.err)
	}
	return m, false
}

// missingFieldsNotice lists empty required fields first, e.g.
// "First Name, Email are required", then fields with invalid values.
func missingFieldsNotice(errs form.FieldErrors, fields models.ContactFields) string {
	values := map[string]string{
		form.FieldFirstName:   fields.FirstName,
		form.FieldLastName:    fields.LastName,
		form.FieldEmail:       fields.Email,
		form.FieldLastContact: fields.LastContact,
		form.FieldBirthday:    fields.Birthday,
	}

	var missing, invalid []string
	for _, name := range errs.Names() {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, fieldLabel(name))
		} else {
			invalid = append(invalid, fieldLabel(name))
		}
	}

	var parts []string
	switch len(missing) {
	case 0:
	case 1:
		parts = append(parts, missing[0]+" is required")
	default:
		parts = append(parts, strings.Join(missing, ", ")+" are required")
	}
	switch len(invalid) {
	case 0:
	case 1:
		parts = append(parts, invalid[0]+" is invalid")
	default:
		parts = append(parts, strings.Join(invalid, ", ")+" are invalid")
	}
	return strings.Join(parts, "; ")
}

func (m contactFormModel) View() string {
	title := "NEW CONTACT"
	if m.editMode() {
		title = "EDIT CONTACT"
	}

	errs := m.session.Errors()
	var b strings.Builder
	for i, f := range contactFormFields {
		marker := " "
		if errs.Has(f.name) {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %-13s│ [%s]\n", marker, f.label, m.inputs[i].View())
	}

	b.WriteString("\n")
	b.WriteString("  Photo        │ " + m.imageStatus() + "\n")
	if m.submitting {
		b.WriteString("  Action       │ [Saving...]\n")
	} else {
		b.WriteString("  Action       │ [Save]\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: save")
}

func (m contactFormModel) imageStatus() string {
	draft := m.session.Draft()
	switch {
	case draft.Image != nil:
		return fmt.Sprintf("new image, %s, %d KB", draft.Image.ContentType, (len(draft.Image.Data)+1023)/1024)
	case draft.Preview != "":
		return fitText(draft.Preview, 48)
	}
	return "none"
}
