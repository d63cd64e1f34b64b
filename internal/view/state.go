package view

import (
	"slices"

	"github.com/MKhiriev/go-contacts/models"
)

// ModalMode tells the presentation layer which form, if any, is open.
type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalAdd
	ModalEdit
)

// State is the presentation state of the contact list. It is a plain value;
// every change goes through [Reduce].
type State struct {
	Contacts []models.Contact
	Query    models.ViewQuery
	Selected *models.Contact
	Mode     ModalMode
}

// NewState returns an empty state with sorting switched off.
func NewState() State {
	return State{Query: models.ViewQuery{Sort: models.SortNone}}
}

// Visible returns the contacts to render.
func (s State) Visible() []models.Contact {
	return Derive(s.Contacts, s.Query)
}

// Action is a state transition understood by [Reduce].
type Action interface {
	apply(State) State
}

// SetContacts replaces the full contact list, typically after a reload.
type SetContacts struct{ Contacts []models.Contact }

// SetSearchQuery changes the search text.
type SetSearchQuery struct{ Search string }

// SetSortDirection changes the ordering.
type SetSortDirection struct{ Sort models.SortDirection }

// SelectContact marks a contact as the current one.
type SelectContact struct{ Contact models.Contact }

// ClearSelection drops the current contact.
type ClearSelection struct{}

// SetModalMode opens or closes a form.
type SetModalMode struct{ Mode ModalMode }

// ContactDeleted removes a contact locally after the store confirmed the
// deletion.
type ContactDeleted struct{ ID string }

// Reduce applies a to s and returns the new state. s is not modified.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

func (a SetContacts) apply(s State) State {
	s.Contacts = slices.Clone(a.Contacts)
	if s.Selected != nil {
		s.Selected = findByID(s.Contacts, s.Selected.ID)
	}
	return s
}

func (a SetSearchQuery) apply(s State) State {
	s.Query.Search = a.Search
	return s
}

func (a SetSortDirection) apply(s State) State {
	switch a.Sort {
	case models.SortAscending, models.SortDescending:
		s.Query.Sort = a.Sort
	default:
		s.Query.Sort = models.SortNone
	}
	return s
}

func (a SelectContact) apply(s State) State {
	c := a.Contact
	s.Selected = &c
	return s
}

func (ClearSelection) apply(s State) State {
	s.Selected = nil
	return s
}

func (a SetModalMode) apply(s State) State {
	s.Mode = a.Mode
	return s
}

func (a ContactDeleted) apply(s State) State {
	kept := make([]models.Contact, 0, len(s.Contacts))
	for _, c := range s.Contacts {
		if c.ID != a.ID {
			kept = append(kept, c)
		}
	}
	s.Contacts = kept

	if s.Selected != nil && s.Selected.ID == a.ID {
		s.Selected = nil
		if s.Mode == ModalEdit {
			s.Mode = ModalClosed
		}
	}
	return s
}

func findByID(contacts []models.Contact, id string) *models.Contact {
	for i := range contacts {
		if contacts[i].ID == id {
			c := contacts[i]
			return &c
		}
	}
	return nil
}
