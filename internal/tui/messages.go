package tui

import (
	"github.com/MKhiriev/go-contacts/internal/form"
	"github.com/MKhiriev/go-contacts/internal/workers"
	"github.com/MKhiriev/go-contacts/models"
)

type listLoadedMsg struct {
	contacts []models.Contact
	err      error
}

// snapshotMsg carries a background poll result.
type snapshotMsg workers.Snapshot

type deleteDoneMsg struct {
	id  string
	err error
}

type submitDoneMsg struct {
	outcome form.Outcome
	err     error
}
