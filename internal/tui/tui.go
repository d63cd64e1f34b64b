// Package tui is the terminal front end of the contact client.
//
// The contact list, search and sort live in a [view.State] that is only
// changed through [view.Reduce]. Add and edit screens drive a
// [form.Session]; every store call runs inside a bubbletea command.
package tui

import (
	"context"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/workers"
	"github.com/MKhiriev/go-contacts/models"
	tea "github.com/charmbracelet/bubbletea"
)

// SnapshotSource delivers contact lists fetched in the background.
type SnapshotSource interface {
	Snapshots() <-chan workers.Snapshot
	Refresh()
}

type TUI struct {
	store     adapter.ContactStore
	snapshots SnapshotSource
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI backed by store. snapshots may be nil, in which case the
// list is only refreshed after mutations and on request.
func New(store adapter.ContactStore, snapshots SnapshotSource, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if store == nil {
		return nil, ErrNoStore
	}

	return &TUI{
		store:     store,
		snapshots: snapshots,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.store, t.snapshots, t.buildInfo, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
