// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs and stops
// several workers together, and the client's [ListPoller].
package workers

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; Stop ends it and blocks
// until its goroutines have exited.
type Worker interface {
	Run()
	Stop()
}

// ContactLister is the part of the contact store the poller needs.
type ContactLister interface {
	List(ctx context.Context) ([]models.Contact, error)
}
