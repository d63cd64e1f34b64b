// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form implements the add/edit session of a single contact.
//
// A [Session] owns a [Draft] exclusively. Fields are edited locally,
// validated synchronously and written to an [adapter.ContactStore] by
// [Session.Submit]. A pending image is uploaded and linked only after the
// contact itself has been written.
package form

import (
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// Session is the state machine of one contact form. Its methods are safe to
// call from several goroutines, but only one Submit runs at a time.
type Session struct {
	store     adapter.ContactStore
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger

	mu     sync.Mutex
	state  State
	draft  Draft
	errs   FieldErrors
	closed bool

	submitting atomic.Bool
}

// NewSession returns a session in add mode with the last-contact date set
// to today.
//
// Example usage:
//
//	s := form.NewSession(store, form.WithLogger(log))
//	s.InitializeFrom(contact) // edit mode
//	_ = s.SetField(form.FieldEmail, "jane@example.com")
//	outcome, err := s.Submit(ctx)
func NewSession(store adapter.ContactStore, opts ...Option) *Session {
	s := &Session{
		store:     store,
		validator: validators.NewContactValidator(),
		now:       time.Now,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.draft = s.emptyDraft()
	return s
}

func (s *Session) emptyDraft() Draft {
	return Draft{
		Fields: models.ContactFields{LastContact: s.today()},
	}
}

func (s *Session) today() string {
	return s.now().Local().Format(time.DateOnly)
}

// InitializeFrom seeds the draft from an existing contact and switches the
// session to edit mode. The draft starts clean.
func (s *Session) InitializeFrom(contact models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := Draft{
		ID:     contact.ID,
		Fields: contact.Fields(),
	}
	if contact.Image != nil {
		d.Preview = *contact.Image
	}

	s.draft = d
	s.errs = FieldErrors{}
	s.state = StateEditing
	s.closed = false
}

// Reset drops the draft and returns to add mode with default values.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = s.emptyDraft()
	s.errs = FieldErrors{}
	s.state = StateEmpty
	s.closed = false
}

// SetField updates one field, clears its validation error and marks the
// draft dirty.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := setField(&s.draft.Fields, name, value); err != nil {
		return err
	}

	s.errs.clear(name)
	s.draft.Dirty = true
	s.state = StateEditing
	return nil
}

// OnDateSelected is the callback of a date picker. isoDate must be
// YYYY-MM-DD and name must be a date field.
func (s *Session) OnDateSelected(name, isoDate string) error {
	if name != FieldLastContact && name != FieldBirthday {
		return ErrUnknownField
	}
	if _, err := time.Parse(time.DateOnly, isoDate); err != nil {
		return ErrInvalidDate
	}
	return s.SetField(name, isoDate)
}

// SetLocalImage keeps an image for upload on the next submit and updates the
// preview. Images above [MaxImageSize] are rejected and leave the draft
// untouched. An empty contentType is sniffed from data.
func (s *Session) SetLocalImage(data []byte, contentType string) error {
	if len(data) == 0 {
		return ErrEmptyImage
	}
	if len(data) > MaxImageSize {
		return ErrPayloadTooLarge
	}
	if strings.TrimSpace(contentType) == "" {
		contentType = http.DetectContentType(data)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return err
	}

	s.draft.Image = &LocalImage{
		Data:        append([]byte(nil), data...),
		ContentType: contentType,
	}
	s.draft.Preview = dataURI(contentType, data)
	s.draft.Dirty = true
	s.state = StateEditing
	return nil
}

// Validate checks the required fields and keeps the result until the
// corresponding fields change.
func (s *Session) Validate() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.validateLocked()
}

func (s *Session) validateLocked() FieldErrors {
	prev := s.state
	s.state = StateValidating

	s.errs = validateFields(s.validator, s.draft.Fields)
	switch {
	case s.errs.Any():
		s.state = StateInvalid
	case prev == StateEmpty:
		s.state = StateEmpty
	default:
		s.state = StateEditing
	}

	return s.errs
}

// Close discards the draft. A submit already in flight finishes, but its
// result no longer changes the session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.draft = Draft{}
	s.errs = FieldErrors{}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Draft returns a copy of the current draft.
func (s *Session) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.clone()
}

// Errors returns the field errors of the last validation.
func (s *Session) Errors() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs
}

// Submitting reports whether a submit is in flight.
func (s *Session) Submitting() bool {
	return s.submitting.Load()
}

func (s *Session) checkOpen() error {
	if s.closed || s.state == StateSubmitted {
		return ErrSessionClosed
	}
	return nil
}
