package form

import (
	"context"
	"fmt"
)

// Submit validates the draft and writes it to the store.
//
// In edit mode the contact is updated with every draft field, in add mode it
// is created. A pending image is then uploaded and linked, strictly after
// the write succeeded. Possible results:
//   - invalid draft: *ValidationError, the store is not called;
//   - failed write: ErrNotFound, ErrValidation or ErrTransientStoreFailure,
//     the draft is kept for a retry;
//   - failed image step: an OutcomeDegraded outcome together with
//     ErrUploadFailure or ErrLinkFailure. The session switches to edit mode
//     on the written contact and keeps the pending image;
//   - success: OutcomeAdded or OutcomeUpdated, the session is finished.
func (s *Session) Submit(ctx context.Context) (Outcome, error) {
	if !s.submitting.CompareAndSwap(false, true) {
		return Outcome{}, ErrSubmitInProgress
	}
	defer s.submitting.Store(false)

	s.mu.Lock()
	if err := s.checkOpen(); err != nil {
		s.mu.Unlock()
		return Outcome{}, err
	}
	if errs := s.validateLocked(); errs.Any() {
		s.mu.Unlock()
		return Outcome{}, &ValidationError{Fields: errs}
	}
	draft := s.draft.clone()
	s.state = StateSubmitting
	s.mu.Unlock()

	log := s.logger.With().
		Str("func", "Session.Submit").
		Str("contact_id", draft.ID).
		Bool("edit_mode", draft.EditMode()).
		Logger()

	id, kind, err := s.write(ctx, draft)
	if err != nil {
		log.Err(err).Msg("contact write failed")
		s.fail(nil)
		return Outcome{}, err
	}

	if draft.Image != nil {
		if err = s.attachImage(ctx, id, draft.Image); err != nil {
			log.Err(err).Str("contact_id", id).Msg("contact written without image")
			s.fail(func(d *Draft) {
				d.ID = id
			})
			return Outcome{
				Kind:      OutcomeDegraded,
				ContactID: id,
				Message:   MsgContactImageNotSaved,
			}, err
		}
	}

	s.mu.Lock()
	if !s.closed {
		s.state = StateSubmitted
		s.draft = Draft{}
		s.errs = FieldErrors{}
	}
	s.mu.Unlock()

	outcome := Outcome{Kind: kind, ContactID: id, Message: MsgContactAdded}
	if kind == OutcomeUpdated {
		outcome.Message = MsgContactUpdated
	}

	log.Debug().Str("contact_id", id).Msg("contact submitted")
	return outcome, nil
}

func (s *Session) write(ctx context.Context, draft Draft) (string, OutcomeKind, error) {
	if draft.EditMode() {
		if err := s.store.Update(ctx, draft.ID, draft.Fields.Patch()); err != nil {
			return "", OutcomeNone, mapStoreError(err)
		}
		return draft.ID, OutcomeUpdated, nil
	}

	id, err := s.store.Create(ctx, draft.Fields)
	if err != nil {
		return "", OutcomeNone, mapStoreError(err)
	}
	if id == "" {
		return "", OutcomeNone, fmt.Errorf("%w: store returned no identifier", ErrTransientStoreFailure)
	}
	return id, OutcomeAdded, nil
}

func (s *Session) attachImage(ctx context.Context, id string, img *LocalImage) error {
	slot, err := s.store.RequestUploadSlot(ctx)
	if err != nil {
		return mapImageError(ErrUploadFailure, err)
	}

	ref, err := s.store.SendBytes(ctx, slot, img.Data, img.ContentType)
	if err != nil {
		return mapImageError(ErrUploadFailure, err)
	}

	if err = s.store.LinkImage(ctx, id, ref); err != nil {
		return mapImageError(ErrLinkFailure, err)
	}
	return nil
}

// fail moves the session to StateFailed, keeping the draft. update, when
// given, adjusts the kept draft.
func (s *Session) fail(update func(d *Draft)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if update != nil {
		update(&s.draft)
	}
	s.state = StateFailed
}
