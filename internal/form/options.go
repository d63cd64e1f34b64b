package form

import (
	"time"

	"github.com/MKhiriev/go-contacts/internal/logger"
)

// MaxImageSize is the largest local image accepted by SetLocalImage.
const MaxImageSize = 5 * 1024 * 1024

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now, used for the default last-contact date.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the logger of submission steps.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}
