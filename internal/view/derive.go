// Package view computes the visible contact list from the full list and the
// user's search and sort selection, and holds the presentation state that
// feeds it.
package view

import (
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-contacts/models"
)

// Derive filters and orders contacts for display.
//
// A contact passes the filter when the lower-cased search text is a substring
// of its full name, email, company or occupation. The search text is used as
// typed, surrounding whitespace included. An empty search passes all
// contacts. With [models.SortNone] the input order is kept; otherwise contacts
// are stably ordered by their last-contact date. The input slice is never
// modified.
func Derive(contacts []models.Contact, q models.ViewQuery) []models.Contact {
	needle := strings.ToLower(q.Search)

	visible := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if matches(c, needle) {
			visible = append(visible, c)
		}
	}

	switch q.Sort {
	case models.SortAscending:
		slices.SortStableFunc(visible, func(a, b models.Contact) int {
			return LastContactTime(a).Compare(LastContactTime(b))
		})
	case models.SortDescending:
		slices.SortStableFunc(visible, func(a, b models.Contact) int {
			return LastContactTime(b).Compare(LastContactTime(a))
		})
	}

	return visible
}

func matches(c models.Contact, needle string) bool {
	if needle == "" {
		return true
	}

	for _, field := range []string{c.FullName(), c.Email, c.Company, c.Occupation} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// LastContactTime parses the contact's last-contact date. ISO dates and
// RFC 3339 timestamps are accepted; anything else yields the zero time, which
// sorts as the oldest possible date.
func LastContactTime(c models.Contact) time.Time {
	return ParseDate(c.LastContact)
}

// ParseDate parses an ISO date or RFC 3339 timestamp, returning the zero time
// when s is neither.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
