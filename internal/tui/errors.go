// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/form"
)

var ErrNoStore = errors.New("contact store is not set")

const (
	msgContactDeleted       = "Contact has been deleted successfully"
	msgContactDeleteFailed  = "Contact deletion failed"
	msgContactSaveFailed    = "Contact could not be saved"
	msgServerUnavailable    = "No network connection or the server is unavailable"
	msgContactNoLongerExist = "The contact no longer exists"
	msgCopied               = "Email copied to clipboard"
	msgNothingToCopy        = "Nothing to copy"
	msgNoContacts           = "No contacts"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}

// submitErrorMessage turns a failed submit into the notice shown in the form.
func submitErrorMessage(err error) string {
	switch {
	case errors.Is(err, form.ErrNotFound):
		return msgContactNoLongerExist
	case errors.Is(err, form.ErrSubmitInProgress):
		return form.ErrSubmitInProgress.Error()
	}
	return msgContactSaveFailed + ": " + humanizeServerUnavailableError(err)
}
