// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the contact validation rules shared by the server
// service layer and the client form session.
//
// A [Validator] accepts any supported value and an optional list of field
// names; with no field names every rule for that type is applied.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
