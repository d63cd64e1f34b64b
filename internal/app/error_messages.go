// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// contacts server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies when the handler itself produces the error text.
package app

const (
	// MsgInvalidJSON is returned when the request body is not a JSON
	// document of the expected shape.
	MsgInvalidJSON = "invalid JSON"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
