// Package http implements the REST transport of the contact server.
//
// It wires the contact, upload and file routes and the middleware chain
// (request tracing, access logging, metrics and response compression) in
// front of the service layer.
package http
