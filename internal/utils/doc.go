// Package utils provides general-purpose helpers shared by the server and
// the client: JSON request/response helpers, a preconfigured resty client,
// upload token signing and verification, BLAKE2b checksums and identifier
// generation.
package utils
