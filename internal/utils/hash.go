package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

var checksumPool = sync.Pool{
	New: func() any {
		// New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Checksum returns the hex-encoded BLAKE2b-256 digest of data. Hashers are
// pooled, so Checksum is safe for concurrent use.
//
// Parameters:
//
//	data - bytes to hash; may be empty
//
// Returns:
//
//	string - 64 lowercase hex characters
//
// Example usage:
//
//	etag := `"` + utils.Checksum(body) + `"`
func Checksum(data []byte) string {
	h := checksumPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	checksumPool.Put(h)

	return hex.EncodeToString(sum)
}

// NewChecksumWriter returns a hash.Hash that can be fed incrementally, e.g.
// through io.MultiWriter while streaming bytes to disk.
//
// Example usage:
//
//	h := utils.NewChecksumWriter()
//	n, err := io.Copy(io.MultiWriter(f, h), r)
//	sum := utils.ChecksumHex(h)
func NewChecksumWriter() hash.Hash {
	h, _ := blake2b.New256(nil)
	return h
}

// ChecksumHex hex-encodes the digest accumulated in h.
func ChecksumHex(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}
