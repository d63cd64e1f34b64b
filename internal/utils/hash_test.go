package utils

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum_KnownValue(t *testing.T) {
	// BLAKE2b-256 of the empty input.
	assert.Equal(t,
		"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		Checksum(nil))
}

func TestChecksum_DeterministicAndDistinct(t *testing.T) {
	a := Checksum([]byte("photo-1"))
	assert.Equal(t, a, Checksum([]byte("photo-1")))
	assert.NotEqual(t, a, Checksum([]byte("photo-2")))
	assert.Len(t, a, 64)
}

func TestChecksumWriter_MatchesChecksum(t *testing.T) {
	data := bytes.Repeat([]byte("abc"), 1000)

	h := NewChecksumWriter()
	_, err := io.Copy(h, bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, Checksum(data), ChecksumHex(h))
}
