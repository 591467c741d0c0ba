// Package hmac implements the keyed-hash message authentication code of
// RFC 2104 over any digest.Digest.
//
// An HMAC owns the digest it wraps: the digest must be fresh and must not be
// used by anyone else afterwards.
package hmac

import (
	"crypto/subtle"

	"github.com/Giulio2002/hashkit/digest"
)

const (
	ipad = 0x36
	opad = 0x5c
)

// HMAC is a MAC engine. Not safe for concurrent use.
type HMAC struct {
	d         digest.Digest
	blockSize int
	ipad      []byte
	opad      []byte
}

var _ digest.MAC = (*HMAC)(nil)

// New returns an HMAC over d keyed with key, using d.BlockSize() as the
// block size.
func New(d digest.Digest, key []byte) *HMAC {
	return newHMAC(d, key, d.BlockSize())
}

// NewWithBlockSize returns an HMAC over d with an explicit block size, for
// variants whose HMAC block size differs from the digest's own.
func NewWithBlockSize(d digest.Digest, key []byte, blockSize int) (*HMAC, error) {
	if blockSize <= 0 {
		return nil, digest.InvalidInputsErrorf("hmac: block size must be positive, got %d", blockSize)
	}
	return newHMAC(d, key, blockSize), nil
}

func newHMAC(d digest.Digest, key []byte, blockSize int) *HMAC {
	h := &HMAC{
		d:         d,
		blockSize: blockSize,
		ipad:      make([]byte, blockSize),
		opad:      make([]byte, blockSize),
	}

	// Keys longer than a block are hashed first.
	if len(key) > blockSize {
		d.Reset()
		d.Update(key)
		key = d.Digest()
	}

	copy(h.ipad, key)
	copy(h.opad, key)
	for i := range h.ipad {
		h.ipad[i] ^= ipad
	}
	for i := range h.opad {
		h.opad[i] ^= opad
	}

	h.Reset()
	return h
}

// Reset re-initializes the inner digest with the inner padded key.
func (h *HMAC) Reset() {
	h.d.Reset()
	h.d.Update(h.ipad)
}

// Write absorbs p.
func (h *HMAC) Write(p []byte) (int, error) {
	h.d.Update(p)
	return len(p), nil
}

// Update absorbs p.
func (h *HMAC) Update(p []byte) { h.d.Update(p) }

// UpdateByte absorbs b.
func (h *HMAC) UpdateByte(b byte) { h.d.UpdateByte(b) }

// MAC finalizes the computation and resets h to its keyed initial state.
func (h *HMAC) MAC() []byte {
	inner := h.d.Digest()
	h.d.Update(h.opad)
	h.d.Update(inner)
	out := h.d.Digest()
	h.Reset()
	return out
}

// Size returns the output length of the wrapped digest.
func (h *HMAC) Size() int { return h.d.Size() }

// BlockSize returns the HMAC block size.
func (h *HMAC) BlockSize() int { return h.blockSize }

// Equal compares two MACs without leaking timing information. Callers that
// verify a MAC received from an untrusted party must use it instead of
// bytes.Equal.
func Equal(mac1, mac2 []byte) bool {
	return subtle.ConstantTimeCompare(mac1, mac2) == 1
}
