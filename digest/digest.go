// Package digest defines the stateful hashing contracts shared by every
// engine in this module.
//
// A Digest is a mutable, unkeyed hashing engine and a MAC is its keyed
// counterpart. Both absorb bytes through Update/Write and finalize with a
// call that returns the output and leaves the engine reset to its initial
// state, so an engine can be reused for the next message right away.
//
// Engines are not safe for concurrent use. Each concurrent computation must
// own its own instance.
package digest

import "io"

// Engine is the part of the contract common to digests and MACs.
type Engine interface {
	// Write absorbs p. It never returns an error and always reports len(p).
	io.Writer

	// Update absorbs p.
	Update(p []byte)

	// UpdateByte absorbs a single byte.
	UpdateByte(b byte)

	// Reset returns the engine to its initial state.
	Reset()

	// Size returns the output length in bytes. It never changes.
	Size() int

	// BlockSize returns the number of bytes the engine buffers before each
	// compression or permutation step.
	BlockSize() int
}

// Digest is an unkeyed hashing engine.
type Digest interface {
	Engine

	// Digest finalizes the computation, resets the engine and returns
	// Size() bytes of output.
	Digest() []byte
}

// MAC is a keyed hashing engine.
type MAC interface {
	Engine

	// MAC finalizes the computation, resets the engine to its keyed initial
	// state and returns Size() bytes of output.
	MAC() []byte
}

// UpdateRange absorbs p[offset:offset+length]. It returns an out of range
// error, and absorbs nothing, when the bounds are inconsistent with p.
func UpdateRange(e Engine, p []byte, offset, length int) error {
	if offset < 0 || length < 0 || offset > len(p)-length {
		return OutOfRangeErrorf("range [%d:%d+%d] out of bounds for length %d", offset, offset, length, len(p))
	}
	e.Update(p[offset : offset+length])
	return nil
}

// ReadFrom absorbs r until EOF and returns the number of bytes consumed.
// A read error is returned unchanged; the engine must then be discarded.
func ReadFrom(e Engine, r io.Reader) (int64, error) {
	return io.Copy(e, r)
}

// Sum absorbs each of data in order and finalizes d.
func Sum(d Digest, data ...[]byte) []byte {
	for _, p := range data {
		d.Update(p)
	}
	return d.Digest()
}

// SumMAC absorbs each of data in order and finalizes m.
func SumMAC(m MAC, data ...[]byte) []byte {
	for _, p := range data {
		m.Update(p)
	}
	return m.MAC()
}
