// Package keccak provides the Keccak-224/256/384/512 hash functions with the
// original Keccak padding.
//
// The original submission pads with domain separator 0x01, not the 0x06
// adopted later by FIPS 202 for SHA-3, so outputs differ from crypto/sha3.
// This is the variant used by Ethereum and other pre-standard systems.
//
// The permutation is a plain Go implementation of Keccak-f[1600]. Hasher
// implements both digest.Digest (finalize and reset) and hash.Hash
// (non-destructive Sum).
package keccak

import (
	"hash"

	"github.com/Giulio2002/hashkit/digest"
)

const (
	// Output lengths in bytes of the supported variants.
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64

	// stateSize is the width of the Keccak-f[1600] state in bytes.
	stateSize = 200

	// maxRate is the largest sponge rate, the one of Keccak-224:
	// (1600 - 2*224) / 8 = 144 bytes.
	maxRate = stateSize - 2*Size224

	// dsbyte is the Keccak domain separator and first padding bit.
	dsbyte = 0x01
)

// rate returns the sponge rate for an output length: 200 - 2*outputLen.
func rate(outputLen int) int {
	return stateSize - 2*outputLen
}

// Sum224 computes the Keccak-224 hash of data.
func Sum224(data []byte) [Size224]byte {
	var out [Size224]byte
	sum(data, rate(Size224), out[:])
	return out
}

// Sum256 computes the Keccak-256 hash of data. Zero heap allocations.
func Sum256(data []byte) [Size256]byte {
	var out [Size256]byte
	sum(data, rate(Size256), out[:])
	return out
}

// Sum384 computes the Keccak-384 hash of data.
func Sum384(data []byte) [Size384]byte {
	var out [Size384]byte
	sum(data, rate(Size384), out[:])
	return out
}

// Sum512 computes the Keccak-512 hash of data.
func Sum512(data []byte) [Size512]byte {
	var out [Size512]byte
	sum(data, rate(Size512), out[:])
	return out
}

func sum(data []byte, r int, out []byte) {
	var a [25]uint64

	// Absorb full blocks.
	for len(data) >= r {
		xorIn(&a, data[:r])
		keccakF1600(&a)
		data = data[r:]
	}

	// Absorb remaining bytes + Keccak padding.
	var block [maxRate]byte
	n := copy(block[:], data)
	pad(block[:r], n)
	xorIn(&a, block[:r])
	keccakF1600(&a)

	copyOut(&a, out)
}

// pad applies pad10*1 with the Keccak suffix to block, whose first n bytes
// hold message data. There is always at least one free byte.
func pad(block []byte, n int) {
	last := len(block) - 1
	if n == last {
		block[n] = dsbyte | 0x80
		return
	}
	block[n] = dsbyte
	clear(block[n+1:])
	// pad10*1 end bit.
	block[last] = 0x80
}

// Hasher is a streaming Keccak hasher. Designed for stack allocation: the
// zero value is a ready to use Keccak-256 hasher.
type Hasher struct {
	a         [25]uint64
	buf       [maxRate]byte
	absorbed  int
	outputLen int
}

var (
	_ digest.Digest = (*Hasher)(nil)
	_ hash.Hash     = (*Hasher)(nil)
)

// New returns a hasher producing outputLen bytes. outputLen must be one of
// 28, 32, 48 or 64.
func New(outputLen int) (*Hasher, error) {
	switch outputLen {
	case Size224, Size256, Size384, Size512:
		return &Hasher{outputLen: outputLen}, nil
	default:
		return nil, digest.InvalidInputsErrorf(
			"keccak: output length must be one of %d, %d, %d or %d bytes, got %d",
			Size224, Size256, Size384, Size512, outputLen)
	}
}

// New224 returns a Keccak-224 hasher.
func New224() *Hasher { return &Hasher{outputLen: Size224} }

// New256 returns a Keccak-256 hasher.
func New256() *Hasher { return &Hasher{outputLen: Size256} }

// New384 returns a Keccak-384 hasher.
func New384() *Hasher { return &Hasher{outputLen: Size384} }

// New512 returns a Keccak-512 hasher.
func New512() *Hasher { return &Hasher{outputLen: Size512} }

func (h *Hasher) init() {
	if h.outputLen == 0 {
		h.outputLen = Size256
	}
}

// Size returns the output length in bytes.
func (h *Hasher) Size() int {
	h.init()
	return h.outputLen
}

// BlockSize returns the sponge rate in bytes.
func (h *Hasher) BlockSize() int {
	return rate(h.Size())
}

// Reset resets the hasher to its initial state.
func (h *Hasher) Reset() {
	h.a = [25]uint64{}
	h.buf = [maxRate]byte{}
	h.absorbed = 0
}

// Write absorbs data into the hasher. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Update absorbs data into the hasher.
func (h *Hasher) Update(p []byte) {
	r := h.BlockSize()

	if h.absorbed > 0 {
		n := copy(h.buf[h.absorbed:r], p)
		h.absorbed += n
		p = p[n:]
		if h.absorbed == r {
			xorIn(&h.a, h.buf[:r])
			keccakF1600(&h.a)
			h.absorbed = 0
		}
	}

	for len(p) >= r {
		xorIn(&h.a, p[:r])
		keccakF1600(&h.a)
		p = p[r:]
	}

	if len(p) > 0 {
		h.absorbed = copy(h.buf[:], p)
	}
}

// UpdateByte absorbs a single byte.
func (h *Hasher) UpdateByte(b byte) {
	r := h.BlockSize()
	h.buf[h.absorbed] = b
	h.absorbed++
	if h.absorbed == r {
		xorIn(&h.a, h.buf[:r])
		keccakF1600(&h.a)
		h.absorbed = 0
	}
}

// Digest finalizes the hash, resets the hasher and returns Size() bytes.
func (h *Hasher) Digest() []byte {
	out := make([]byte, h.Size())
	h.finish(out)
	h.Reset()
	return out
}

// Sum appends the current digest to b and returns the resulting slice.
// Does not modify the hasher state.
func (h *Hasher) Sum(b []byte) []byte {
	d := *h
	out := make([]byte, d.Size())
	d.finish(out)
	return append(b, out...)
}

// finish pads the buffered block, runs the final permutation and squeezes
// len(out) bytes.
func (h *Hasher) finish(out []byte) {
	r := h.BlockSize()
	pad(h.buf[:r], h.absorbed)
	xorIn(&h.a, h.buf[:r])
	keccakF1600(&h.a)
	copyOut(&h.a, out)
}

// xorIn XORs a block, a multiple of 8 bytes, into the lanes as
// little-endian words.
func xorIn(a *[25]uint64, block []byte) {
	n := len(block) >> 3
	for i := 0; i < n; i++ {
		a[i] ^= le64(block[8*i:])
	}
}

// copyOut writes the first len(out) bytes of the lanes, little-endian.
func copyOut(a *[25]uint64, out []byte) {
	for i := 0; i < len(out); i += 8 {
		var w [8]byte
		putLE64(w[:], a[i>>3])
		copy(out[i:], w[:])
	}
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// putLE64 writes v as a little-endian uint64 into at least 8 bytes.
func putLE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
