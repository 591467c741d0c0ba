package digest

import "hash"

// Delegate implements Digest by forwarding to a hash.Hash, for algorithms
// this module does not implement itself.
type Delegate struct {
	h   hash.Hash
	one [1]byte
}

var _ Digest = (*Delegate)(nil)

// Wrap returns a Digest backed by h. h is reset first and must not be used
// directly afterwards.
func Wrap(h hash.Hash) *Delegate {
	h.Reset()
	return &Delegate{h: h}
}

// Write absorbs p.
func (d *Delegate) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Update absorbs p.
func (d *Delegate) Update(p []byte) {
	// hash.Hash.Write never returns an error.
	_, _ = d.h.Write(p)
}

// UpdateByte absorbs b.
func (d *Delegate) UpdateByte(b byte) {
	d.one[0] = b
	_, _ = d.h.Write(d.one[:])
}

// Digest finalizes, resets and returns the output.
func (d *Delegate) Digest() []byte {
	out := d.h.Sum(make([]byte, 0, d.h.Size()))
	d.h.Reset()
	return out
}

// Reset resets the wrapped hash.
func (d *Delegate) Reset() { d.h.Reset() }

// Size returns the wrapped hash output length.
func (d *Delegate) Size() int { return d.h.Size() }

// BlockSize returns the wrapped hash block size.
func (d *Delegate) BlockSize() int { return d.h.BlockSize() }
