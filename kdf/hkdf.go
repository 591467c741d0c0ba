package kdf

import (
	"bytes"

	"github.com/Giulio2002/hashkit/digest"
	"github.com/Giulio2002/hashkit/registry"
)

// maxHKDFBlocks bounds the expand counter, a single byte.
const maxHKDFBlocks = 255

// HKDF is the HMAC-based extract-and-expand key derivation function of
// RFC 5869.
type HKDF struct {
	newMAC func(key []byte) digest.MAC
	hLen   int
	info   []byte
	dkLen  int
}

// NewHKDF returns an HKDF over alg binding derived keys to info. dkLen may
// not exceed 255 * alg.Size().
func NewHKDF(alg registry.MACAlgorithm, info []byte, dkLen int) (*HKDF, error) {
	newMAC, err := registry.MACConstructor(alg)
	if err != nil {
		return nil, err
	}

	hLen := alg.Size()
	if err := invalidParameters("hkdf", checkKeyLen(nil, dkLen, int64(maxHKDFBlocks*hLen))); err != nil {
		return nil, err
	}

	return &HKDF{
		newMAC: newMAC,
		hLen:   hLen,
		info:   bytes.Clone(info),
		dkLen:  dkLen,
	}, nil
}

// Extract returns the pseudorandom key MAC(salt, secret). An empty salt is
// a zero-length MAC key.
func (k *HKDF) Extract(salt, secret []byte) []byte {
	return digest.SumMAC(k.newMAC(salt), secret)
}

// Expand stretches prk into length bytes bound to info. length must be in
// (0, 255 * hash length].
func (k *HKDF) Expand(prk, info []byte, length int) ([]byte, error) {
	if err := invalidParameters("hkdf", checkKeyLen(nil, length, int64(maxHKDFBlocks*k.hLen))); err != nil {
		return nil, err
	}
	return k.expand(prk, info, length), nil
}

// expand computes T(1) || T(2) || ... truncated to length, where
// T(i) = MAC(prk, T(i-1) || info || i) and T(0) is empty.
func (k *HKDF) expand(prk, info []byte, length int) []byte {
	m := k.newMAC(prk)
	blocks := (length + k.hLen - 1) / k.hLen

	okm := make([]byte, 0, blocks*k.hLen)
	var t []byte
	for i := 1; i <= blocks; i++ {
		t = digest.SumMAC(m, t, info, []byte{byte(i)})
		okm = append(okm, t...)
	}
	return okm[:length:length]
}

// DeriveKey runs Extract then Expand with the info given at construction.
func (k *HKDF) DeriveKey(secret, salt []byte) []byte {
	return k.expand(k.Extract(salt, secret), k.info, k.dkLen)
}

// KeyLen returns the derived key length.
func (k *HKDF) KeyLen() int { return k.dkLen }
