package kdf

import (
	"github.com/Giulio2002/hashkit/digest"
	"github.com/Giulio2002/hashkit/registry"
)

// PBKDF1 is the digest-based PBKDF1 of RFC 8018, section 5.1.
type PBKDF1 struct {
	newDigest  func() digest.Digest
	iterations int
	dkLen      int
}

// NewPBKDF1 returns a PBKDF1 over alg. dkLen may not exceed the digest
// output length.
func NewPBKDF1(alg registry.DigestAlgorithm, iterations, dkLen int) (*PBKDF1, error) {
	newDigest, err := registry.DigestConstructor(alg)
	if err != nil {
		return nil, err
	}

	errs := checkIterations(nil, iterations)
	errs = checkKeyLen(errs, dkLen, int64(alg.Size()))
	if err := invalidParameters("pbkdf1", errs); err != nil {
		return nil, err
	}

	return &PBKDF1{
		newDigest:  newDigest,
		iterations: iterations,
		dkLen:      dkLen,
	}, nil
}

// DeriveKey hashes secret || salt, then rehashes the result
// iterations-1 times and keeps the first KeyLen() bytes.
func (k *PBKDF1) DeriveKey(secret, salt []byte) []byte {
	d := k.newDigest()
	t := digest.Sum(d, secret, salt)
	for i := 1; i < k.iterations; i++ {
		t = digest.Sum(d, t)
	}
	return t[:k.dkLen:k.dkLen]
}

// KeyLen returns the derived key length.
func (k *PBKDF1) KeyLen() int { return k.dkLen }

// Iterations returns the iteration count.
func (k *PBKDF1) Iterations() int { return k.iterations }
