package kdf

import (
	"encoding/binary"
	"math"

	"github.com/Giulio2002/hashkit/digest"
	"github.com/Giulio2002/hashkit/registry"
)

// PBKDF2 is the MAC-based PBKDF2 of RFC 8018, section 5.2.
type PBKDF2 struct {
	newMAC     func(key []byte) digest.MAC
	iterations int
	dkLen      int
}

// NewPBKDF2 returns a PBKDF2 using alg as pseudorandom function. dkLen may
// not exceed (2^32 - 1) blocks of MAC output.
func NewPBKDF2(alg registry.MACAlgorithm, iterations, dkLen int) (*PBKDF2, error) {
	newMAC, err := registry.MACConstructor(alg)
	if err != nil {
		return nil, err
	}

	errs := checkIterations(nil, iterations)
	errs = checkKeyLen(errs, dkLen, math.MaxUint32*int64(alg.Size()))
	if err := invalidParameters("pbkdf2", errs); err != nil {
		return nil, err
	}

	return &PBKDF2{
		newMAC:     newMAC,
		iterations: iterations,
		dkLen:      dkLen,
	}, nil
}

// DeriveKey computes T_1 || T_2 || ... truncated to KeyLen() bytes, where
// T_i = U_1 ^ ... ^ U_c, U_1 = PRF(secret, salt || INT(i)) and
// U_j = PRF(secret, U_{j-1}).
func (k *PBKDF2) DeriveKey(secret, salt []byte) []byte {
	prf := k.newMAC(secret)
	hLen := prf.Size()
	blocks := (k.dkLen + hLen - 1) / hLen

	dk := make([]byte, 0, blocks*hLen)
	var counter [4]byte
	for block := 1; block <= blocks; block++ {
		binary.BigEndian.PutUint32(counter[:], uint32(block))
		u := digest.SumMAC(prf, salt, counter[:])

		t := make([]byte, hLen)
		copy(t, u)
		for n := 2; n <= k.iterations; n++ {
			u = digest.SumMAC(prf, u)
			for x := range t {
				t[x] ^= u[x]
			}
		}
		dk = append(dk, t...)
	}
	return dk[:k.dkLen:k.dkLen]
}

// KeyLen returns the derived key length.
func (k *PBKDF2) KeyLen() int { return k.dkLen }

// Iterations returns the iteration count.
func (k *PBKDF2) Iterations() int { return k.iterations }
