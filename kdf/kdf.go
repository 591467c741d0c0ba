// Package kdf implements the password-based key derivation functions PBKDF1
// and PBKDF2 (RFC 8018) and the extract-and-expand HKDF (RFC 5869) over the
// algorithms of the registry package.
//
// A KDF is immutable once constructed and safe for concurrent use: every
// derivation builds its own digest or MAC engines. Parameters are checked
// by the constructors, so derivation itself cannot fail.
package kdf

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Giulio2002/hashkit/digest"
)

// KDF derives keys of a fixed length.
type KDF interface {
	// DeriveKey returns KeyLen() bytes derived from secret and salt.
	DeriveKey(secret, salt []byte) []byte

	// KeyLen returns the length of derived keys in bytes.
	KeyLen() int
}

var (
	_ KDF = (*PBKDF1)(nil)
	_ KDF = (*PBKDF2)(nil)
	_ KDF = (*HKDF)(nil)
)

// checkIterations appends an error to errs if iterations is not positive.
func checkIterations(errs error, iterations int) error {
	if iterations <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("iteration count must be positive, got %d", iterations))
	}
	return errs
}

// checkKeyLen appends an error to errs unless 0 < dkLen <= limit.
func checkKeyLen(errs error, dkLen int, limit int64) error {
	switch {
	case dkLen <= 0:
		errs = multierr.Append(errs, fmt.Errorf("derived key length must be positive, got %d", dkLen))
	case int64(dkLen) > limit:
		errs = multierr.Append(errs, fmt.Errorf("derived key length %d exceeds the maximum of %d bytes", dkLen, limit))
	}
	return errs
}

// invalidParameters wraps every collected violation in one invalid inputs
// error, or returns nil.
func invalidParameters(name string, errs error) error {
	if errs == nil {
		return nil
	}
	return digest.InvalidInputsErrorf("%s: invalid parameters: %w", name, errs)
}
