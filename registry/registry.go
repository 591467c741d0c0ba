// Package registry maps algorithm identifiers to freshly constructed digest
// and MAC engines.
//
// Every call returns a new instance and the package holds no mutable state,
// so it is safe to call from multiple goroutines. The engines it returns are
// not.
package registry

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/Giulio2002/hashkit/digest"
	"github.com/Giulio2002/hashkit/hmac"
	"github.com/Giulio2002/hashkit/keccak"
)

func unknownAlgorithmErrorf(category string, alg interface{}) error {
	return digest.InvalidInputsErrorf("registry: unknown %s algorithm %v", category, alg)
}

// delegate adapts a hash.Hash constructor.
func delegate(newHash func() hash.Hash) func() digest.Digest {
	return func() digest.Digest {
		return digest.Wrap(newHash())
	}
}

// unkeyed adapts the BLAKE2 constructors, which only fail for oversized keys.
func unkeyed(newHash func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newHash(nil)
		if err != nil {
			panic("registry: unkeyed BLAKE2 construction failed: " + err.Error())
		}
		return h
	}
}

// DigestConstructor resolves alg once and returns a function building fresh
// instances of it.
func DigestConstructor(alg DigestAlgorithm) (func() digest.Digest, error) {
	switch alg {
	case MD4:
		return delegate(md4.New), nil
	case MD5:
		return delegate(md5.New), nil
	case SHA1:
		return delegate(sha1.New), nil
	case SHA224:
		return delegate(sha256.New224), nil
	case SHA256:
		return delegate(sha256.New), nil
	case SHA384:
		return delegate(sha512.New384), nil
	case SHA512:
		return delegate(sha512.New), nil
	case SHA512_224:
		return delegate(sha512.New512_224), nil
	case SHA512_256:
		return delegate(sha512.New512_256), nil
	case RIPEMD160:
		return delegate(ripemd160.New), nil
	case SHA3_224:
		return delegate(sha3.New224), nil
	case SHA3_256:
		return delegate(sha3.New256), nil
	case SHA3_384:
		return delegate(sha3.New384), nil
	case SHA3_512:
		return delegate(sha3.New512), nil
	case BLAKE2s_256:
		return delegate(unkeyed(blake2s.New256)), nil
	case BLAKE2b_256:
		return delegate(unkeyed(blake2b.New256)), nil
	case BLAKE2b_384:
		return delegate(unkeyed(blake2b.New384)), nil
	case BLAKE2b_512:
		return delegate(unkeyed(blake2b.New512)), nil
	case Keccak224:
		return func() digest.Digest { return keccak.New224() }, nil
	case Keccak256:
		return func() digest.Digest { return keccak.New256() }, nil
	case Keccak384:
		return func() digest.Digest { return keccak.New384() }, nil
	case Keccak512:
		return func() digest.Digest { return keccak.New512() }, nil
	default:
		return nil, unknownAlgorithmErrorf("digest", alg)
	}
}

// MACConstructor resolves alg once and returns a function building fresh
// keyed instances of it.
func MACConstructor(alg MACAlgorithm) (func(key []byte) digest.MAC, error) {
	if !alg.valid() {
		return nil, unknownAlgorithmErrorf("MAC", alg)
	}
	newDigest, err := DigestConstructor(alg.Digest())
	if err != nil {
		return nil, err
	}
	return func(key []byte) digest.MAC {
		return hmac.New(newDigest(), key)
	}, nil
}

// NewDigest returns a new instance of alg.
func NewDigest(alg DigestAlgorithm) (digest.Digest, error) {
	newDigest, err := DigestConstructor(alg)
	if err != nil {
		return nil, err
	}
	return newDigest(), nil
}

// NewMAC returns a new instance of alg keyed with key.
func NewMAC(alg MACAlgorithm, key []byte) (digest.MAC, error) {
	newMAC, err := MACConstructor(alg)
	if err != nil {
		return nil, err
	}
	return newMAC(key), nil
}
