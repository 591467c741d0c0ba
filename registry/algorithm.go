package registry

import (
	"fmt"
	"strings"
)

//revive:disable:var-naming

// Category tells digests and MACs apart.
type Category int

const (
	CategoryDigest Category = iota + 1
	CategoryMAC
)

// String returns the string representation of this category.
func (c Category) String() string {
	switch c {
	case CategoryDigest:
		return "Digest"
	case CategoryMAC:
		return "MAC"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Algorithm is implemented by DigestAlgorithm and MACAlgorithm.
type Algorithm interface {
	fmt.Stringer
	Category() Category
	// Size returns the output length in bytes of the algorithm.
	Size() int
}

// DigestAlgorithm is an identifier for a digest algorithm.
type DigestAlgorithm int

const (
	// Supported digest algorithms
	UnknownDigestAlgorithm DigestAlgorithm = iota
	MD4
	MD5
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	SHA512_224
	SHA512_256
	RIPEMD160
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	BLAKE2s_256
	BLAKE2b_256
	BLAKE2b_384
	BLAKE2b_512
	Keccak224
	Keccak256
	Keccak384
	Keccak512
	numDigestAlgorithms
)

var digestNames = [...]string{
	"UNKNOWN",
	"md4",
	"md5",
	"sha1",
	"sha224",
	"sha256",
	"sha384",
	"sha512",
	"sha512-224",
	"sha512-256",
	"ripemd160",
	"sha3-224",
	"sha3-256",
	"sha3-384",
	"sha3-512",
	"blake2s-256",
	"blake2b-256",
	"blake2b-384",
	"blake2b-512",
	"keccak-224",
	"keccak-256",
	"keccak-384",
	"keccak-512",
}

// digestSizes are output lengths in bytes.
var digestSizes = [...]int{
	0,
	16, 16, 20,
	28, 32, 48, 64, 28, 32,
	20,
	28, 32, 48, 64,
	32, 32, 48, 64,
	28, 32, 48, 64,
}

// valid reports whether a names a supported algorithm.
func (a DigestAlgorithm) valid() bool {
	return a > UnknownDigestAlgorithm && a < numDigestAlgorithms
}

// String returns the string representation of this digest algorithm.
func (a DigestAlgorithm) String() string {
	if a < 0 || a >= numDigestAlgorithms {
		return fmt.Sprintf("DigestAlgorithm(%d)", int(a))
	}
	return digestNames[a]
}

// Category returns CategoryDigest.
func (a DigestAlgorithm) Category() Category { return CategoryDigest }

// Size returns the output length in bytes, 0 for unsupported values.
func (a DigestAlgorithm) Size() int {
	if !a.valid() {
		return 0
	}
	return digestSizes[a]
}

// MACAlgorithm is an identifier for a MAC algorithm.
type MACAlgorithm int

const (
	// Supported MAC algorithms, HMAC over each digest algorithm.
	UnknownMACAlgorithm MACAlgorithm = iota
	HMAC_MD4
	HMAC_MD5
	HMAC_SHA1
	HMAC_SHA224
	HMAC_SHA256
	HMAC_SHA384
	HMAC_SHA512
	HMAC_SHA512_224
	HMAC_SHA512_256
	HMAC_RIPEMD160
	HMAC_SHA3_224
	HMAC_SHA3_256
	HMAC_SHA3_384
	HMAC_SHA3_512
	HMAC_BLAKE2s_256
	HMAC_BLAKE2b_256
	HMAC_BLAKE2b_384
	HMAC_BLAKE2b_512
	HMAC_Keccak224
	HMAC_Keccak256
	HMAC_Keccak384
	HMAC_Keccak512
	numMACAlgorithms
)

// macDigests maps each MAC to the digest it is built on.
var macDigests = [...]DigestAlgorithm{
	UnknownDigestAlgorithm,
	MD4,
	MD5,
	SHA1,
	SHA224,
	SHA256,
	SHA384,
	SHA512,
	SHA512_224,
	SHA512_256,
	RIPEMD160,
	SHA3_224,
	SHA3_256,
	SHA3_384,
	SHA3_512,
	BLAKE2s_256,
	BLAKE2b_256,
	BLAKE2b_384,
	BLAKE2b_512,
	Keccak224,
	Keccak256,
	Keccak384,
	Keccak512,
}

func (a MACAlgorithm) valid() bool {
	return a > UnknownMACAlgorithm && a < numMACAlgorithms
}

// Digest returns the digest algorithm the MAC is built on.
func (a MACAlgorithm) Digest() DigestAlgorithm {
	if !a.valid() {
		return UnknownDigestAlgorithm
	}
	return macDigests[a]
}

// String returns the string representation of this MAC algorithm.
func (a MACAlgorithm) String() string {
	if a == UnknownMACAlgorithm {
		return "UNKNOWN"
	}
	if !a.valid() {
		return fmt.Sprintf("MACAlgorithm(%d)", int(a))
	}
	return "hmac-" + macDigests[a].String()
}

// Category returns CategoryMAC.
func (a MACAlgorithm) Category() Category { return CategoryMAC }

// Size returns the output length in bytes, 0 for unsupported values.
func (a MACAlgorithm) Size() int { return a.Digest().Size() }

// DigestAlgorithms lists every supported digest algorithm.
func DigestAlgorithms() []DigestAlgorithm {
	algs := make([]DigestAlgorithm, 0, numDigestAlgorithms-1)
	for a := UnknownDigestAlgorithm + 1; a < numDigestAlgorithms; a++ {
		algs = append(algs, a)
	}
	return algs
}

// MACAlgorithms lists every supported MAC algorithm.
func MACAlgorithms() []MACAlgorithm {
	algs := make([]MACAlgorithm, 0, numMACAlgorithms-1)
	for a := UnknownMACAlgorithm + 1; a < numMACAlgorithms; a++ {
		algs = append(algs, a)
	}
	return algs
}

// normalize folds case and drops separators so that "SHA-256", "sha256"
// and "Sha_256" all match.
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '/', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

var (
	digestsByName = map[string]DigestAlgorithm{}
	macsByName    = map[string]MACAlgorithm{}
)

func init() {
	for _, a := range DigestAlgorithms() {
		digestsByName[normalize(a.String())] = a
	}
	for _, a := range MACAlgorithms() {
		macsByName[normalize(a.String())] = a
	}
}

// ParseDigestAlgorithm returns the digest algorithm called name. Matching
// ignores case and the separators '-', '_' and '/'.
func ParseDigestAlgorithm(name string) (DigestAlgorithm, error) {
	if a, ok := digestsByName[normalize(name)]; ok {
		return a, nil
	}
	return UnknownDigestAlgorithm, unknownAlgorithmErrorf("digest", name)
}

// ParseMACAlgorithm returns the MAC algorithm called name, such as
// "hmac-sha256".
func ParseMACAlgorithm(name string) (MACAlgorithm, error) {
	if a, ok := macsByName[normalize(name)]; ok {
		return a, nil
	}
	return UnknownMACAlgorithm, unknownAlgorithmErrorf("MAC", name)
}
