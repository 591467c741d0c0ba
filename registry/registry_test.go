package registry

import (
	"bytes"
	stdhmac "crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/Giulio2002/hashkit/digest"
)

func TestEveryDigestAlgorithm(t *testing.T) {
	algs := DigestAlgorithms()
	require.Len(t, algs, int(numDigestAlgorithms)-1)
	require.Len(t, digestNames, int(numDigestAlgorithms))
	require.Len(t, digestSizes, int(numDigestAlgorithms))

	for _, alg := range algs {
		t.Run(alg.String(), func(t *testing.T) {
			d, err := NewDigest(alg)
			require.NoError(t, err)
			assert.Equal(t, alg.Size(), d.Size())
			assert.Positive(t, d.BlockSize())
			assert.Equal(t, CategoryDigest, alg.Category())

			out := digest.Sum(d, []byte("abc"))
			assert.Len(t, out, alg.Size())
			// Determinism and reset postcondition.
			assert.Equal(t, out, digest.Sum(d, []byte("abc")))
		})
	}
}

func TestEveryMACAlgorithm(t *testing.T) {
	algs := MACAlgorithms()
	require.Len(t, algs, int(numMACAlgorithms)-1)
	require.Len(t, macDigests, int(numMACAlgorithms))

	for _, alg := range algs {
		t.Run(alg.String(), func(t *testing.T) {
			m, err := NewMAC(alg, []byte("key"))
			require.NoError(t, err)
			assert.Equal(t, alg.Size(), m.Size())
			assert.Equal(t, alg.Digest().Size(), m.Size())
			assert.Equal(t, CategoryMAC, alg.Category())

			out := digest.SumMAC(m, []byte("abc"))
			assert.Len(t, out, alg.Size())
			assert.Equal(t, out, digest.SumMAC(m, []byte("abc")))
		})
	}
}

func TestDelegatedDigestsMatchReference(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	sha := sha256.Sum256(data)
	s3 := sha3.Sum512(data)
	b2 := blake2b.Sum256(data)

	cases := map[DigestAlgorithm][]byte{
		SHA256:      sha[:],
		SHA3_512:    s3[:],
		BLAKE2b_256: b2[:],
	}
	for alg, want := range cases {
		d, err := NewDigest(alg)
		require.NoError(t, err)
		assert.Equal(t, want, digest.Sum(d, data), alg.String())
	}
}

func TestKeccakVector(t *testing.T) {
	d, err := NewDigest(Keccak256)
	require.NoError(t, err)
	assert.Equal(t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(d.Digest()))
}

func TestHMACMatchesStandardLibrary(t *testing.T) {
	key := []byte("registry key")
	msg := []byte("registry message")

	ref := stdhmac.New(sha3.NewLegacyKeccak256, key)
	ref.Write(msg)

	m, err := NewMAC(HMAC_Keccak256, key)
	require.NoError(t, err)
	assert.Equal(t, ref.Sum(nil), digest.SumMAC(m, msg))
}

func TestUnknownAlgorithms(t *testing.T) {
	for _, alg := range []DigestAlgorithm{UnknownDigestAlgorithm, numDigestAlgorithms, -1, 1000} {
		d, err := NewDigest(alg)
		require.Error(t, err)
		assert.Nil(t, d)
		assert.True(t, digest.IsInvalidInputsError(err))
		assert.Equal(t, 0, alg.Size())
	}
	for _, alg := range []MACAlgorithm{UnknownMACAlgorithm, numMACAlgorithms, -1} {
		m, err := NewMAC(alg, nil)
		require.Error(t, err)
		assert.Nil(t, m)
		assert.True(t, digest.IsInvalidInputsError(err))
		assert.Equal(t, UnknownDigestAlgorithm, alg.Digest())
	}
}

func TestFreshInstances(t *testing.T) {
	a, err := NewDigest(Keccak512)
	require.NoError(t, err)
	b, err := NewDigest(Keccak512)
	require.NoError(t, err)
	require.NotSame(t, a, b)

	a.Update([]byte("only in a"))
	assert.Equal(t, digest.Sum(b), digest.Sum(mustDigest(t, Keccak512)))
}

func mustDigest(t *testing.T, alg DigestAlgorithm) digest.Digest {
	d, err := NewDigest(alg)
	require.NoError(t, err)
	return d
}

func TestConcurrentConstruction(t *testing.T) {
	data := bytes.Repeat([]byte{7}, 1000)
	want := digest.Sum(mustDigest(t, SHA3_256), data)

	var wg sync.WaitGroup
	results := make([][]byte, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := NewDigest(SHA3_256)
			if err != nil {
				return
			}
			results[i] = digest.Sum(d, data)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestParse(t *testing.T) {
	for _, alg := range DigestAlgorithms() {
		got, err := ParseDigestAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}
	for _, alg := range MACAlgorithms() {
		got, err := ParseMACAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}

	aliases := map[string]DigestAlgorithm{
		"SHA-256":     SHA256,
		"Keccak256":   Keccak256,
		"sha512/256":  SHA512_256,
		"SHA3_384":    SHA3_384,
		"blake2b-512": BLAKE2b_512,
	}
	for name, want := range aliases {
		got, err := ParseDigestAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	mac, err := ParseMACAlgorithm("HMAC-SHA-1")
	require.NoError(t, err)
	assert.Equal(t, HMAC_SHA1, mac)

	_, err = ParseDigestAlgorithm("sha-1024")
	assert.True(t, digest.IsInvalidInputsError(err))
	_, err = ParseMACAlgorithm("sha256")
	assert.True(t, digest.IsInvalidInputsError(err))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "keccak-256", Keccak256.String())
	assert.Equal(t, "hmac-sha512-256", HMAC_SHA512_256.String())
	assert.Equal(t, "UNKNOWN", UnknownDigestAlgorithm.String())
	assert.Equal(t, "UNKNOWN", UnknownMACAlgorithm.String())
	assert.Equal(t, "DigestAlgorithm(99)", DigestAlgorithm(99).String())
	assert.Equal(t, "MACAlgorithm(-1)", MACAlgorithm(-1).String())
	assert.Equal(t, "Digest", CategoryDigest.String())
	assert.Equal(t, "MAC", CategoryMAC.String())

	var algs []Algorithm
	algs = append(algs, SHA1, HMAC_SHA1)
	assert.Equal(t, CategoryDigest, algs[0].Category())
	assert.Equal(t, CategoryMAC, algs[1].Category())
	assert.Equal(t, 20, algs[1].Size())
}
