package hmac

import (
	"bytes"
	stdhmac "crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
	"pgregory.net/rapid"

	"github.com/Giulio2002/hashkit/digest"
	"github.com/Giulio2002/hashkit/keccak"
)

func decodeHex(t testing.TB, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// RFC 4231 test cases for HMAC-SHA-256.
func TestRFC4231(t *testing.T) {
	cases := []struct {
		name string
		key  []byte
		data []byte
		want string
	}{
		{
			name: "case 1",
			key:  bytes.Repeat([]byte{0x0b}, 20),
			data: []byte("Hi There"),
			want: "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
		},
		{
			name: "case 6, key larger than block size",
			key:  bytes.Repeat([]byte{0xaa}, 131),
			data: []byte("Test Using Larger Than Block-Size Key - Hash Key First"),
			want: "60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(digest.Wrap(sha256.New()), tc.key)
			assert.Equal(t, decodeHex(t, tc.want), digest.SumMAC(m, tc.data))
		})
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	digests := map[string]struct {
		ours func() digest.Digest
		ref  func() hash.Hash
	}{
		"md5":        {func() digest.Digest { return digest.Wrap(md5.New()) }, md5.New},
		"sha1":       {func() digest.Digest { return digest.Wrap(sha1.New()) }, sha1.New},
		"sha512":     {func() digest.Digest { return digest.Wrap(sha512.New()) }, sha512.New},
		"keccak-256": {func() digest.Digest { return keccak.New256() }, sha3.NewLegacyKeccak256},
		"keccak-512": {func() digest.Digest { return keccak.New512() }, sha3.NewLegacyKeccak512},
	}
	keys := [][]byte{
		nil,
		[]byte("short key"),
		bytes.Repeat([]byte{0x42}, 64),
		bytes.Repeat([]byte{0x17}, 72),
		bytes.Repeat([]byte{0x99}, 200),
	}
	msg := bytes.Repeat([]byte("message "), 40)

	for name, d := range digests {
		for _, key := range keys {
			ref := stdhmac.New(d.ref, key)
			ref.Write(msg)
			want := ref.Sum(nil)

			got := digest.SumMAC(New(d.ours(), key), msg)
			assert.Equal(t, want, got, "%s with %d byte key", name, len(key))
		}
	}
}

func TestKeyShortening(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blockSize := sha256.BlockSize
		key := rapid.SliceOfN(rapid.Byte(), blockSize+1, 4*blockSize).Draw(t, "key")
		msg := rapid.SliceOf(rapid.Byte()).Draw(t, "msg")

		hashedKey := sha256.Sum256(key)
		long := digest.SumMAC(New(digest.Wrap(sha256.New()), key), msg)
		short := digest.SumMAC(New(digest.Wrap(sha256.New()), hashedKey[:]), msg)
		if !bytes.Equal(long, short) {
			t.Fatalf("HMAC(key) %x != HMAC(digest(key)) %x", long, short)
		}
	})
}

func TestMACResets(t *testing.T) {
	key := []byte("key")
	m := New(keccak.New256(), key)
	_ = digest.SumMAC(m, []byte("earlier message"))

	fresh := New(keccak.New256(), key)
	assert.Equal(t, digest.SumMAC(fresh, []byte("y")), digest.SumMAC(m, []byte("y")))
}

func TestStreamingUpdates(t *testing.T) {
	key := []byte("streaming")
	msg := []byte("a message split over several updates")

	want := digest.SumMAC(New(digest.Wrap(sha256.New()), key), msg)

	m := New(digest.Wrap(sha256.New()), key)
	m.Update(msg[:5])
	m.UpdateByte(msg[5])
	_, err := m.Write(msg[6:20])
	require.NoError(t, err)
	_, err = digest.ReadFrom(m, bytes.NewReader(msg[20:]))
	require.NoError(t, err)
	assert.Equal(t, want, m.MAC())
}

func TestSizes(t *testing.T) {
	m := New(digest.Wrap(sha512.New()), nil)
	assert.Equal(t, sha512.Size, m.Size())
	assert.Equal(t, sha512.BlockSize, m.BlockSize())

	k := New(keccak.New224(), nil)
	assert.Equal(t, keccak.Size224, k.Size())
	assert.Equal(t, 144, k.BlockSize())
}

func TestNewWithBlockSize(t *testing.T) {
	m, err := NewWithBlockSize(digest.Wrap(sha256.New()), []byte("key"), sha256.BlockSize)
	require.NoError(t, err)
	want := digest.SumMAC(New(digest.Wrap(sha256.New()), []byte("key")), []byte("msg"))
	assert.Equal(t, want, digest.SumMAC(m, []byte("msg")))

	for _, bs := range []int{0, -64} {
		m, err := NewWithBlockSize(digest.Wrap(sha256.New()), []byte("key"), bs)
		require.Error(t, err)
		assert.Nil(t, m)
		assert.True(t, digest.IsInvalidInputsError(err))
	}
}

func TestEqual(t *testing.T) {
	a := []byte{1, 2, 3}
	assert.True(t, Equal(a, []byte{1, 2, 3}))
	assert.False(t, Equal(a, []byte{1, 2, 4}))
	assert.False(t, Equal(a, []byte{1, 2}))
}
