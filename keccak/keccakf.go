package keccak

import "math/bits"

// rounds is the number of rounds of Keccak-f[1600].
const rounds = 24

// roundConstants are the ι step constants, one per round.
var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotations are the ρ step offsets, indexed like the lanes (x + 5y).
var rotations = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// mod returns a mod n in [0, n), also for negative a.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// lane returns the index of lane (x, y) in the state, with both coordinates
// taken modulo 5.
func lane(x, y int) int {
	return mod(x, 5) + 5*mod(y, 5)
}

// keccakF1600 applies the Keccak-f[1600] permutation to the 25 lanes of a.
func keccakF1600(a *[25]uint64) {
	var (
		c, d [5]uint64
		b    [25]uint64
	)

	for round := 0; round < rounds; round++ {
		// θ
		for x := 0; x < 5; x++ {
			c[x] = a[lane(x, 0)] ^ a[lane(x, 1)] ^ a[lane(x, 2)] ^ a[lane(x, 3)] ^ a[lane(x, 4)]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[mod(x-1, 5)] ^ bits.RotateLeft64(c[mod(x+1, 5)], 1)
		}
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				a[lane(x, y)] ^= d[x]
			}
		}

		// ρ and π
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				b[lane(y, 2*x+3*y)] = bits.RotateLeft64(a[lane(x, y)], rotations[lane(x, y)])
			}
		}

		// χ
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				a[lane(x, y)] = b[lane(x, y)] ^ (^b[lane(x+1, y)] & b[lane(x+2, y)])
			}
		}

		// ι
		a[0] ^= roundConstants[round]
	}
}
