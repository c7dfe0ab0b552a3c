// Package hasher maps arbitrary byte sequences to fixed-width digests.
//
// None of the functions here are cryptographic. Two different inputs may
// produce the same Digest and callers must not treat that as an error.
package hasher

import "github.com/spaolacci/murmur3"

// Digest is the fixed-width output of a hash function.
type Digest uint32

// Func is a deterministic, total hash function. It must never panic and must
// return the same Digest for equal inputs.
type Func func(data []byte) Digest

// seed is the starting value of the polynomial hash, so that the empty input
// does not collapse to zero.
const seed Digest = 5381

// Sum computes a polynomial rolling hash over data: h = h*33 + b for every
// byte, wrapping around on overflow.
func Sum(data []byte) Digest {
	h := seed
	for _, b := range data {
		h = h<<5 + h + Digest(b)
	}
	return h
}

// SumString is Sum over the bytes of s.
func SumString(s string) Digest {
	return Sum([]byte(s))
}

// Murmur3 hashes data with 32-bit MurmurHash3 (seed 0).
func Murmur3(data []byte) Digest {
	return Digest(murmur3.Sum32(data))
}
