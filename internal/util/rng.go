package util

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// New returns a deterministic generator for one match. A zero seed is
// remapped so that "unset" never collides with the math/rand default.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// NewSeed draws a fresh non-zero seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}

// DeriveSeed returns the seed of the run-th match of a batch. It does
// not depend on which worker plays the match.
func DeriveSeed(base int64, run int) int64 {
	return base + int64(run)*7919
}
