// SPDX-License-Identifier: MIT

package schedule

import "math/rand"

// defaultSeed is used when a caller passes seed 0.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand; seed 0 maps to a fixed default.
//
// math/rand.Rand is not goroutine-safe: never share one across workers.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streams draws one parent from base and returns n independent child RNGs.
func streams(base *rand.Rand, n int) []*rand.Rand {
	parent := base.Int63()
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = rand.New(rand.NewSource(deriveSeed(parent, uint64(i))))
	}
	return out
}
