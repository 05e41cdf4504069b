package bench

import "math/rand"

// Stream identifiers for the RNGs derived from Config.Seed. Fill and order use
// separate streams so that changing the algorithm list never changes the graphs.
const (
	streamFill  uint64 = 1
	streamOrder uint64 = 2
	streamWarm  uint64 = 3
)

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the deterministic RNG of one stream.
func streamRNG(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// FillSeed returns the seed of the fill stream, so that
// rand.New(rand.NewSource(FillSeed(seed))) reproduces the first graph a Runner
// measures for seed.
func FillSeed(seed int64) int64 {
	return deriveSeed(seed, streamFill)
}
