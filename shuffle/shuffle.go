// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package shuffle

import "math/rand/v2"

// Ints returns a seeded Fisher-Yates permutation of nums as a new slice.
// The same seed and input always produce the same order, and the input is
// never modified. This is display-order cosmetics only: the assignment draw
// in package handlers does not go through here.
func Ints(nums []int, seed uint64) []int {
	out := make([]int, len(nums))
	copy(out, nums)

	rng := rand.New(rand.NewPCG(seed, 0))
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
