// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package shuffle provides pure, seedable display-order randomization.

	shuffled := shuffle.Ints(numbers, seed)

The permutation is deterministic per seed (PCG-seeded Fisher-Yates) and the
input slice is left untouched, so the same seed renders the same board on
every poll refresh. None of this affects which number a user is assigned;
the assignment draw is separate and lives next to the pick handler.
*/
package shuffle
