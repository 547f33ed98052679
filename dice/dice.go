// Package dice provides the dice capability games are constructed with.
// The core rules never seed randomness themselves; whoever builds a game
// decides what a roll means, from a real uniform die to a scripted
// sequence in tests.
package dice

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Dice produces one roll per call.
type Dice interface {
	Roll() int
}

// Func adapts a plain function to the Dice interface.
type Func func() int

func (f Func) Roll() int { return f() }

// Uniform returns dice rolling uniformly in [1, sides] from the given
// seed. Sides must be at least 1. Not safe for concurrent use.
func Uniform(sides int, seed uint64) Dice {
	if sides < 1 {
		panic(fmt.Sprintf("dice: die needs at least one side, got %d", sides))
	}
	rng := rand.New(rand.NewSource(seed))
	return Func(func() int {
		return rng.Intn(sides) + 1
	})
}
