package dice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	t.Run("stays inside the die", func(t *testing.T) {
		d := Uniform(6, 42)

		for i := 0; i < 1000; i++ {
			roll := d.Roll()
			require.GreaterOrEqual(t, roll, 1, "Rolls should not go below one")
			require.LessOrEqual(t, roll, 6, "Rolls should not exceed the sides")
		}
	})

	t.Run("repeats under the same seed", func(t *testing.T) {
		first := Uniform(6, 7)
		second := Uniform(6, 7)

		for i := 0; i < 100; i++ {
			require.Equal(t, first.Roll(), second.Roll(),
				"The same seed should produce the same sequence")
		}
	})

	t.Run("panics on a die without sides", func(t *testing.T) {
		require.Panics(t, func() { Uniform(0, 1) },
			"A die needs at least one side")
		require.Panics(t, func() { Uniform(-6, 1) },
			"A die needs at least one side")
	})
}

func TestFunc(t *testing.T) {
	d := Func(func() int { return 4 })

	require.Equal(t, 4, d.Roll(), "Func should pass the call through")
}

func TestScripted(t *testing.T) {
	t.Run("replays the rolls in order", func(t *testing.T) {
		d := NewScripted(3, 1, 2)

		require.Equal(t, 3, d.Roll())
		require.Equal(t, 1, d.Roll())
		require.Equal(t, 2, d.Roll())
		require.Equal(t, 0, d.Remaining())
	})

	t.Run("panics once the script runs out", func(t *testing.T) {
		d := NewScripted(1)
		d.Roll()

		require.PanicsWithError(t, ErrExhausted.Error(), func() { d.Roll() },
			"A test rolling more than it scripted is broken")
	})

	t.Run("keeps its own copy of the script", func(t *testing.T) {
		rolls := []int{5, 6}
		d := NewScripted(rolls...)

		rolls[0] = 1

		require.Equal(t, 5, d.Roll(), "Mutating the source should not reach the dice")
	})
}
