package dice

import "errors"

// ErrExhausted is the panic value of a Scripted dice asked for more
// rolls than it was given.
var ErrExhausted = errors.New("dice: scripted rolls exhausted")

// Scripted replays a fixed sequence of rolls. It exists for tests and
// deterministic replays where every roll must be known in advance.
type Scripted struct {
	rolls []int
}

// NewScripted returns dice that produce the given rolls in order.
func NewScripted(rolls ...int) *Scripted {
	s := &Scripted{rolls: make([]int, len(rolls))}
	copy(s.rolls, rolls)
	return s
}

// Roll pops the next scripted roll. It panics with ErrExhausted once
// the sequence runs out; a test asking for rolls it never scripted is
// broken and must not limp on.
func (s *Scripted) Roll() int {
	if len(s.rolls) == 0 {
		panic(ErrExhausted)
	}
	roll := s.rolls[0]
	s.rolls = s.rolls[1:]
	return roll
}

// Remaining reports how many scripted rolls are left.
func (s *Scripted) Remaining() int { return len(s.rolls) }
