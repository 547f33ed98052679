package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"conquest/game"
)

// Interactive prompts a person for every placement. It shows the
// remaining quota, reads one territory id per line and asks again on
// anything that does not parse. Rule checks stay with the game; the
// placer only turns lines into ids.
type Interactive struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewInteractive reads placements from in and prompts on out.
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{scanner: bufio.NewScanner(in), out: out}
}

// NextPlacement prompts until it reads a number. It returns io.EOF once
// the input ends.
func (i *Interactive) NextPlacement(s game.State) (game.TerritoryID, error) {
	current := s.CurrentPlayer()
	for {
		fmt.Fprintf(i.out, "player %d (%d units left) > ", current.ID(), current.UnitsToPlace())
		if !i.scanner.Scan() {
			if err := i.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		id, err := strconv.Atoi(strings.TrimSpace(i.scanner.Text()))
		if err != nil {
			fmt.Fprintln(i.out, "territory ids are numbers, try again")
			continue
		}
		return game.TerritoryID(id), nil
	}
}
