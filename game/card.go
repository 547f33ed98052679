package game

type CardType int

const (
	Infantry CardType = iota
	Cavalry
	Artillery
	Wild
)

// Card is one card of the reward pool. The pool is dealt and traded
// only in later phases; during placement it rides along untouched.
type Card struct {
	Type      CardType
	Territory TerritoryID // -1 on wild cards
}

// StandardDeck builds the card pool for a board: one card per territory
// cycling the three troop types, plus two wild cards. The deck is left
// unshuffled so that setup stays deterministic; shuffling is a
// play-phase concern.
func StandardDeck(b Board) []Card {
	types := []CardType{Infantry, Cavalry, Artillery}
	cards := make([]Card, 0, b.Len()+2)
	for i, t := range b.Territories() {
		cards = append(cards, Card{Type: types[i%3], Territory: t.ID()})
	}
	cards = append(cards, Card{Type: Wild, Territory: -1})
	cards = append(cards, Card{Type: Wild, Territory: -1})
	return cards
}
