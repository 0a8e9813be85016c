package game

import "math/rand"

// DeckSize is the fixed number of cards in a dungeon deck.
const DeckSize = 44

// BuildDeck constructs the fixed 44-card multiset in suit/rank order:
// two monster suits spanning 2-14, weapons and potions spanning 2-10.
func BuildDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, suit := range []Suit{SuitSpades, SuitClubs} {
		for rank := 2; rank <= 14; rank++ {
			deck = append(deck, NewCard(suit, rank))
		}
	}
	for _, suit := range []Suit{SuitHearts, SuitDiamonds} {
		for rank := 2; rank <= 10; rank++ {
			deck = append(deck, NewCard(suit, rank))
		}
	}
	return deck
}

// ShuffleDeck applies a uniform permutation using the given source.
// A nil source falls back to the shared one.
func ShuffleDeck(deck []Card, rng *rand.Rand) {
	swap := func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	}
	if rng != nil {
		rng.Shuffle(len(deck), swap)
		return
	}
	rand.Shuffle(len(deck), swap)
}
