package game

import (
	"math/rand"
	"testing"
)

// TestDeckComposition: 44 cards; monster ranks cover 2-14 twice (one per
// black suit); weapon and potion ranks each cover 2-10 once, 18 red cards
// in all.
func TestDeckComposition(t *testing.T) {
	deck := BuildDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck has %d cards, want %d", len(deck), DeckSize)
	}

	counts := map[Role]map[int]int{
		RoleMonster: {},
		RoleWeapon:  {},
		RolePotion:  {},
	}
	red := 0
	for _, c := range deck {
		counts[c.Role][c.Rank]++
		if c.Role != RoleMonster {
			red++
		}
	}

	for rank := 2; rank <= 14; rank++ {
		if counts[RoleMonster][rank] != 2 {
			t.Errorf("monster rank %d appears %d times, want 2", rank, counts[RoleMonster][rank])
		}
	}
	for rank := 2; rank <= 10; rank++ {
		if counts[RoleWeapon][rank] != 1 {
			t.Errorf("weapon rank %d appears %d times, want 1", rank, counts[RoleWeapon][rank])
		}
		if counts[RolePotion][rank] != 1 {
			t.Errorf("potion rank %d appears %d times, want 1", rank, counts[RolePotion][rank])
		}
	}
	if red != 18 {
		t.Errorf("weapon+potion cards = %d, want 18", red)
	}
	for rank := 11; rank <= 14; rank++ {
		if counts[RoleWeapon][rank] != 0 || counts[RolePotion][rank] != 0 {
			t.Errorf("weapon/potion cards exist at rank %d", rank)
		}
	}
}

// TestShuffleSeeded: the same seed produces the same order, and shuffling
// permutes without losing cards.
func TestShuffleSeeded(t *testing.T) {
	a := BuildDeck()
	b := BuildDeck()
	ShuffleDeck(a, rand.New(rand.NewSource(7)))
	ShuffleDeck(b, rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %s vs %s", i, a[i], b[i])
		}
	}

	c := BuildDeck()
	ShuffleDeck(c, rand.New(rand.NewSource(8)))
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical orders")
	}

	seen := map[Card]int{}
	for _, card := range c {
		seen[card]++
	}
	if len(seen) != DeckSize {
		t.Errorf("shuffle lost cards: %d distinct, want %d", len(seen), DeckSize)
	}
}

func TestRankStrings(t *testing.T) {
	cases := map[int]string{2: "2", 10: "10", 11: "J", 12: "Q", 13: "K", 14: "A"}
	for rank, want := range cases {
		if got := NewCard(SuitSpades, rank).RankString(); got != want {
			t.Errorf("rank %d displays %q, want %q", rank, got, want)
		}
	}
	if got := NewCard(SuitHearts, 4).String(); got != "4♥" {
		t.Errorf("display = %q, want 4♥", got)
	}
}

func TestRoleFromSuit(t *testing.T) {
	if NewCard(SuitSpades, 5).Role != RoleMonster || NewCard(SuitClubs, 5).Role != RoleMonster {
		t.Error("black suits must be monsters")
	}
	if NewCard(SuitDiamonds, 5).Role != RoleWeapon {
		t.Error("diamonds must be weapons")
	}
	if NewCard(SuitHearts, 5).Role != RolePotion {
		t.Error("hearts must be potions")
	}
}
