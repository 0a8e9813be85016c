package game

import "fmt"

// --- Enums ---

type Suit int

const (
	SuitSpades Suit = iota
	SuitClubs
	SuitHearts
	SuitDiamonds
)

func (s Suit) String() string {
	switch s {
	case SuitSpades:
		return "♠"
	case SuitClubs:
		return "♣"
	case SuitHearts:
		return "♥"
	case SuitDiamonds:
		return "♦"
	default:
		return "?"
	}
}

// Role is the gameplay role of a card. It is assigned once at construction
// from the suit grouping; all rule branching keys off the role, never the suit.
type Role int

const (
	RoleMonster Role = iota
	RoleWeapon
	RolePotion
)

func (r Role) String() string {
	switch r {
	case RoleMonster:
		return "Monster"
	case RoleWeapon:
		return "Weapon"
	case RolePotion:
		return "Potion"
	default:
		return "Unknown"
	}
}

// roleOf maps the suit grouping to a role: black suits are monsters,
// diamonds are weapons, hearts are potions.
func roleOf(suit Suit) Role {
	switch suit {
	case SuitDiamonds:
		return RoleWeapon
	case SuitHearts:
		return RolePotion
	default:
		return RoleMonster
	}
}

// CombatMode selects how a monster fight is resolved.
type CombatMode int

const (
	ModeBarehanded CombatMode = iota
	ModeWeapon
)

func (m CombatMode) String() string {
	if m == ModeWeapon {
		return "weapon"
	}
	return "barehanded"
}

// --- Card ---

// Card is an immutable value: a suit, a rank in [2,14], and the role derived
// from the suit. Monster ranks span 2-14; weapon and potion ranks span 2-10.
type Card struct {
	Suit Suit
	Rank int
	Role Role
}

// NewCard constructs a card and fixes its role from the suit.
func NewCard(suit Suit, rank int) Card {
	return Card{Suit: suit, Rank: rank, Role: roleOf(suit)}
}

// RankString returns the rank as displayed on a playing card (J/Q/K/A for 11-14).
func (c Card) RankString() string {
	switch c.Rank {
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	case 14:
		return "A"
	default:
		return fmt.Sprintf("%d", c.Rank)
	}
}

func (c Card) String() string {
	return c.RankString() + c.Suit.String()
}

// Describe returns the effect text shown next to a card.
func (c Card) Describe() string {
	switch c.Role {
	case RoleMonster:
		return fmt.Sprintf("Take %d damage", c.Rank)
	case RoleWeapon:
		return fmt.Sprintf("%d attack power", c.Rank)
	default:
		return fmt.Sprintf("Heal %d HP", c.Rank)
	}
}
