package game

const (
	MaxHealth = 20
	RoomSize  = 4
	// PlaysPerRoom is how many cards must be played before the room turns over.
	PlaysPerRoom = 3
)

// Phase is the engine's top-level state.
type Phase int

const (
	// PhaseActive is normal play with a 1-4 card room.
	PhaseActive Phase = iota
	// PhaseFinalCard means the dungeon is empty and exactly one card remains;
	// it must be faced before the game can end.
	PhaseFinalCard
	// PhaseOver is terminal; Won distinguishes victory from death.
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "Active"
	case PhaseFinalCard:
		return "FinalCard"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Weapon is the equipped weapon slot: the card plus the rank of the last
// monster it slew. Once set, the next weapon kill must be strictly weaker.
type Weapon struct {
	Card      Card
	LastSlain int // 0 = no kill yet, full durability
}

// CanUseAgainst reports whether the weapon may be used on a monster of the
// given rank. The dulling rule: each kill lowers the ceiling to just below
// the slain monster's rank.
func (w *Weapon) CanUseAgainst(rank int) bool {
	return w.LastSlain == 0 || rank < w.LastSlain
}

// DamageAgainst is the damage taken when using the weapon on a monster of
// the given rank, floored at zero.
func (w *Weapon) DamageAgainst(rank int) int {
	dmg := rank - w.Card.Rank
	if dmg < 0 {
		dmg = 0
	}
	return dmg
}

// roomFlags is the per-room tracking record, reset by every deal.
type roomFlags struct {
	played     int  // cards played since the last deal, 0-3
	potionUsed bool // second potion in a room is wasted
	lastHeal   int  // rank of the last normal-flow heal, 0 if the last action was not one
}

// State holds the complete state of one dungeon run. All 44 cards are created
// at game start and only ever move between the four zones and the weapon slot.
type State struct {
	Dungeon  []Card // FIFO draw pile, front is drawn next
	Room     []Card // active window, player-addressable by index
	Discard  []Card
	Trophies []Card // monsters slain by the current weapon
	Weapon   *Weapon

	Health    int
	MaxHealth int

	Phase       Phase
	Won         bool
	Turn        int
	JustSkipped bool
	flags       roomFlags

	// Score is computed once, when Phase becomes PhaseOver.
	Score int

	// pendingCombat is the room index of a monster awaiting a combat-mode
	// choice, or -1.
	pendingCombat int
}

// newState builds a fresh state with an unshuffled dungeon.
func newState() *State {
	return &State{
		Dungeon:       BuildDeck(),
		Health:        MaxHealth,
		MaxHealth:     MaxHealth,
		Turn:          1,
		pendingCombat: -1,
	}
}

// CardCount sums every zone plus the weapon slot. It must equal DeckSize at
// every observable point.
func (s *State) CardCount() int {
	n := len(s.Dungeon) + len(s.Room) + len(s.Discard) + len(s.Trophies)
	if s.Weapon != nil {
		n++
	}
	return n
}

// removeFromRoom removes and returns the card at index i.
// Later positions shift down by one; this reindexing is observable through
// snapshots and drives selection in the presentation layers.
func (s *State) removeFromRoom(i int) Card {
	card := s.Room[i]
	s.Room = append(s.Room[:i], s.Room[i+1:]...)
	return card
}

// monstersRemaining sums the ranks of every monster still unfaced
// (in the dungeon or the room). Used by loss scoring.
func (s *State) monstersRemaining() int {
	total := 0
	for _, c := range s.Dungeon {
		if c.Role == RoleMonster {
			total += c.Rank
		}
	}
	for _, c := range s.Room {
		if c.Role == RoleMonster {
			total += c.Rank
		}
	}
	return total
}
