package game

import (
	"fmt"

	"github.com/peterkuimelis/scoundrel/internal/log"
)

// Snapshot is the read-only view of the engine returned by Snapshot().
// Presentation layers render it and issue commands; they never mutate zones.
type Snapshot struct {
	Health    int
	MaxHealth int
	Weapon    *WeaponStatus
	Room      []RoomCard
	Dungeon   int // cards left in the draw pile
	Discard   int
	Trophies  []Card

	Played        int
	PotionUsed    bool
	JustSkipped   bool
	Turn          int
	Phase         Phase
	Won           bool
	Score         int // valid once Phase is PhaseOver
	PendingCombat int // room index awaiting a combat-mode choice, -1 if none

	Events []log.GameEvent
}

// WeaponStatus describes the equipped weapon and its remaining ceiling.
type WeaponStatus struct {
	Card       Card
	LastSlain  int    // 0 until the first kill
	Durability string // "Full", "Hits up to N", or "Broken"
}

// RoomCard is one addressable room position with the combat preview the
// presentation layers would otherwise have to re-derive.
type RoomCard struct {
	Card         Card
	CanUseWeapon bool
	WeaponDamage int // damage taken if fought with the weapon (when legal)
}

// Snapshot returns the current state. Slices are copies; mutating them does
// not touch the engine.
func (e *Engine) Snapshot() Snapshot {
	s := e.state

	snap := Snapshot{
		Health:        s.Health,
		MaxHealth:     s.MaxHealth,
		Dungeon:       len(s.Dungeon),
		Discard:       len(s.Discard),
		Trophies:      append([]Card(nil), s.Trophies...),
		Played:        s.flags.played,
		PotionUsed:    s.flags.potionUsed,
		JustSkipped:   s.JustSkipped,
		Turn:          s.Turn,
		Phase:         s.Phase,
		Won:           s.Won,
		Score:         s.Score,
		PendingCombat: s.pendingCombat,
		Events:        append([]log.GameEvent(nil), e.logger.Events()...),
	}

	if s.Weapon != nil {
		snap.Weapon = &WeaponStatus{
			Card:       s.Weapon.Card,
			LastSlain:  s.Weapon.LastSlain,
			Durability: durability(s.Weapon),
		}
	}

	for i, c := range s.Room {
		rc := RoomCard{Card: c}
		if e.CanUseWeaponOn(i) {
			rc.CanUseWeapon = true
			rc.WeaponDamage = s.Weapon.DamageAgainst(c.Rank)
		}
		snap.Room = append(snap.Room, rc)
	}

	return snap
}

func durability(w *Weapon) string {
	switch {
	case w.LastSlain == 0:
		return "Full"
	case w.LastSlain <= 2:
		return "Broken"
	default:
		return fmt.Sprintf("Hits up to %d", w.LastSlain-1)
	}
}
