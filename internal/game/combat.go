package game

import "github.com/peterkuimelis/scoundrel/internal/log"

// CanUseWeaponOn is the single source of truth for weapon-mode legality at
// the given room position. Presentation layers query it; they never re-derive
// the dulling rule.
func (e *Engine) CanUseWeaponOn(index int) bool {
	s := e.state
	if index < 0 || index >= len(s.Room) {
		return false
	}
	card := s.Room[index]
	return card.Role == RoleMonster && s.Weapon != nil && s.Weapon.CanUseAgainst(card.Rank)
}

// resolveFight consumes the monster at index and applies damage. Legality of
// the mode has already been established by the callers.
func (e *Engine) resolveFight(index int, mode CombatMode) {
	s := e.state
	card := s.removeFromRoom(index)
	s.pendingCombat = -1

	var damage int
	if mode == ModeWeapon {
		damage = s.Weapon.DamageAgainst(card.Rank)
		s.Weapon.LastSlain = card.Rank
		s.Trophies = append(s.Trophies, card)
		s.Health -= damage
		e.log(log.NewWeaponKillEvent(s.Turn, card.String(), s.Weapon.Card.String(), damage, s.Health))
	} else {
		damage = card.Rank
		s.Discard = append(s.Discard, card)
		s.Health -= damage
		e.log(log.NewBarehandedEvent(s.Turn, card.String(), damage, s.Health))
	}

	s.flags.lastHeal = 0
	s.flags.played++

	if s.Health <= 0 {
		s.Health = 0
		e.finish(false)
		return
	}
	e.checkTurnComplete()
}

// checkTurnComplete runs after every successful play. Victory is checked
// whenever the dungeon and room are both empty, so the forced final card
// ends the game the moment it is faced. Three plays turn the room over.
func (e *Engine) checkTurnComplete() {
	s := e.state

	if s.flags.played >= PlaysPerRoom {
		s.Turn++
		switch {
		case len(s.Dungeon) == 0 && len(s.Room) == 1:
			// The lone card must still be faced: reset the counters so it
			// can be played without re-triggering completion.
			s.Phase = PhaseFinalCard
			s.flags = roomFlags{}
			e.log(log.NewFinalCardEvent(s.Turn))
		case len(s.Dungeon) == 0 && len(s.Room) == 0:
			e.finish(true)
		default:
			s.JustSkipped = false
			e.deal()
		}
		return
	}

	if len(s.Dungeon) == 0 && len(s.Room) == 0 {
		e.finish(true)
	}
}

// finish enters the terminal phase and records the score.
func (e *Engine) finish(won bool) {
	s := e.state
	s.Phase = PhaseOver
	s.Won = won
	s.Score = e.calculateScore()
	if won {
		e.log(log.NewVictoryEvent(s.Turn, s.Score))
	} else {
		e.log(log.NewDefeatEvent(s.Turn, s.Score))
	}
}
