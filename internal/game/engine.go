package game

import (
	"math/rand"

	"github.com/peterkuimelis/scoundrel/internal/log"
)

// Config holds configuration for creating a new engine.
type Config struct {
	Logger    log.EventLogger
	Seed      int64 // RNG seed (0 for random)
	NoShuffle bool  // keep build order (for deterministic tests)
}

// Engine is the rule engine for a single dungeon run. Commands enter through
// the exported methods, are validated, applied atomically, and narrated to
// the event log. The engine performs no internal synchronization: a service
// wrapper must hold one engine per session and serialize calls to it.
type Engine struct {
	state  *State
	logger log.EventLogger
	cfg    Config
	rng    *rand.Rand
}

// New creates an engine with a freshly built and shuffled dungeon and deals
// the first room.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	e := &Engine{logger: logger, cfg: cfg}
	e.start()
	return e
}

// Reset discards the current aggregate and rebuilds a fresh shuffled run.
// The event log keeps its history; the new run appends after it.
func (e *Engine) Reset() {
	e.start()
}

func (e *Engine) start() {
	e.state = newState()
	if !e.cfg.NoShuffle {
		// Reseed per run so a fixed seed deals the same dungeon after Reset.
		if e.cfg.Seed != 0 {
			e.rng = rand.New(rand.NewSource(e.cfg.Seed))
		}
		ShuffleDeck(e.state.Dungeon, e.rng)
	}
	e.log(log.NewGameStartEvent(e.state.Health))
	e.deal()
}

// deal refills the room to four cards from the front of the dungeon,
// preserving draw order, and resets the per-room flags. Called only from
// turn completion, skipping, and game start.
func (e *Engine) deal() {
	s := e.state
	for len(s.Room) < RoomSize && len(s.Dungeon) > 0 {
		s.Room = append(s.Room, s.Dungeon[0])
		s.Dungeon = s.Dungeon[1:]
	}
	s.flags = roomFlags{}
	s.pendingCombat = -1

	if len(s.Room) > 0 {
		e.log(log.NewDealRoomEvent(s.Turn, cardNames(s.Room)))
	}
}

// PlayCard plays the room card at the given index, dispatching on its role.
// A monster faced while a weapon is equipped does not resolve immediately:
// it parks a pending selection for ChooseCombatMode.
func (e *Engine) PlayCard(index int) error {
	s := e.state
	if s.Phase == PhaseOver {
		return rejectf(InvalidAction, "the game is over")
	}
	if len(s.Room) == 0 {
		return rejectf(InvalidAction, "the room is empty")
	}
	if index < 0 || index >= len(s.Room) {
		return rejectf(InvalidIndex, "no card at position %d (room has %d)", index+1, len(s.Room))
	}

	card := s.Room[index]
	switch card.Role {
	case RolePotion:
		e.playPotion(index)
	case RoleWeapon:
		e.playWeapon(index)
	default:
		if s.Weapon == nil {
			e.resolveFight(index, ModeBarehanded)
		} else {
			// Armed: the player must choose how to fight.
			s.pendingCombat = index
		}
	}
	return nil
}

// ChooseCombatMode resolves a pending monster fight in the given mode.
func (e *Engine) ChooseCombatMode(index int, mode CombatMode) error {
	s := e.state
	if s.Phase == PhaseOver {
		return rejectf(InvalidAction, "the game is over")
	}
	if s.pendingCombat < 0 {
		return rejectf(InvalidAction, "no combat is pending")
	}
	if index != s.pendingCombat {
		return rejectf(InvalidAction, "pending combat is at position %d", s.pendingCombat+1)
	}
	if mode == ModeWeapon {
		if s.Weapon == nil {
			return rejectf(IllegalWeaponUse, "no weapon equipped")
		}
		if !s.Weapon.CanUseAgainst(s.Room[index].Rank) {
			return rejectf(IllegalWeaponUse, "weapon only hits up to %d (monster is %d)",
				s.Weapon.LastSlain-1, s.Room[index].Rank)
		}
	}

	s.pendingCombat = -1
	e.resolveFight(index, mode)
	return nil
}

// SkipRoom returns the whole room to the bottom of the dungeon in order and
// deals a fresh one. Legal only before any card is played and never twice
// in a row. Skipping does not consume a turn.
func (e *Engine) SkipRoom() error {
	s := e.state
	if s.Phase == PhaseOver {
		return rejectf(InvalidAction, "the game is over")
	}
	if s.JustSkipped {
		return rejectf(InvalidAction, "cannot skip two rooms in a row")
	}
	if s.flags.played > 0 {
		return rejectf(InvalidAction, "cannot skip after playing cards")
	}

	names := cardNames(s.Room)
	s.Dungeon = append(s.Dungeon, s.Room...)
	s.Room = s.Room[:0]
	s.JustSkipped = true
	e.log(log.NewSkipEvent(s.Turn, names))
	e.deal()
	return nil
}

// playPotion heals once per room; a second potion is wasted but still
// discarded and still counts as a played action.
func (e *Engine) playPotion(index int) {
	s := e.state
	card := s.removeFromRoom(index)
	s.pendingCombat = -1

	if s.flags.potionUsed {
		e.log(log.NewPotionWastedEvent(s.Turn, card.String()))
	} else {
		heal := card.Rank
		if room := s.MaxHealth - s.Health; heal > room {
			heal = room
		}
		s.Health += heal
		s.flags.potionUsed = true
		s.flags.lastHeal = card.Rank
		e.log(log.NewHealEvent(s.Turn, card.String(), heal, s.Health))
	}

	s.Discard = append(s.Discard, card)
	s.flags.played++
	e.checkTurnComplete()
}

// playWeapon equips a new weapon at full durability. The old weapon and every
// trophy accumulated under it go to the discard.
func (e *Engine) playWeapon(index int) {
	s := e.state
	card := s.removeFromRoom(index)
	s.pendingCombat = -1

	if s.Weapon != nil {
		old := s.Weapon.Card
		s.Discard = append(s.Discard, old)
		s.Discard = append(s.Discard, s.Trophies...)
		s.Trophies = s.Trophies[:0]
		e.log(log.NewReplaceWeaponEvent(s.Turn, old.String(), card.String()))
	} else {
		e.log(log.NewEquipEvent(s.Turn, card.String()))
	}

	s.Weapon = &Weapon{Card: card}
	s.flags.lastHeal = 0
	s.flags.played++
	e.checkTurnComplete()
}

// log emits a game event through the logger.
func (e *Engine) log(event log.GameEvent) {
	e.logger.Log(event)
}

func cardNames(cards []Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return names
}
