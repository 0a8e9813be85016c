package game

import (
	"testing"

	"github.com/peterkuimelis/scoundrel/internal/log"
)

// --- Test card helpers ---

func monster(rank int) Card { return NewCard(SuitSpades, rank) }
func weapon(rank int) Card  { return NewCard(SuitDiamonds, rank) }
func potion(rank int) Card  { return NewCard(SuitHearts, rank) }

// riggedEngine builds an engine whose dungeon is exactly the given cards in
// draw order (index 0 is dealt first). Used to script exact scenarios; the
// 44-card invariant does not hold for rigged decks.
func riggedEngine(t *testing.T, cards ...Card) (*Engine, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	e := &Engine{logger: logger, cfg: Config{NoShuffle: true}}
	e.state = newState()
	e.state.Dungeon = append([]Card(nil), cards...)
	e.log(log.NewGameStartEvent(e.state.Health))
	e.deal()
	return e, logger
}

// fight resolves the monster at index, answering the combat-mode prompt when
// the engine parks one.
func fight(t *testing.T, e *Engine, index int, mode CombatMode) {
	t.Helper()
	if err := e.PlayCard(index); err != nil {
		t.Fatalf("PlayCard(%d): %v", index, err)
	}
	if e.Snapshot().PendingCombat == index {
		if err := e.ChooseCombatMode(index, mode); err != nil {
			t.Fatalf("ChooseCombatMode(%d, %s): %v", index, mode, err)
		}
	}
}

func mustPlay(t *testing.T, e *Engine, index int) {
	t.Helper()
	if err := e.PlayCard(index); err != nil {
		t.Fatalf("PlayCard(%d): %v", index, err)
	}
}

func assertHealth(t *testing.T, e *Engine, want int) {
	t.Helper()
	if got := e.Snapshot().Health; got != want {
		t.Errorf("health = %d, want %d", got, want)
	}
}

func assertPhase(t *testing.T, e *Engine, want Phase) {
	t.Helper()
	if got := e.Snapshot().Phase; got != want {
		t.Errorf("phase = %s, want %s", got, want)
	}
}
