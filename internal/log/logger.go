package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events. The core only ever
// appends; the retained history is never truncated or rewritten.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("[Turn %d] %s", e.Turn, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewGameStartEvent(health int) GameEvent {
	return GameEvent{
		Turn:    1,
		Type:    EventNewGame,
		Details: fmt.Sprintf("Entered the dungeon with %d HP", health),
	}
}

func NewDealRoomEvent(turn int, cards []string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventDealRoom,
		Details: fmt.Sprintf("Entered room: %s", strings.Join(cards, ", ")),
	}
}

func NewHealEvent(turn int, card string, healed, health int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventHeal,
		Card:    card,
		Details: fmt.Sprintf("Drank %s, healed %d HP (now %d HP)", card, healed, health),
	}
}

func NewPotionWastedEvent(turn int, card string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventPotionWasted,
		Card:    card,
		Details: fmt.Sprintf("Wasted %s (already used potion)", card),
	}
}

func NewEquipEvent(turn int, card string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventEquip,
		Card:    card,
		Details: fmt.Sprintf("Equipped %s", card),
	}
}

func NewReplaceWeaponEvent(turn int, old, card string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventEquip,
		Card:    card,
		Details: fmt.Sprintf("Discarded %s, equipped %s", old, card),
	}
}

func NewWeaponKillEvent(turn int, monster, weapon string, damage, health int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventWeaponKill,
		Card:    monster,
		Details: fmt.Sprintf("Killed %s with %s, took %d dmg (now %d HP)", monster, weapon, damage, health),
	}
}

func NewBarehandedEvent(turn int, monster string, damage, health int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventBarehanded,
		Card:    monster,
		Details: fmt.Sprintf("Fought %s barehanded, took %d dmg (now %d HP)", monster, damage, health),
	}
}

func NewSkipEvent(turn int, cards []string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventSkip,
		Details: fmt.Sprintf("Skipped room (%s)", strings.Join(cards, ", ")),
	}
}

func NewFinalCardEvent(turn int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventFinalCard,
		Details: "Final card! You must face it.",
	}
}

func NewVictoryEvent(turn, score int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventVictory,
		Details: fmt.Sprintf("VICTORY! Score: %d", score),
	}
}

func NewDefeatEvent(turn, score int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventDefeat,
		Details: fmt.Sprintf("DIED! Score: %d", score),
	}
}
