package net

import (
	"errors"
	"strings"

	"github.com/peterkuimelis/scoundrel/internal/game"
	"github.com/peterkuimelis/scoundrel/internal/log"
)

// Session binds one engine to one client. It translates wire commands into
// engine calls and engine state into views, and tracks which log events the
// client has already seen. Connection handlers own exactly one session and
// call Apply from a single goroutine.
type Session struct {
	engine  *game.Engine
	lastSeq int
}

// NewSession wraps an engine. The client has seen none of its events yet.
func NewSession(e *game.Engine) *Session {
	return &Session{engine: e}
}

// Apply executes one client command and builds the reply. Rule rejections
// become "error" replies; the session survives them.
func (s *Session) Apply(msg ClientMessage) ServerMessage {
	var err error
	switch msg.Type {
	case "play":
		err = s.engine.PlayCard(msg.Index - 1)
	case "mode":
		mode := game.ModeBarehanded
		if msg.Mode == "weapon" {
			mode = game.ModeWeapon
		}
		err = s.engine.ChooseCombatMode(msg.Index-1, mode)
	case "skip":
		err = s.engine.SkipRoom()
	case "reset":
		s.engine.Reset()
	case "state":
		// Query only.
	default:
		return ServerMessage{Type: "error", Error: &ErrorView{
			Code:   game.InvalidAction.String(),
			Reason: "unknown command " + msg.Type,
		}}
	}

	if err != nil {
		return ServerMessage{Type: "error", Error: errorView(err)}
	}

	snap := s.engine.Snapshot()
	return ServerMessage{
		Type:   "state",
		State:  BuildStateView(snap),
		Events: s.drainEvents(snap.Events),
	}
}

// drainEvents returns the events the client has not seen yet and advances
// the watermark.
func (s *Session) drainEvents(events []log.GameEvent) []EventView {
	var out []EventView
	for _, ev := range events {
		if ev.Seq <= s.lastSeq {
			continue
		}
		out = append(out, EventView{
			Seq:     ev.Seq,
			Turn:    ev.Turn,
			Type:    ev.Type.String(),
			Card:    ev.Card,
			Details: ev.Details,
		})
		s.lastSeq = ev.Seq
	}
	return out
}

func errorView(err error) *ErrorView {
	var re *game.RuleError
	if errors.As(err, &re) {
		return &ErrorView{Code: re.Code.String(), Reason: re.Reason}
	}
	return &ErrorView{Code: game.InvalidAction.String(), Reason: err.Error()}
}

// BuildStateView converts an engine snapshot into its wire form.
func BuildStateView(snap game.Snapshot) *StateView {
	sv := &StateView{
		Health:        snap.Health,
		MaxHealth:     snap.MaxHealth,
		Dungeon:       snap.Dungeon,
		Discard:       snap.Discard,
		Turn:          snap.Turn,
		Phase:         snap.Phase.String(),
		Played:        snap.Played,
		PotionUsed:    snap.PotionUsed,
		JustSkipped:   snap.JustSkipped,
		PendingCombat: snap.PendingCombat + 1,
		Won:           snap.Won,
		Score:         snap.Score,
	}

	if snap.Weapon != nil {
		sv.Weapon = &WeaponView{
			Card:       snap.Weapon.Card.String(),
			Durability: snap.Weapon.Durability,
		}
	}
	for _, c := range snap.Trophies {
		sv.Trophies = append(sv.Trophies, c.String())
	}
	sv.Room = make([]RoomView, 0, len(snap.Room))
	for i, rc := range snap.Room {
		sv.Room = append(sv.Room, RoomView{
			Index:        i + 1,
			Card:         rc.Card.String(),
			Kind:         strings.ToLower(rc.Card.Role.String()),
			CanUseWeapon: rc.CanUseWeapon,
			WeaponDamage: rc.WeaponDamage,
		})
	}
	return sv
}
