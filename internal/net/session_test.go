package net

import (
	"testing"

	"github.com/peterkuimelis/scoundrel/internal/game"
	"github.com/peterkuimelis/scoundrel/internal/log"
)

func newTestSession() *Session {
	return NewSession(game.New(game.Config{
		Logger: log.NewMemoryLogger(),
		Seed:   7,
	}))
}

func TestSessionStateQuery(t *testing.T) {
	s := newTestSession()

	reply := s.Apply(ClientMessage{Type: "state"})
	if reply.Type != "state" || reply.State == nil {
		t.Fatalf("reply = %+v, want a state message", reply)
	}

	sv := reply.State
	if sv.Health != 20 || sv.MaxHealth != 20 {
		t.Errorf("health = %d/%d, want 20/20", sv.Health, sv.MaxHealth)
	}
	if len(sv.Room) != 4 || sv.Dungeon != 40 {
		t.Errorf("room = %d dungeon = %d, want 4 and 40", len(sv.Room), sv.Dungeon)
	}
	for i, rc := range sv.Room {
		if rc.Index != i+1 {
			t.Errorf("room[%d].Index = %d, want %d", i, rc.Index, i+1)
		}
	}
	if sv.PendingCombat != 0 {
		t.Errorf("pending = %d, want 0 (none)", sv.PendingCombat)
	}

	// The opening events come through exactly once.
	if len(reply.Events) != 2 {
		t.Fatalf("events = %d, want new-game and deal", len(reply.Events))
	}
	again := s.Apply(ClientMessage{Type: "state"})
	if len(again.Events) != 0 {
		t.Errorf("drained events delivered twice: %v", again.Events)
	}
}

func TestSessionRejectionsKeepSessionAlive(t *testing.T) {
	s := newTestSession()
	s.Apply(ClientMessage{Type: "state"})

	reply := s.Apply(ClientMessage{Type: "play", Index: 9})
	if reply.Type != "error" || reply.Error == nil {
		t.Fatalf("reply = %+v, want an error message", reply)
	}
	if reply.Error.Code != "InvalidIndex" {
		t.Errorf("code = %q, want InvalidIndex", reply.Error.Code)
	}

	reply = s.Apply(ClientMessage{Type: "mode", Index: 1, Mode: "weapon"})
	if reply.Type != "error" || reply.Error.Code != "InvalidAction" {
		t.Errorf("mode with nothing pending: %+v", reply)
	}

	reply = s.Apply(ClientMessage{Type: "teleport"})
	if reply.Type != "error" {
		t.Errorf("unknown command: %+v", reply)
	}

	// The session still answers normally.
	reply = s.Apply(ClientMessage{Type: "play", Index: 1})
	if reply.Type != "state" {
		t.Fatalf("play after rejections: %+v", reply)
	}
	if reply.State.Played != 1 {
		t.Errorf("played = %d after the first card, want 1", reply.State.Played)
	}
}

func TestSessionSkipAndReset(t *testing.T) {
	s := newTestSession()
	opening := s.Apply(ClientMessage{Type: "state"})
	firstRoom := make([]string, 0, 4)
	for _, rc := range opening.State.Room {
		firstRoom = append(firstRoom, rc.Card)
	}

	reply := s.Apply(ClientMessage{Type: "skip"})
	if reply.Type != "state" {
		t.Fatalf("skip: %+v", reply)
	}
	if !reply.State.JustSkipped {
		t.Error("just_skipped should be set after a skip")
	}

	if again := s.Apply(ClientMessage{Type: "skip"}); again.Type != "error" {
		t.Fatalf("second skip should be rejected, got %+v", again)
	}

	reply = s.Apply(ClientMessage{Type: "reset"})
	if reply.Type != "state" {
		t.Fatalf("reset: %+v", reply)
	}
	sv := reply.State
	if sv.Health != 20 || sv.Turn != 1 || sv.JustSkipped {
		t.Errorf("reset state: %+v", sv)
	}
	// Seeded engine: the rebuilt run deals the same opening room.
	for i, rc := range sv.Room {
		if rc.Card != firstRoom[i] {
			t.Errorf("reset room[%d] = %s, want %s", i, rc.Card, firstRoom[i])
		}
	}
}

func TestBuildStateViewWeaponPreview(t *testing.T) {
	e := game.New(game.Config{Logger: log.NewMemoryLogger(), Seed: 7})
	snap := e.Snapshot()

	sv := BuildStateView(snap)
	for i, rc := range snap.Room {
		wire := sv.Room[i]
		if wire.Card != rc.Card.String() {
			t.Errorf("room[%d] card = %q, want %q", i, wire.Card, rc.Card.String())
		}
		if wire.CanUseWeapon != rc.CanUseWeapon || wire.WeaponDamage != rc.WeaponDamage {
			t.Errorf("room[%d] preview diverged from the snapshot", i)
		}
	}
	if sv.Weapon != nil {
		t.Error("no weapon equipped at game start")
	}
}
