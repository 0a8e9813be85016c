package mcp

import (
	"testing"

	"github.com/peterkuimelis/scoundrel/internal/net"
)

func TestRegistrySessionsAreIndependent(t *testing.T) {
	r := NewRegistry()
	a := r.Create(7)
	b := r.Create(7)

	if a.ID == b.ID {
		t.Fatal("sessions share an ID")
	}
	if _, ok := r.Get("no-such-session"); ok {
		t.Error("lookup of an unknown ID succeeded")
	}

	// Drain a's events; b's run must still deliver its own.
	a.apply(net.ClientMessage{Type: "state"})
	reply := b.apply(net.ClientMessage{Type: "state"})
	if len(reply.Events) == 0 {
		t.Error("fresh session delivered no opening events")
	}

	// Play in a; b's table is untouched.
	a.apply(net.ClientMessage{Type: "play", Index: 1})
	if got := b.apply(net.ClientMessage{Type: "state"}); got.State.Played != 0 {
		t.Errorf("session b played = %d, want 0", got.State.Played)
	}
}

func TestBuildResponseGameOverFields(t *testing.T) {
	reply := net.ServerMessage{
		Type:  "state",
		State: &net.StateView{Phase: "Over", Won: true, Score: 24},
	}
	resp := buildResponse("abc", reply)
	if !resp.GameOver || !resp.Won || resp.Score != 24 {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Events == nil {
		t.Error("events must marshal as [], not null")
	}

	active := buildResponse("abc", net.ServerMessage{
		Type:  "state",
		State: &net.StateView{Phase: "Active"},
	})
	if active.GameOver {
		t.Error("active run reported game_over")
	}
}
