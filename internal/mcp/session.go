package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/peterkuimelis/scoundrel/internal/game"
	"github.com/peterkuimelis/scoundrel/internal/log"
	"github.com/peterkuimelis/scoundrel/internal/net"
)

// Session is one dungeon run owned by an MCP client. The mutex serializes
// tool calls: the engine itself performs no synchronization.
type Session struct {
	ID string

	mu   sync.Mutex
	sess *net.Session
}

// apply runs one wire command under the session lock.
func (s *Session) apply(msg net.ClientMessage) net.ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.Apply(msg)
}

// Registry tracks the live sessions of one stdio process, keyed by the
// opaque ID handed back from new_game.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create starts a fresh run and registers it.
func (r *Registry) Create(seed int64) *Session {
	engine := game.New(game.Config{
		Logger: log.NewMemoryLogger(),
		Seed:   seed,
	})
	sess := &Session{
		ID:   uuid.NewString(),
		sess: net.NewSession(engine),
	}

	r.mu.Lock()
	r.sessions[sess.ID] = sess
	r.mu.Unlock()
	return sess
}

// Get looks up a session by ID.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	SessionID string          `json:"session_id"`
	State     *net.StateView  `json:"state,omitempty"`
	Events    []net.EventView `json:"events"`
	GameOver  bool            `json:"game_over"`
	Won       bool            `json:"won,omitempty"`
	Score     int             `json:"score,omitempty"`
}

// buildResponse converts a successful wire reply into the tool envelope.
func buildResponse(id string, reply net.ServerMessage) *ToolResponse {
	resp := &ToolResponse{
		SessionID: id,
		State:     reply.State,
		Events:    reply.Events,
	}
	if reply.State != nil && reply.State.Phase == "Over" {
		resp.GameOver = true
		resp.Won = reply.State.Won
		resp.Score = reply.State.Score
	}
	// Ensure events is never null in JSON.
	if resp.Events == nil {
		resp.Events = []net.EventView{}
	}
	return resp
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
