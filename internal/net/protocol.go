package net

// Message types for the JSON protocol over TCP. Every client command is
// answered with either a "state" message (carrying the events the command
// produced) or an "error" message; the connection stays usable after both.

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"` // "play", "mode", "skip", "reset", "state"

	// For "play" and "mode": 1-based room position.
	Index int `json:"index,omitempty"`

	// For "mode": "weapon" or "barehanded".
	Mode string `json:"mode,omitempty"`
}

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"` // "state" or "error"

	State  *StateView  `json:"state,omitempty"`
	Events []EventView `json:"events,omitempty"`
	Error  *ErrorView  `json:"error,omitempty"`
}

// ErrorView carries a rejected command back to the client.
type ErrorView struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// EventView is one narrated log entry.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// StateView is the full table as the client renders it.
type StateView struct {
	Health    int         `json:"health"`
	MaxHealth int         `json:"max_health"`
	Weapon    *WeaponView `json:"weapon,omitempty"`
	Room      []RoomView  `json:"room"`
	Dungeon   int         `json:"dungeon"`
	Discard   int         `json:"discard"`
	Trophies  []string    `json:"trophies,omitempty"`

	Turn          int    `json:"turn"`
	Phase         string `json:"phase"`
	Played        int    `json:"played"`
	PotionUsed    bool   `json:"potion_used"`
	JustSkipped   bool   `json:"just_skipped"`
	PendingCombat int    `json:"pending_combat"` // 1-based, 0 if none

	Won   bool `json:"won,omitempty"`
	Score int  `json:"score,omitempty"`
}

// WeaponView shows the equipped weapon and what it can still hit.
type WeaponView struct {
	Card       string `json:"card"`
	Durability string `json:"durability"`
}

// RoomView is one room position, 1-based for display.
type RoomView struct {
	Index        int    `json:"index"`
	Card         string `json:"card"`
	Kind         string `json:"kind"` // "monster", "weapon", "potion"
	CanUseWeapon bool   `json:"can_use_weapon,omitempty"`
	WeaponDamage int    `json:"weapon_damage,omitempty"`
}
