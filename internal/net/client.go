package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Client connects to a dungeon server and provides a terminal REPL.
type Client struct {
	conn net.Conn
}

// NewClient wraps an existing connection, typically one side of a net.Pipe
// for local play.
func NewClient(conn net.Conn) *Client {
	return &Client{conn: conn}
}

// Connect dials a server and runs the REPL until the player quits or the
// connection drops.
func Connect(ctx context.Context, addr string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	fmt.Println("Connected! Entering the dungeon...")

	client := &Client{conn: conn}
	return client.RunREPL(ctx)
}

// RunREPL reads server messages, renders the table, and prompts for commands.
func (c *Client) RunREPL(ctx context.Context) error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)
	reader := bufio.NewReader(os.Stdin)

	for {
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case "state":
			for _, ev := range msg.Events {
				fmt.Printf("T%-2d | %s\n", ev.Turn, ev.Details)
			}
			c.renderState(msg.State)
			cmd, quit := c.readCommand(reader, msg.State)
			if quit {
				return nil
			}
			if err := enc.Encode(cmd); err != nil {
				return fmt.Errorf("send command: %w", err)
			}

		case "error":
			fmt.Printf("  !! %s\n", msg.Error.Reason)
			// Re-prompt against the table we already have.
			if err := enc.Encode(ClientMessage{Type: "state"}); err != nil {
				return fmt.Errorf("send command: %w", err)
			}
		}
	}
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}

	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Printf("║  HP: %d/%d   Dungeon: %d   Discard: %d   Turn %d\n",
		sv.Health, sv.MaxHealth, sv.Dungeon, sv.Discard, sv.Turn)

	if sv.Weapon != nil {
		line := fmt.Sprintf("║  Weapon: %s (%s)", sv.Weapon.Card, sv.Weapon.Durability)
		if len(sv.Trophies) > 0 {
			line += "  Slain: " + strings.Join(sv.Trophies, ", ")
		}
		fmt.Println(line)
	} else {
		fmt.Println("║  Weapon: none (fighting barehanded)")
	}

	fmt.Println("║──────────────────────────────────────────────────────")
	for _, rc := range sv.Room {
		note := ""
		if rc.Kind == "monster" {
			if rc.CanUseWeapon {
				note = fmt.Sprintf("  (weapon: take %d dmg)", rc.WeaponDamage)
			} else if sv.Weapon != nil {
				note = "  (weapon too dull)"
			}
		}
		fmt.Printf("║  [%d] %s%s\n", rc.Index, rc.Card, note)
	}
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	if sv.Phase == "Over" {
		if sv.Won {
			fmt.Printf("VICTORY! Score: %d\n", sv.Score)
		} else {
			fmt.Printf("DIED! Score: %d\n", sv.Score)
		}
	}
}

// readCommand prompts until it has a sendable command. Returns quit=true on
// "q". The pending-combat prompt is a constrained sub-mode: only a combat
// mode for the parked monster makes sense.
func (c *Client) readCommand(reader *bufio.Reader, sv *StateView) (ClientMessage, bool) {
	for {
		if sv != nil && sv.PendingCombat > 0 {
			fmt.Printf("Fight [%d] with (w)eapon or (b)arehanded? ", sv.PendingCombat)
		} else if sv != nil && sv.Phase == "Over" {
			fmt.Print("(r)estart or (q)uit? ")
		} else {
			fmt.Print("Play 1-4, (s)kip, (r)estart, (q)uit > ")
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			return ClientMessage{}, true
		}
		line = strings.TrimSpace(strings.ToLower(line))

		if sv != nil && sv.PendingCombat > 0 {
			switch line {
			case "w", "weapon":
				return ClientMessage{Type: "mode", Index: sv.PendingCombat, Mode: "weapon"}, false
			case "b", "bare", "barehanded":
				return ClientMessage{Type: "mode", Index: sv.PendingCombat, Mode: "barehanded"}, false
			case "q", "quit":
				return ClientMessage{}, true
			default:
				fmt.Println("Enter w or b")
				continue
			}
		}

		switch line {
		case "s", "skip":
			return ClientMessage{Type: "skip"}, false
		case "r", "restart", "reset":
			return ClientMessage{Type: "reset"}, false
		case "q", "quit":
			return ClientMessage{}, true
		}

		if n, err := strconv.Atoi(line); err == nil && n >= 1 {
			return ClientMessage{Type: "play", Index: n}, false
		}
		fmt.Println("Enter a room number, s, r, or q")
	}
}
