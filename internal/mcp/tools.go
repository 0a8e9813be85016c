package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/scoundrel/internal/net"
)

// registry holds the live sessions of this stdio process, set by RegisterTools.
var registry *Registry

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer, r *Registry) {
	registry = r
	s.AddTool(newGameTool(), handleNewGame)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(chooseCombatModeTool(), handleChooseCombatMode)
	s.AddTool(skipRoomTool(), handleSkipRoom)
	s.AddTool(resetTool(), handleReset)
	s.AddTool(getStateTool(), handleGetState)
}

// --- Tool definitions ---

func newGameTool() mcp.Tool {
	return mcp.NewTool("new_game",
		mcp.WithDescription("Start a new Scoundrel dungeon run and return its session_id plus the opening room. "+
			"Scoundrel is a solitaire dungeon crawl: survive a 44-card dungeon by fighting monsters, "+
			"equipping weapons, and drinking potions, three cards per room."),
		mcp.WithNumber("seed", mcp.Description("Optional shuffle seed for a reproducible dungeon (0 or omitted = random)")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play the room card at the given position. Potions heal (once per room), weapons equip, "+
			"and monsters are fought, barehanded automatically when unarmed. Facing a monster while armed returns a "+
			"state with pending_combat set: resolve it with choose_combat_mode."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from new_game")),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("1-based room position")),
	)
}

func chooseCombatModeTool() mcp.Tool {
	return mcp.NewTool("choose_combat_mode",
		mcp.WithDescription("Resolve a pending monster fight. Use this when the state shows pending_combat > 0. "+
			"Weapon combat is rejected if the weapon has dulled below the monster's rank."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from new_game")),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("The pending_combat room position")),
		mcp.WithString("mode", mcp.Required(), mcp.Description("'weapon' or 'barehanded'")),
	)
}

func skipRoomTool() mcp.Tool {
	return mcp.NewTool("skip_room",
		mcp.WithDescription("Skip the current room: all four cards go to the bottom of the dungeon and a new room is "+
			"dealt. Illegal after playing a card this room or twice in a row."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from new_game")),
	)
}

func resetTool() mcp.Tool {
	return mcp.NewTool("reset",
		mcp.WithDescription("Abandon the current run and reshuffle a fresh dungeon in the same session. "+
			"The event log keeps its history."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from new_game")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current table and any events not yet delivered. Read-only."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from new_game")),
	)
}

// --- Tool handlers ---

// lookup resolves the session_id argument common to every tool but new_game.
func lookup(request mcp.CallToolRequest) (*Session, *mcp.CallToolResult) {
	id := request.GetString("session_id", "")
	if id == "" {
		return nil, mcp.NewToolResultError("session_id is required. Use new_game first.")
	}
	sess, ok := registry.Get(id)
	if !ok {
		return nil, mcp.NewToolResultErrorf("No session %q. Use new_game first.", id)
	}
	return sess, nil
}

// finish turns a wire reply into a tool result, mapping rule rejections to
// tool errors.
func finish(sess *Session, reply net.ServerMessage) (*mcp.CallToolResult, error) {
	if reply.Type == "error" {
		return mcp.NewToolResultErrorf("%s: %s", reply.Error.Code, reply.Error.Reason), nil
	}
	return mcp.NewToolResultText(respondJSON(buildResponse(sess.ID, reply))), nil
}

func handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seed := request.GetInt("seed", 0)
	sess := registry.Create(int64(seed))
	return finish(sess, sess.apply(net.ClientMessage{Type: "state"}))
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := lookup(request)
	if errResult != nil {
		return errResult, nil
	}
	index := request.GetInt("index", 0)
	return finish(sess, sess.apply(net.ClientMessage{Type: "play", Index: index}))
}

func handleChooseCombatMode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := lookup(request)
	if errResult != nil {
		return errResult, nil
	}
	mode := request.GetString("mode", "")
	if mode != "weapon" && mode != "barehanded" {
		return mcp.NewToolResultErrorf("mode must be 'weapon' or 'barehanded', got %q", mode), nil
	}
	index := request.GetInt("index", 0)
	return finish(sess, sess.apply(net.ClientMessage{Type: "mode", Index: index, Mode: mode}))
}

func handleSkipRoom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := lookup(request)
	if errResult != nil {
		return errResult, nil
	}
	return finish(sess, sess.apply(net.ClientMessage{Type: "skip"}))
}

func handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := lookup(request)
	if errResult != nil {
		return errResult, nil
	}
	return finish(sess, sess.apply(net.ClientMessage{Type: "reset"}))
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := lookup(request)
	if errResult != nil {
		return errResult, nil
	}
	return finish(sess, sess.apply(net.ClientMessage{Type: "state"}))
}
