package web

import (
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/peterkuimelis/scoundrel/internal/game"
	gamelog "github.com/peterkuimelis/scoundrel/internal/log"
	"github.com/peterkuimelis/scoundrel/internal/net"
)

//go:embed static
var staticFiles embed.FS

// Server is the browser UI server. Each websocket gets its own engine and
// speaks the same JSON protocol as the TCP server.
type Server struct {
	seed int64
	mux  *http.ServeMux
}

// NewServer creates a new web server. A non-zero seed makes every run deal
// the same dungeon.
func NewServer(seed int64) *Server {
	s := &Server{seed: seed, mux: http.NewServeMux()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	engine := game.New(game.Config{
		Logger: gamelog.NewMemoryLogger(),
		Seed:   s.seed,
	})
	sess := net.NewSession(engine)

	send := func(msg net.ServerMessage) error {
		data, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		return wsConn.Write(ctx, websocket.MessageText, data)
	}

	// The opening table, so the browser can render before the first command.
	if err := send(sess.Apply(net.ClientMessage{Type: "state"})); err != nil {
		return
	}

	for {
		_, data, err := wsConn.Read(ctx)
		if err != nil {
			return
		}
		var msg net.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			wsConn.Close(websocket.StatusPolicyViolation, "malformed message")
			return
		}
		if err := send(sess.Apply(msg)); err != nil {
			return
		}
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
