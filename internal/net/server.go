package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/peterkuimelis/scoundrel/internal/game"
	"github.com/peterkuimelis/scoundrel/internal/log"
)

// Server hosts dungeon runs over TCP. Every connection gets its own engine;
// runs never share state, so no cross-connection locking is needed.
type Server struct {
	Addr string
	Seed int64 // 0 for a random shuffle per run
}

// Run listens and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Listening on %s\n", ln.Addr())

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		fmt.Printf("Adventurer connected from %s\n", conn.RemoteAddr())
		go s.ServeConn(conn)
	}
}

// ServeConn runs one connection's command loop. The decode loop is the only
// goroutine touching the engine, which keeps commands serialized. Also used
// directly over a net.Pipe for local play.
func (s *Server) ServeConn(conn net.Conn) {
	defer conn.Close()

	engine := game.New(game.Config{
		Logger: log.NewMemoryLogger(),
		Seed:   s.Seed,
	})
	sess := NewSession(engine)

	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)

	// The opening table, so the client can render before the first command.
	if err := enc.Encode(sess.Apply(ClientMessage{Type: "state"})); err != nil {
		return
	}

	for {
		var msg ClientMessage
		if err := dec.Decode(&msg); err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				fmt.Printf("Connection %s dropped: %v\n", conn.RemoteAddr(), err)
			}
			return
		}
		if err := enc.Encode(sess.Apply(msg)); err != nil {
			return
		}
	}
}
