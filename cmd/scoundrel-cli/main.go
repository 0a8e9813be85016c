package main

import (
	"context"
	"flag"
	"fmt"
	stdnet "net"
	"os"

	"github.com/peterkuimelis/scoundrel/internal/config"
	scnet "github.com/peterkuimelis/scoundrel/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "play":
		runPlay(os.Args[2:])
	case "host":
		runHost(os.Args[2:])
	case "join":
		runJoin(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  scoundrel play [--seed N]")
	fmt.Println("  scoundrel host [--listen ADDR] [--seed N] [--config FILE]")
	fmt.Println("  scoundrel join [--addr ADDR]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play    Play a dungeon run in this terminal")
	fmt.Println("  host    Start a game server")
	fmt.Println("  join    Connect to a game server")
}

// runPlay serves a run over an in-process pipe and attaches the REPL to the
// other end, so local play and network play share one code path.
func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "shuffle seed (0 = random)")
	fs.Parse(args)

	srv := &scnet.Server{Seed: *seed}
	clientConn, serverConn := stdnet.Pipe()
	go srv.ServeConn(serverConn)

	if err := scnet.NewClient(clientConn).RunREPL(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runHost(args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	cfgPath := fs.String("config", "scoundrel.yaml", "path to config file")
	listen := fs.String("listen", "", "TCP address to listen on (overrides config)")
	seed := fs.Int64("seed", 0, "shuffle seed for every run (overrides config)")
	fs.Parse(args)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	srv := &scnet.Server{Addr: cfg.Listen, Seed: cfg.Seed}
	if err := srv.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJoin(args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	addr := fs.String("addr", "localhost:9000", "server address to connect to")
	fs.Parse(args)

	if err := scnet.Connect(context.Background(), *addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
