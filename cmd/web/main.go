package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterkuimelis/scoundrel/internal/config"
	"github.com/peterkuimelis/scoundrel/internal/web"
)

func main() {
	cfgPath := flag.String("config", "scoundrel.yaml", "path to config file")
	listen := flag.String("listen", "", "HTTP address to listen on (overrides config)")
	seed := flag.Int64("seed", 0, "shuffle seed for every run (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *listen != "" {
		cfg.WebListen = *listen
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	srv := web.NewServer(cfg.Seed)
	log.Printf("scoundrel web UI listening on %s", cfg.WebListen)
	if err := srv.ListenAndServe(cfg.WebListen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
