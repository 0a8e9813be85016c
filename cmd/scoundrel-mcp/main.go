package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	scmcp "github.com/peterkuimelis/scoundrel/internal/mcp"
)

func main() {
	s := server.NewMCPServer("scoundrel", "1.0.0")
	scmcp.RegisterTools(s, scmcp.NewRegistry())

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
