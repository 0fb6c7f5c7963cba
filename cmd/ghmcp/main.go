package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dejo1307/ghmcp/internal/config"
	"github.com/dejo1307/ghmcp/internal/github"
	"github.com/dejo1307/ghmcp/internal/server"
)

func main() {
	// Ensure log output goes to stderr, never stdout (MCP uses stdout for JSON-RPC)
	log.SetOutput(os.Stderr)

	ctx := context.Background()

	cfgPath := "github-mcp.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		// If config file doesn't exist, use defaults
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	gh, err := github.NewClient(cfg)
	if err != nil {
		log.Fatalf("failed to create GitHub client: %v", err)
	}

	srv, err := server.New(gh, cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
