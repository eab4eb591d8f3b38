// Package main runs the gymweights MCP server over stdio (for local MCP
// clients). The same server is mounted on the service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymweights/internal"
	"github.com/2beens/gymweights/internal/config"
	"github.com/2beens/gymweights/internal/logging"
	"github.com/2beens/gymweights/internal/weights"
	weightsmcp "github.com/2beens/gymweights/internal/weights/mcp"
	"github.com/2beens/gymweights/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", pkg.EnvOrDefault("GYMWEIGHTS_CONFIG", "./config.toml"), "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout carries the MCP protocol, logs must not go there
	logParams := logging.ParamsFromConfig(cfg, "gymweights-mcp", os.Getenv("SENTRY_DSN"))
	logParams.Console = os.Stderr
	logging.Setup(logParams)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	backends, err := internal.OpenBackend(ctx, cfg, internal.BackendParams{
		RedisPassword:    os.Getenv("GYMWEIGHTS_REDIS_PASS"),
		PostgresPassword: os.Getenv("GYMWEIGHTS_PG_PASS"),
	})
	if err != nil {
		log.Fatalf("open backend: %v", err)
	}
	defer backends.Close()

	store := weights.NewStore(backends.KV, weights.WithNamespace(cfg.Namespace))
	store.Migrate(ctx)

	server := weightsmcp.NewServer(store, "stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Errorf("mcp server: %v", err)
	}
}
