// Command weights_cli works directly on the configured backend: inspect and
// adjust weights, and move the whole state in and out as JSON or YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymweights/internal"
	"github.com/2beens/gymweights/internal/config"
	"github.com/2beens/gymweights/internal/logging"
	"github.com/2beens/gymweights/internal/weights"
	"github.com/2beens/gymweights/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", pkg.EnvOrDefault("GYMWEIGHTS_CONFIG", "./config.toml"), "path to TOML config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <command> [args]\n\ncommands:\n%s\nflags:\n", os.Args[0], usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	// command output owns stdout; no file logging or sentry for one-off runs
	logParams := logging.ParamsFromConfig(cfg, "gymweights-cli", "")
	logParams.LogFileName = ""
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

	store := weights.NewStore(backends.KV, weights.WithNamespace(cfg.Namespace))
	err = run(ctx, store, flag.Args(), os.Stdin, os.Stdout)
	backends.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
