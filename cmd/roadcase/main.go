package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/roadcase/roadcase-cli/internal/buildinfo"
	"github.com/roadcase/roadcase-cli/internal/client/api"
	"github.com/roadcase/roadcase-cli/internal/client/cli"
	"github.com/roadcase/roadcase-cli/internal/client/config"
	"github.com/roadcase/roadcase-cli/internal/client/repositories/token"
	"github.com/roadcase/roadcase-cli/internal/client/services"
	"github.com/roadcase/roadcase-cli/internal/filex"
	"github.com/roadcase/roadcase-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewConsoleLogger(os.Stderr, cfg.LogLevel)

	dbPath := cfg.TokenDBPath
	if dbPath == "" {
		dir, err := filex.EnsureAppDir("roadcase")
		if err != nil {
			log.Fatalf("%v", err)
		}
		dbPath = filepath.Join(dir, "token.db")
	}

	boltStore, err := token.NewBoltStore(dbPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer boltStore.Close()

	tokens := token.NewCachedStore(boltStore)

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.DeviceName, cfg.RequestTimeout, logger)
	sessions := services.NewSessionService(apiClient, tokens, logger)
	events := services.NewEventService(apiClient, sessions, tokens, logger)

	app := cli.NewApp(cfg, sessions, events, logger)
	app.Run(ctx)
}
