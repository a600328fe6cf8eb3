package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/pubg-dashboard/stats-api/internal/config"
	"github.com/pubg-dashboard/stats-api/internal/logic"
	"github.com/pubg-dashboard/stats-api/internal/pubg"
)

func init() {
	// for development
	config.LoadDotEnv("../../.env", ".env")
}

func main() {
	app := &cli.App{
		Name:  "pubg-stats",
		Usage: "PUBG player statistics dashboard backend",
		Commands: []*cli.Command{
			serveCommand(),
			lookupCommand(),
			leaderboardCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// bootstrap loads configuration and builds the provider-backed sequencer
// shared by every command.
func bootstrap() (*config.Config, *zap.Logger, logic.AcquisitionService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	client := pubg.NewClient(pubg.Config{
		BaseURL:           cfg.PubgBaseURL,
		APIKey:            cfg.PubgAPIKey,
		Timeout:           cfg.PubgTimeout,
		RequestsPerMinute: cfg.PubgRequestsPerMinute,
		Logger:            logger,
	})

	return cfg, logger, logic.NewAcquisitionService(client, logger), nil
}
