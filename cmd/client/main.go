package main

import (
	"fmt"

	"github.com/akwaabahomes/passcheck/internal/adapter"
	"github.com/akwaabahomes/passcheck/internal/client"
	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/tui"
	"github.com/akwaabahomes/passcheck/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("passcheck-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("passcheck-client", cfg.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ui := tui.New(serverAdapter, cfg.Policy.Overrides().Resolve(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
