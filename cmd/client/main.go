package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/client"
	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/tui"
	"github.com/MKhiriev/go-contacts/internal/workers"
	"github.com/MKhiriev/go-contacts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewClientLogger("go-contacts-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	store, err := adapter.NewHTTPContactStore(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create contact store adapter")
	}

	poller := workers.NewListPoller(context.Background(), store, cfg.Workers, log)

	ui, err := tui.New(store, poller, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(poller), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
