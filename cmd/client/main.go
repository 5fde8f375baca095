// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Syncano/syncano-dotnet-sub001/internal/client"
	"github.com/Syncano/syncano-dotnet-sub001/internal/config"
	"github.com/Syncano/syncano-dotnet-sub001/internal/logger"
	"github.com/Syncano/syncano-dotnet-sub001/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("syncano-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}

	log.Info().Msg("client stopped")
}
