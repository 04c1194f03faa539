package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MKhiriev/connectly-config/internal/config"
	"github.com/MKhiriev/connectly-config/internal/handler"
	"github.com/MKhiriev/connectly-config/internal/logger"
	"github.com/MKhiriev/connectly-config/internal/server"
	"github.com/MKhiriev/connectly-config/internal/service"
	"github.com/MKhiriev/connectly-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetRuntimeConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting runtime configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewLogger("connectly-config", cfg.LogLevel)
	log.Debug().Any("runtime", cfg).Msg("received runtime configs")

	if cfg.ListKeys {
		printKeys()
		return
	}

	appCfg, err := config.Load(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving configuration")
	}

	if cfg.Dump != "" {
		format, err := config.ParseFormat(cfg.Dump)
		if err != nil {
			log.Fatal().Err(err).Msg("error parsing dump format")
		}
		out, err := config.Encode(appCfg, format)
		if err != nil {
			log.Fatal().Err(err).Msg("error encoding configuration")
		}
		os.Stdout.Write(out)
		return
	}

	printBuildInfo()

	if err = config.Init(appCfg); err != nil {
		log.Fatal().Err(err).Msg("error initializing configuration")
	}

	services, err := service.NewServices(config.Process(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printKeys() {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTYPE\tENV")
	for _, key := range config.Keys() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", key.Path, key.Type, key.Env)
	}
	w.Flush()
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
