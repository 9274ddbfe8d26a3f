// Command stocklink is a thin bootstrap over the data-access layer: it logs
// in with the configured credentials and prints the product list ranked
// against an optional search string. It exists for smoke-testing the layer
// from a terminal; the real presentation layer links the packages directly.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stocklink/internal/apierror"
	"stocklink/internal/app"
	"stocklink/internal/config"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	ctx := context.Background()
	a := app.New(cfg)

	if err := a.LogIn(ctx, cfg.Username, cfg.Password); err != nil {
		log.Error().Err(err).Msg("login failed")
		fmt.Fprintln(os.Stderr, apierror.Message(err))
		os.Exit(1)
	}

	names, err := a.ProductNames(ctx)
	if err != nil {
		log.Error().Err(err).Msg("listing products failed")
		fmt.Fprintln(os.Stderr, apierror.Message(err))
		os.Exit(1)
	}

	search := strings.Join(os.Args[1:], " ")
	ranked, err := a.SortProducts(names, search)
	if err != nil {
		log.Error().Err(err).Msg("ranking failed")
		os.Exit(1)
	}

	for _, n := range ranked {
		fmt.Printf("%8d  %-14s  %s\n", n.ID, n.UPC, n.Name)
	}
}
