package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/deckbench/deckbench/internal/api"
	"github.com/deckbench/deckbench/internal/catalog"
	"github.com/deckbench/deckbench/internal/config"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = config.Default()
		slog.Info("config file missing, using defaults", "path", *cfgPath)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	slog.Info("card catalog loaded", "cards", cat.Len(), "source", cfg.CatalogPath)

	sessions := api.NewSessions(cat, cfg.DeckLimits())
	h := api.NewHandlers(cat, sessions, cfg.ExportDir)

	r := gin.Default()
	api.RegisterRoutes(r, h)

	addr := cfg.ListenAddr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	slog.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
