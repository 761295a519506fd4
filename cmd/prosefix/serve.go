package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/prosefix/prosefix/internal/cache"
	"github.com/prosefix/prosefix/internal/config"
	"github.com/prosefix/prosefix/internal/ratelimit"
	"github.com/prosefix/prosefix/prosefix"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the correction REST API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if port, err := cmd.Flags().GetString("port"); err != nil {
		return err
	} else if port != "" {
		cfg.Port = port
	}

	backend, err := newBackend(cfg)
	if err != nil {
		return err
	}
	prosefix.Backend = backend
	if cfg.ChunkWords > 0 {
		prosefix.ChunkWords = cfg.ChunkWords
	}
	log.Printf("   backend : %s", backend.Name())

	if cfg.RedisAddr != "" {
		prosefix.ResultCache = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			cache.WithTTL(time.Duration(cfg.CacheTTLHours)*time.Hour))
		log.Printf("   cache   : redis %s (ttl %dh)", cfg.RedisAddr, cfg.CacheTTLHours)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/correct", prosefix.CorrectHandler)
	mux.HandleFunc("/v1/lang-spans", prosefix.LangSpansHandler)
	mux.HandleFunc("/health", prosefix.HealthHandler)
	mux.HandleFunc("/openapi.json", prosefix.OpenAPIHandler)
	mux.HandleFunc("/", prosefix.DocsHandler)

	store := ratelimit.NewStore(cfg.RateRPS, cfg.RateBurst)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.StartJanitor(ctx)

	log.Printf("🚀 prosefix server listening on http://localhost:%s", cfg.Port)
	log.Printf("   POST http://localhost:%s/v1/correct", cfg.Port)
	log.Printf("   GET  http://localhost:%s/       (Redoc UI)", cfg.Port)
	return http.ListenAndServe(":"+cfg.Port, ratelimit.Middleware(store, mux))
}
