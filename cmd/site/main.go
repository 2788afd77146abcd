package main

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theunholyco/site-api/internal/airtable"
	"github.com/theunholyco/site-api/internal/config"
	"github.com/theunholyco/site-api/internal/logger"
	"github.com/theunholyco/site-api/internal/mailjet"
	"github.com/theunholyco/site-api/internal/presentation"
	"github.com/theunholyco/site-api/internal/razorpay"
)

func main() {
	_ = godotenv.Load()
	logger.Init()
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("config load failed", "err", err)
		os.Exit(1)
	}

	// Wiring
	records := airtable.NewClient(cfg)
	mail := mailjet.NewClient(cfg)
	gateway := razorpay.NewClient(cfg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// API
	h := presentation.NewHandler(cfg, records, mail, gateway)
	h.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	// STATIC (landing, shop, thanks + assets)
	presentation.MountStatic(r)

	addr := ":" + cfg.HTTPPort
	logger.Info("starting http", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Warn("http server crashed", "err", err)
		os.Exit(1)
	}
}
