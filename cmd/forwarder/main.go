// The forwarder is an independently deployable intake endpoint: it accepts
// the same contact/subscribe-style POST as the site API, writes the record
// to the store, and sends the welcome email on a best-effort basis. Useful
// behind a separate domain or when the main site is down for maintenance.
package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/theunholyco/site-api/internal/airtable"
	"github.com/theunholyco/site-api/internal/config"
	"github.com/theunholyco/site-api/internal/intake"
	"github.com/theunholyco/site-api/internal/logger"
	"github.com/theunholyco/site-api/internal/mailjet"
	"github.com/theunholyco/site-api/internal/presentation/helpers"
)

type forwarder struct {
	records *airtable.Client
	mail    *mailjet.Client
}

func (f *forwarder) submit(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()

	sub, err := intake.ParseBody(r)
	if err != nil {
		helpers.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	email := strings.ToLower(intake.Field(sub, "email", ""))
	if !intake.ValidEmail(email) {
		helpers.Fail(w, http.StatusBadRequest, "Invalid email")
		return
	}

	fields := map[string]any{
		"Email":       email,
		"Name":        intake.Field(sub, "name", ""),
		"Phone":       intake.Field(sub, "phone", ""),
		"Message":     intake.Field(sub, "message", ""),
		"Source":      intake.Field(sub, "source", "site"),
		"SubmittedAt": time.Now().UTC().Format(time.RFC3339),
	}
	if err := f.records.SaveRecord(r.Context(), fields, ""); err != nil {
		logger.Error("forwarder: record store failed", "submission", id, "err", err)
		helpers.Fail(w, http.StatusInternalServerError, "Unable to submit right now.")
		return
	}

	// best effort: a lost welcome email never fails the submission
	if err := f.mail.SendWelcome(r.Context(), email); err != nil {
		logger.Warn("forwarder: welcome email failed", "submission", id, "err", err)
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func main() {
	_ = godotenv.Load()
	logger.Init()
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("config load failed", "err", err)
		os.Exit(1)
	}

	f := &forwarder{
		records: airtable.NewClient(cfg),
		mail:    mailjet.NewClient(cfg),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.MethodNotAllowed(helpers.MethodNotAllowed)
	r.Post("/", f.submit)

	addr := ":" + cfg.HTTPPort
	logger.Info("starting forwarder", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Warn("http server crashed", "err", err)
		os.Exit(1)
	}
}
