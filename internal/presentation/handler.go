package presentation

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/theunholyco/site-api/internal/apierr"
	"github.com/theunholyco/site-api/internal/config"
	"github.com/theunholyco/site-api/internal/intake"
	"github.com/theunholyco/site-api/internal/logger"
	"github.com/theunholyco/site-api/internal/mailjet"
	"github.com/theunholyco/site-api/internal/presentation/helpers"
	"github.com/theunholyco/site-api/internal/razorpay"
)

type RecordStore interface {
	SaveRecord(ctx context.Context, fields map[string]any, table string) error
}

type Mailer interface {
	Send(ctx context.Context, msg mailjet.Message) error
	SendWelcome(ctx context.Context, email string) error
}

type OrderGateway interface {
	CreateOrder(ctx context.Context, order razorpay.OrderRequest) (json.RawMessage, error)
}

type Handler struct {
	cfg     *config.Config
	records RecordStore
	mail    Mailer
	gateway OrderGateway
	now     func() time.Time
}

func NewHandler(cfg *config.Config, records RecordStore, mail Mailer, gateway OrderGateway) *Handler {
	return &Handler{
		cfg:     cfg,
		records: records,
		mail:    mail,
		gateway: gateway,
		now:     time.Now,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.MethodNotAllowed(helpers.MethodNotAllowed)
	r.Post("/api/contact", h.Contact)
	r.Post("/api/subscribe", h.Subscribe)
	r.Post("/api/order", h.CreateOrder)
	r.Get("/healthz", h.Health)
}

// Contact accepts a contact-form post in any supported body format,
// writes a record to the store, then notifies the team by email.
// The two downstream calls are not atomic: a record can survive a failed
// notification, and that is accepted.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	sub, err := intake.ParseBody(r)
	if err != nil {
		submissionsTotal.WithLabelValues("contact", "rejected").Inc()
		helpers.Fail(w, apierr.HTTPStatus(err), "Invalid request body.")
		return
	}

	rec := intake.ContactSubmission{
		Name:    intake.Field(sub, "name", ""),
		Email:   strings.ToLower(intake.Field(sub, "email", "")),
		Phone:   intake.Field(sub, "phone", ""),
		Message: intake.Field(sub, "message", ""),
		Source:  intake.Field(sub, "source", "website"),
	}
	if missing := intake.FirstMissing(sub, "name", "message"); missing != "" || !intake.ValidEmail(rec.Email) {
		submissionsTotal.WithLabelValues("contact", "rejected").Inc()
		helpers.Fail(w, http.StatusBadRequest, "Name, valid email, and message are required.")
		return
	}

	if err := h.records.SaveRecord(r.Context(), rec.Fields(h.now()), ""); err != nil {
		logger.Error("contact: record store failed", "err", err)
		submissionsTotal.WithLabelValues("contact", "error").Inc()
		helpers.Fail(w, http.StatusInternalServerError, "Unable to submit your message right now.")
		return
	}

	if err := h.notifyTeam(r.Context(), rec); err != nil {
		// the record is already persisted; surface the failure anyway
		logger.Error("contact: notification failed", "err", err)
		submissionsTotal.WithLabelValues("contact", "error").Inc()
		helpers.Fail(w, http.StatusInternalServerError, "Unable to submit your message right now.")
		return
	}

	submissionsTotal.WithLabelValues("contact", "ok").Inc()
	helpers.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) notifyTeam(ctx context.Context, rec intake.ContactSubmission) error {
	if len(h.cfg.ContactForwardEmails) == 0 {
		logger.Warn("CONTACT_FORWARD_EMAIL is not configured; skipping notification email")
		return nil
	}
	return h.mail.Send(ctx, mailjet.Message{
		To:      h.cfg.ContactForwardEmails,
		Subject: mailjet.ContactNotificationSubject,
		HTML:    mailjet.ContactNotificationHTML(rec.Name, rec.Email, rec.Phone, rec.Source, rec.Message),
		Text:    mailjet.ContactNotificationText(rec.Name, rec.Email),
	})
}

// Subscribe accepts a newsletter signup, writes a record, then sends the
// welcome email to the subscriber.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	sub, err := intake.ParseBody(r)
	if err != nil {
		submissionsTotal.WithLabelValues("subscribe", "rejected").Inc()
		helpers.Fail(w, apierr.HTTPStatus(err), "Invalid request body.")
		return
	}

	rec := intake.SubscriptionSubmission{
		Email:  strings.ToLower(intake.Field(sub, "email", "")),
		Name:   intake.Field(sub, "name", ""),
		Source: intake.Field(sub, "source", "website"),
	}
	if !intake.ValidEmail(rec.Email) {
		submissionsTotal.WithLabelValues("subscribe", "rejected").Inc()
		helpers.Fail(w, http.StatusBadRequest, "Invalid email address.")
		return
	}

	if err := h.records.SaveRecord(r.Context(), rec.Fields(h.now()), ""); err != nil {
		logger.Error("subscribe: record store failed", "err", err)
		submissionsTotal.WithLabelValues("subscribe", "error").Inc()
		helpers.Fail(w, http.StatusInternalServerError, "Unable to add you to the list right now.")
		return
	}

	if err := h.mail.SendWelcome(r.Context(), rec.Email); err != nil {
		logger.Error("subscribe: welcome email failed", "err", err)
		submissionsTotal.WithLabelValues("subscribe", "error").Inc()
		helpers.Fail(w, http.StatusInternalServerError, "Unable to add you to the list right now.")
		return
	}

	submissionsTotal.WithLabelValues("subscribe", "ok").Inc()
	helpers.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// CreateOrder validates the amount and asks the payment gateway to create
// an order. The gateway's creation response is relayed to the browser,
// which then opens the hosted checkout widget against it.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount   json.Number    `json:"amount"`
		Currency string         `json:"currency"`
		Receipt  string         `json:"receipt"`
		Notes    map[string]any `json:"notes"`
	}
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		ordersTotal.WithLabelValues("rejected").Inc()
		helpers.Fail(w, http.StatusBadRequest, "Amount (in paise) is required and must be an integer.")
		return
	}

	amount, err := req.Amount.Int64()
	if err != nil || amount <= 0 {
		ordersTotal.WithLabelValues("rejected").Inc()
		helpers.Fail(w, http.StatusBadRequest, "Amount (in paise) is required and must be an integer.")
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "INR"
	}
	receipt := req.Receipt
	if receipt == "" {
		receipt = "receipt_" + uuid.NewString()
	}

	order, err := h.gateway.CreateOrder(r.Context(), razorpay.OrderRequest{
		Amount:         amount,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1,
		Notes:          req.Notes,
	})
	if err != nil {
		logger.Error("order: gateway call failed", "err", err)
		ordersTotal.WithLabelValues("error").Inc()
		helpers.Fail(w, http.StatusInternalServerError, "Unable to create an order right now.")
		return
	}

	ordersTotal.WithLabelValues("ok").Inc()
	helpers.WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "order": order})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
