// Package mailjet sends transactional email through the external delivery
// API (v3.1 send). It knows two messages: the subscriber welcome and the
// contact-form team notification.
package mailjet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/theunholyco/site-api/internal/apierr"
	"github.com/theunholyco/site-api/internal/config"
)

type Client struct {
	endpoint       string
	apiKey         string
	secret         string
	fromEmail      string
	fromName       string
	unsubURL       string
	welcomeSubject string
	httpClient     *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint:       cfg.MailjetEndpoint,
		apiKey:         cfg.MailjetAPIKey,
		secret:         cfg.MailjetSecret,
		fromEmail:      cfg.MailjetFromEmail,
		fromName:       cfg.MailjetFromName,
		unsubURL:       cfg.MailjetUnsubURL,
		welcomeSubject: cfg.MailjetWelcomeSubject,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Message is one outbound email. HTML and Text are both optional but at
// least one should be set for the mail to be worth sending.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

type sendEnvelope struct {
	Messages []sendMessage `json:"Messages"`
}

type sendMessage struct {
	From     address   `json:"From"`
	To       []address `json:"To"`
	Subject  string    `json:"Subject"`
	HTMLPart string    `json:"HTMLPart,omitempty"`
	TextPart string    `json:"TextPart,omitempty"`
}

type address struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

func (c *Client) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return &apierr.ValidationError{Message: "At least one recipient is required."}
	}
	if c.apiKey == "" {
		return &apierr.ConfigurationError{Name: "MAILJET_API_KEY"}
	}
	if c.secret == "" {
		return &apierr.ConfigurationError{Name: "MAILJET_SECRET"}
	}

	to := make([]address, 0, len(msg.To))
	for _, email := range msg.To {
		to = append(to, address{Email: email})
	}
	body, err := json.Marshal(sendEnvelope{Messages: []sendMessage{{
		From:     address{Email: c.fromEmail, Name: c.fromName},
		To:       to,
		Subject:  msg.Subject,
		HTMLPart: msg.HTML,
		TextPart: msg.Text,
	}}})
	if err != nil {
		return fmt.Errorf("marshal send payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.apiKey, c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &apierr.UpstreamError{Service: "mailjet", Status: resp.StatusCode, Body: string(detail)}
	}
	return nil
}

// SendWelcome delivers the fixed welcome email to a new subscriber.
func (c *Client) SendWelcome(ctx context.Context, email string) error {
	return c.Send(ctx, Message{
		To:      []string{email},
		Subject: c.welcomeSubject,
		HTML:    WelcomeHTML(c.unsubURL),
	})
}
