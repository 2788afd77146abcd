// Package razorpay creates payment orders against the hosted gateway.
// This system only creates the order; capture and status transitions are
// the gateway's business, reached later through its hosted checkout widget.
package razorpay

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
	endpoint   string
	keyID      string
	keySecret  string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint:  cfg.RazorpayEndpoint,
		keyID:     cfg.RazorpayKeyID,
		keySecret: cfg.RazorpayKeySecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// OrderRequest is the gateway order-creation payload. Amount is in the
// smallest currency unit (paise for INR). payment_capture is always 1 so
// the gateway captures immediately after authorization.
type OrderRequest struct {
	Amount         int64          `json:"amount"`
	Currency       string         `json:"currency"`
	Receipt        string         `json:"receipt"`
	PaymentCapture int            `json:"payment_capture"`
	Notes          map[string]any `json:"notes,omitempty"`
}

type gatewayError struct {
	Error struct {
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder posts the order and returns the gateway's response verbatim,
// so the handler can relay whatever fields the gateway includes.
func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (json.RawMessage, error) {
	if c.keyID == "" || c.keySecret == "" {
		return nil, &apierr.ConfigurationError{Name: "RAZORPAY_KEY_ID/RAZORPAY_KEY_SECRET"}
	}

	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read order response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		description := "Unable to create order"
		var ge gatewayError
		if err := json.Unmarshal(raw, &ge); err == nil && ge.Error.Description != "" {
			description = ge.Error.Description
		}
		return nil, &apierr.UpstreamError{Service: "razorpay", Status: resp.StatusCode, Body: description}
	}
	return json.RawMessage(raw), nil
}
