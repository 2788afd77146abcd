// Package airtable writes form submissions to the external tabular record
// store, one record per call. Records are write-only from this system's
// point of view; nothing here ever reads them back.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/theunholyco/site-api/internal/apierr"
	"github.com/theunholyco/site-api/internal/config"
)

type Client struct {
	endpoint   string
	baseID     string
	token      string
	table      string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint: cfg.AirtableEndpoint,
		baseID:   cfg.AirtableBaseID,
		token:    cfg.AirtableToken,
		table:    cfg.AirtableTableName,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type recordEnvelope struct {
	Records []record `json:"records"`
}

type record struct {
	Fields map[string]any `json:"fields"`
}

// SaveRecord appends one record to the given table (the configured default
// when table is empty). No retry; the caller decides what a failure means.
func (c *Client) SaveRecord(ctx context.Context, fields map[string]any, table string) error {
	if c.baseID == "" {
		return &apierr.ConfigurationError{Name: "AIRTABLE_BASE_ID"}
	}
	if c.token == "" {
		return &apierr.ConfigurationError{Name: "AIRTABLE_TOKEN"}
	}
	if table == "" {
		table = c.table
	}

	body, err := json.Marshal(recordEnvelope{Records: []record{{Fields: fields}}})
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.endpoint, c.baseID, url.PathEscape(table))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create record request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &apierr.UpstreamError{Service: "airtable", Status: resp.StatusCode, Body: string(detail)}
	}
	return nil
}
