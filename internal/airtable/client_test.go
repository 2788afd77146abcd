package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/theunholyco/site-api/internal/apierr"
	"github.com/theunholyco/site-api/internal/config"
)

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		AirtableEndpoint:  endpoint,
		AirtableBaseID:    "appBASE",
		AirtableTableName: "signups",
		AirtableToken:     "secret-token",
	}
}

func TestSaveRecord_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	err := client.SaveRecord(context.Background(), map[string]any{"Email": "a@b.co"}, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotPath != "/appBASE/signups" {
		t.Errorf("expected path /appBASE/signups, got %s", gotPath)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}

	records, ok := gotBody["records"].([]any)
	if !ok || len(records) != 1 {
		t.Fatalf("expected one record, got %v", gotBody["records"])
	}
	fields := records[0].(map[string]any)["fields"].(map[string]any)
	if fields["Email"] != "a@b.co" {
		t.Errorf("expected Email field, got %v", fields)
	}
}

func TestSaveRecord_TableOverride(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	if err := client.SaveRecord(context.Background(), map[string]any{}, "contact requests"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotPath != "/appBASE/contact%20requests" {
		t.Errorf("expected escaped table path, got %s", gotPath)
	}
}

func TestSaveRecord_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"type":"INVALID_VALUE_FOR_COLUMN"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	err := client.SaveRecord(context.Background(), map[string]any{"Email": 5}, "")

	var ue *apierr.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", ue.Status)
	}
	if ue.Service != "airtable" {
		t.Errorf("expected service airtable, got %s", ue.Service)
	}
}

func TestSaveRecord_MissingConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  *config.Config
	}{
		{"no base id", &config.Config{AirtableToken: "t"}},
		{"no token", &config.Config{AirtableBaseID: "appBASE"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := NewClient(tc.cfg)
			err := client.SaveRecord(context.Background(), map[string]any{}, "")

			var ce *apierr.ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
		})
	}
}
