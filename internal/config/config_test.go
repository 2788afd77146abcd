package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// pin a clean environment; empty values fall through to defaults
	for _, key := range []string{
		"HTTP_PORT", "AIRTABLE_ENDPOINT", "AIRTABLE_TABLE_NAME", "AIRTABLE_BASE_ID",
		"AIRTABLE_TOKEN", "MAILJET_ENDPOINT", "MAILJET_FROM_EMAIL", "MAILJET_FROM_NAME",
		"MAILJET_WELCOME_SUBJECT", "RAZORPAY_ENDPOINT", "RAZORPAY_KEY_SECRET",
		"CONTACT_FORWARD_EMAIL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "https://api.airtable.com/v0", cfg.AirtableEndpoint)
	assert.Equal(t, "signups", cfg.AirtableTableName)
	assert.Equal(t, "https://api.mailjet.com/v3.1/send", cfg.MailjetEndpoint)
	assert.Equal(t, "noreply@theunholy.co", cfg.MailjetFromEmail)
	assert.Equal(t, "UNHOLY CO.", cfg.MailjetFromName)
	assert.Equal(t, "Your Damnation Is Served", cfg.MailjetWelcomeSubject)
	assert.Equal(t, "https://api.razorpay.com/v1/orders", cfg.RazorpayEndpoint)
	assert.Empty(t, cfg.ContactForwardEmails)

	// missing secrets are not a load error; the operation fails instead
	assert.Empty(t, cfg.AirtableToken)
	assert.Empty(t, cfg.RazorpayKeySecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("AIRTABLE_TABLE_NAME", "contact requests")
	t.Setenv("AIRTABLE_BASE_ID", "appBASE")
	t.Setenv("MAILJET_WELCOME_SUBJECT", "Welcome to the circle")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.HTTPPort)
	assert.Equal(t, "contact requests", cfg.AirtableTableName)
	assert.Equal(t, "appBASE", cfg.AirtableBaseID)
	assert.Equal(t, "Welcome to the circle", cfg.MailjetWelcomeSubject)
}

func TestLoadConfig_ForwardEmailList(t *testing.T) {
	t.Setenv("CONTACT_FORWARD_EMAIL", " team@theunholy.co , ops@theunholy.co ,,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"team@theunholy.co", "ops@theunholy.co"}, cfg.ContactForwardEmails)
}
