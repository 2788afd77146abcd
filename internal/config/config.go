package config

import (
	"os"
	"strings"
)

// Config is built once at startup and handed to each client constructor.
// Missing secrets are not an error here: a client reports a configuration
// error when the operation that needs the secret is actually attempted.
type Config struct {
	HTTPPort string

	AirtableEndpoint  string
	AirtableBaseID    string
	AirtableTableName string
	AirtableToken     string

	MailjetEndpoint       string
	MailjetAPIKey         string
	MailjetSecret         string
	MailjetFromEmail      string
	MailjetFromName       string
	MailjetUnsubURL       string
	MailjetWelcomeSubject string

	RazorpayEndpoint  string
	RazorpayKeyID     string
	RazorpayKeySecret string

	// Comma-separated list of addresses that receive contact notifications.
	ContactForwardEmails []string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		AirtableEndpoint:  getEnv("AIRTABLE_ENDPOINT", "https://api.airtable.com/v0"),
		AirtableBaseID:    os.Getenv("AIRTABLE_BASE_ID"),
		AirtableTableName: getEnv("AIRTABLE_TABLE_NAME", "signups"),
		AirtableToken:     os.Getenv("AIRTABLE_TOKEN"),

		MailjetEndpoint:       getEnv("MAILJET_ENDPOINT", "https://api.mailjet.com/v3.1/send"),
		MailjetAPIKey:         os.Getenv("MAILJET_API_KEY"),
		MailjetSecret:         os.Getenv("MAILJET_SECRET"),
		MailjetFromEmail:      getEnv("MAILJET_FROM_EMAIL", "noreply@theunholy.co"),
		MailjetFromName:       getEnv("MAILJET_FROM_NAME", "UNHOLY CO."),
		MailjetUnsubURL:       getEnv("MAILJET_UNSUB_URL", "https://theunholy.co/unsubscribe"),
		MailjetWelcomeSubject: getEnv("MAILJET_WELCOME_SUBJECT", "Your Damnation Is Served"),

		RazorpayEndpoint:  getEnv("RAZORPAY_ENDPOINT", "https://api.razorpay.com/v1/orders"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		ContactForwardEmails: splitCSV(os.Getenv("CONTACT_FORWARD_EMAIL")),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
