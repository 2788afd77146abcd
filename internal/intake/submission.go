package intake

import "time"

// ContactSubmission is a normalized contact-form post. Name, Email and
// Message are mandatory; Phone is optional; Source defaults to "website".
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Source  string
}

// Fields builds the record-store field map. Phone is written as null when
// absent, matching how the store treats optional columns.
func (s ContactSubmission) Fields(now time.Time) map[string]any {
	var phone any
	if s.Phone != "" {
		phone = s.Phone
	}
	return map[string]any{
		"Type":        "Contact",
		"Name":        s.Name,
		"Email":       s.Email,
		"Phone":       phone,
		"Message":     s.Message,
		"Source":      s.Source,
		"SubmittedAt": now.UTC().Format(time.RFC3339),
	}
}

// SubscriptionSubmission is a normalized newsletter signup.
type SubscriptionSubmission struct {
	Email  string
	Name   string
	Source string
}

func (s SubscriptionSubmission) Fields(now time.Time) map[string]any {
	var name any
	if s.Name != "" {
		name = s.Name
	}
	return map[string]any{
		"Type":        "Subscription",
		"Email":       s.Email,
		"Name":        name,
		"Source":      s.Source,
		"SubmittedAt": now.UTC().Format(time.RFC3339),
	}
}
