package mailjet

import (
	"fmt"
	"html"
	"strings"
)

const ContactNotificationSubject = "New contact submission — UNHOLY CO."

// ContactNotificationHTML renders the team notification for a contact-form
// submission. Values are escaped; the message keeps its line breaks.
func ContactNotificationHTML(name, email, phone, source, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", html.EscapeString(name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", html.EscapeString(email))
	if phone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>\n", html.EscapeString(phone))
	}
	if source == "" {
		source = "website"
	}
	fmt.Fprintf(&b, "<p><strong>Source:</strong> %s</p>\n", html.EscapeString(source))
	b.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", strings.ReplaceAll(html.EscapeString(message), "\n", "<br />"))
	return b.String()
}

// ContactNotificationText is the plain-text fallback part.
func ContactNotificationText(name, email string) string {
	return fmt.Sprintf("New contact submission from %s (%s)", name, email)
}
