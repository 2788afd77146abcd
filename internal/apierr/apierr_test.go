package apierr

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrInvalidPayload, http.StatusBadRequest},
		{ErrUnsupportedContentType, http.StatusBadRequest},
		{fmt.Errorf("parse: %w", ErrInvalidPayload), http.StatusBadRequest},
		{&ValidationError{Message: "missing name"}, http.StatusBadRequest},
		{&ConfigurationError{Name: "AIRTABLE_TOKEN"}, http.StatusInternalServerError},
		{&UpstreamError{Service: "airtable", Status: 503, Body: "down"}, http.StatusInternalServerError},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	ce := &ConfigurationError{Name: "AIRTABLE_TOKEN"}
	if ce.Error() != "AIRTABLE_TOKEN is not configured" {
		t.Errorf("unexpected message %q", ce.Error())
	}

	ue := &UpstreamError{Service: "mailjet", Status: 401, Body: "bad key"}
	if ue.Error() != "mailjet error (401): bad key" {
		t.Errorf("unexpected message %q", ue.Error())
	}
}
