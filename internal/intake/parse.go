package intake

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/theunholyco/site-api/internal/apierr"
)

// part values and uploaded files are capped; file content is never retained
const maxPartSize = 2 << 20

// ParseBody normalizes a request body into a flat string map.
//
// Three shapes are accepted:
//   - application/json, application/ld+json: top level must be an object;
//     non-string leaf values are stringified, nulls are dropped
//   - application/x-www-form-urlencoded, or no content type at all
//   - multipart/form-data: file fields contribute the file *name* only
//
// Anything else fails with apierr.ErrUnsupportedContentType.
func ParseBody(r *http.Request) (map[string]string, error) {
	ct := r.Header.Get("Content-Type")
	mediatype, params, _ := mime.ParseMediaType(ct)

	switch {
	case mediatype == "application/json" || mediatype == "application/ld+json":
		return parseJSON(r.Body)

	case mediatype == "" || mediatype == "application/x-www-form-urlencoded":
		return parseURLEncoded(r.Body)

	case mediatype == "multipart/form-data":
		return parseMultipart(r.Body, params["boundary"])

	default:
		return nil, apierr.ErrUnsupportedContentType
	}
}

func parseJSON(body io.Reader) (map[string]string, error) {
	dec := json.NewDecoder(io.LimitReader(body, maxPartSize))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, apierr.ErrInvalidPayload
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, apierr.ErrInvalidPayload
	}

	out := make(map[string]string, len(obj))
	for key, value := range obj {
		switch v := value.(type) {
		case nil:
			// dropped, same as an absent field
		case string:
			out[key] = v
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, apierr.ErrInvalidPayload
			}
			out[key] = string(b)
		}
	}
	return out, nil
}

func parseURLEncoded(body io.Reader) (map[string]string, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxPartSize))
	if err != nil {
		return nil, apierr.ErrInvalidPayload
	}
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, apierr.ErrInvalidPayload
	}

	out := make(map[string]string, len(values))
	for key := range values {
		out[key] = values.Get(key)
	}
	return out, nil
}

func parseMultipart(body io.Reader, boundary string) (map[string]string, error) {
	if boundary == "" {
		return nil, apierr.ErrInvalidPayload
	}

	out := map[string]string{}
	mr := multipart.NewReader(body, boundary)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apierr.ErrInvalidPayload
		}
		name := part.FormName()
		if name == "" {
			_ = part.Close()
			continue
		}
		if filename := part.FileName(); filename != "" {
			// keep the file name, discard the content
			out[name] = filename
			_ = part.Close()
			continue
		}
		value, err := io.ReadAll(io.LimitReader(part, maxPartSize))
		_ = part.Close()
		if err != nil {
			return nil, apierr.ErrInvalidPayload
		}
		out[name] = string(value)
	}
	return out, nil
}

// Field returns the trimmed value for key, or fallback when empty.
func Field(sub map[string]string, key, fallback string) string {
	if v := strings.TrimSpace(sub[key]); v != "" {
		return v
	}
	return fallback
}
