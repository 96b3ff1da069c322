package ingest

import (
	"encoding/base64"
	"strings"

	"google.golang.org/api/gmail/v1"
)

// headerValue returns the named header from a message payload, or "".
func headerValue(payload *gmail.MessagePart, name string) string {
	if payload == nil {
		return ""
	}
	for _, h := range payload.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// messageBody walks the MIME tree and returns the best text body of
// the message. text/plain parts are preferred; an HTML body is only
// used when no plain-text part exists anywhere in the tree.
func messageBody(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}
	plain, html := collectBodies(payload)
	if plain != "" {
		return plain
	}
	return html
}

func collectBodies(part *gmail.MessagePart) (plain, html string) {
	if part.Body != nil && part.Body.Data != "" {
		text := decodeBody(part.Body.Data)
		switch {
		case strings.HasPrefix(part.MimeType, "text/plain"):
			plain = text
		case strings.HasPrefix(part.MimeType, "text/html"):
			html = text
		}
	}
	for _, child := range part.Parts {
		p, h := collectBodies(child)
		if plain == "" {
			plain = p
		}
		if html == "" {
			html = h
		}
	}
	return plain, html
}

// decodeBody decodes the URL-safe base64 body data the mailbox API
// returns. Padding is inconsistent across providers, so try both.
func decodeBody(data string) string {
	if raw, err := base64.URLEncoding.DecodeString(data); err == nil {
		return string(raw)
	}
	if raw, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return string(raw)
	}
	return ""
}
