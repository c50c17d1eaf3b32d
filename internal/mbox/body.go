package mbox

import (
	"io"
	"strings"

	"github.com/emersion/go-message/mail"
)

// extractText produces the display body for a message: for MIME
// content the decoded text/plain part, for everything else the raw
// body lines unchanged. Extraction is best-effort; any parse failure
// falls back to the raw lines.
func extractText(content string, headers Headers, raw []string) []string {
	if !needsDecoding(headers) {
		return raw
	}

	text, ok := decodeTextPart(content)
	if !ok {
		return raw
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// needsDecoding reports whether the headers announce content that the
// raw lines would render incorrectly: a multipart or non-plain media
// type, or a content transfer encoding beyond the identity ones.
func needsDecoding(headers Headers) bool {
	ct := strings.ToLower(headers.Get("content-type"))
	if ct != "" && !strings.HasPrefix(ct, "text/plain") {
		return true
	}

	switch strings.ToLower(headers.Get("content-transfer-encoding")) {
	case "", "7bit", "8bit", "binary":
		return false
	default:
		return true
	}
}

// decodeTextPart parses content as a MIME message and returns the
// first decoded text/plain inline part.
func decodeTextPart(content string) (string, bool) {
	mr, err := mail.CreateReader(strings.NewReader(content))
	if err != nil {
		return "", false
	}
	defer mr.Close()

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return "", false
		}
		if err != nil {
			return "", false
		}

		h, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}

		contentType, _, _ := h.ContentType()
		if !strings.HasPrefix(contentType, "text/plain") {
			continue
		}

		body, err := io.ReadAll(part.Body)
		if err != nil {
			return "", false
		}
		return string(body), true
	}
}
