package mbox

import (
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// dateLayouts are tried in order when net/mail rejects a Date header.
// Real spool files carry plenty of almost-RFC dates.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.UnixDate,
	time.ANSIC,
	"2006-01-02 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
}

// Message is one parsed mailbox entry. All fields are set at
// construction and never mutated afterwards.
type Message struct {
	headers     Headers
	body        []string
	displayBody []string
	id          string
	time        time.Time
	raw         string
}

// newMessage builds a Message from one raw record. Parsing never
// fails: a record with a garbled header block still yields a Message,
// just with empty display fields.
func newMessage(rec RawRecord) *Message {
	content := rec.Content()
	headerLines, bodyLines := splitRecord(content)
	headers := ParseHeaders(headerLines)

	id := headers.Get("message-id")
	if id == "" {
		id = "<" + uuid.NewString() + "@spoolview>"
	}

	return &Message{
		headers:     headers,
		body:        bodyLines,
		displayBody: extractText(content, headers, bodyLines),
		id:          id,
		time:        parseDate(headers.Get("date")),
		raw:         content,
	}
}

// Header returns the value of the named header field,
// case-insensitively; absent fields resolve to "".
func (m *Message) Header(name string) string {
	return m.headers.Get(name)
}

// Sender returns the From header value, or "" when absent.
func (m *Message) Sender() string { return m.headers.Get("from") }

// Subject returns the Subject header value, or "" when absent.
func (m *Message) Subject() string { return m.headers.Get("subject") }

// Date returns the raw Date header value, or "" when absent.
func (m *Message) Date() string { return m.headers.Get("date") }

// ID returns the Message-ID header, or a generated fallback identifier
// when the header is missing.
func (m *Message) ID() string { return m.id }

// Time returns the parsed Date header; the zero time when the header
// is absent or unparseable.
func (m *Message) Time() time.Time { return m.time }

// Body returns the verbatim body lines following the header block.
func (m *Message) Body() []string { return m.body }

// DisplayBody returns the best-effort plain-text rendering of the
// body: the decoded text/plain part for MIME messages, the raw body
// lines otherwise.
func (m *Message) DisplayBody() []string { return m.displayBody }

// Raw returns the message content (headers, blank line, body) without
// the mbox separator line.
func (m *Message) Raw() string { return m.raw }

// parseDate parses an RFC 2822 date, falling back through common
// non-conforming layouts. Returns the zero time on failure.
func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := mail.ParseDate(value); err == nil {
		return t
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
