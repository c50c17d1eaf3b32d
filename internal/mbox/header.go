package mbox

import "strings"

// Headers maps lower-cased header field names to their values. Lookups
// go through Get so callers never depend on the key casing.
type Headers map[string]string

// Get returns the value for name, matching case-insensitively. Absent
// fields resolve to the empty string.
func (h Headers) Get(name string) string {
	return h[strings.ToLower(name)]
}

// Has reports whether a field with the given name is present.
func (h Headers) Has(name string) bool {
	_, ok := h[strings.ToLower(name)]
	return ok
}

// ParseHeaders parses the header block of one message: the lines from
// the start of a record's content up to the first blank line.
//
// Field lines have the form "Name: value". A line starting with a space
// or tab continues the previous field, its trimmed content joined with
// a single space. When the same field appears twice the later value
// wins. Lines that are neither a field nor a valid continuation are
// skipped so one corrupt line cannot spoil the rest of the block.
func ParseHeaders(lines []string) Headers {
	headers := make(Headers)
	current := ""

	for _, line := range lines {
		if line == "" {
			break
		}

		if line[0] == ' ' || line[0] == '\t' {
			// Continuation of the previous field. With no previous
			// field it is malformed and dropped.
			if current == "" {
				continue
			}
			if prev := headers[current]; prev == "" {
				headers[current] = strings.TrimSpace(line)
			} else {
				headers[current] = prev + " " + strings.TrimSpace(line)
			}
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok || name == "" || strings.ContainsAny(name, " \t") {
			current = ""
			continue
		}

		current = strings.ToLower(name)
		headers[current] = strings.TrimSpace(value)
	}

	return headers
}

// splitRecord divides a record's content into its header lines and body
// lines. The blank separator line belongs to neither.
func splitRecord(content string) (header, body []string) {
	lines := strings.Split(content, "\n")

	// A trailing newline produces one empty trailing element; drop it
	// so the body line count matches the file.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i, line := range lines {
		if line == "" {
			return lines[:i], lines[i+1:]
		}
	}
	return lines, nil
}
