package mbox

import "strings"

// separatorPrefix is the mbox envelope line prefix. Any line starting
// with it is treated as a message boundary; the ">From " quoting
// convention is not interpreted, matching common mbox practice.
const separatorPrefix = "From "

// RawRecord is one delimited message span within a mailbox file: the
// "From " separator line plus every line up to the next separator.
type RawRecord struct {
	// Separator is the envelope line introducing the record, without
	// its trailing newline.
	Separator string

	// Text is the full record text, separator line included, exactly
	// as it appears in the file.
	Text string
}

// Content returns the record text after the separator line, i.e. the
// RFC 2822 message itself (headers, blank line, body).
func (r RawRecord) Content() string {
	rest := strings.TrimPrefix(r.Text, r.Separator)
	return strings.TrimPrefix(rest, "\n")
}

// Splitter yields the message records of a mailbox file one at a time,
// in file order. It is single-pass; construct a fresh Splitter to
// restart.
type Splitter struct {
	content  string
	preamble string
	pos      int
}

// NewSplitter scans content for the first message boundary and returns
// a Splitter positioned at it. Anything before the first boundary is
// preamble, retained for byte accounting but never yielded as a record.
func NewSplitter(content string) *Splitter {
	start := len(content)
	if strings.HasPrefix(content, separatorPrefix) {
		start = 0
	} else if i := strings.Index(content, "\n"+separatorPrefix); i >= 0 {
		start = i + 1
	}

	return &Splitter{
		content:  content,
		preamble: content[:start],
		pos:      start,
	}
}

// Preamble returns any content preceding the first separator line.
func (s *Splitter) Preamble() string {
	return s.preamble
}

// Next returns the next record and true, or a zero record and false
// once the input is exhausted.
func (s *Splitter) Next() (RawRecord, bool) {
	if s.pos >= len(s.content) {
		return RawRecord{}, false
	}

	end := len(s.content)
	if i := strings.Index(s.content[s.pos+1:], "\n"+separatorPrefix); i >= 0 {
		end = s.pos + 1 + i + 1
	}

	text := s.content[s.pos:end]
	s.pos = end

	sep := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		sep = text[:i]
	}

	return RawRecord{Separator: sep, Text: text}, true
}

// Split returns every record of content at once.
func Split(content string) []RawRecord {
	var records []RawRecord
	s := NewSplitter(content)
	for {
		rec, ok := s.Next()
		if !ok {
			return records
		}
		records = append(records, rec)
	}
}
