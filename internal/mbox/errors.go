package mbox

import "errors"

// Sentinel errors returned by Load. Callers distinguish them with
// errors.Is to decide between "no such mailbox" and a genuine I/O
// failure.
var (
	// ErrNotFound indicates the mailbox path does not exist.
	ErrNotFound = errors.New("mailbox not found")

	// ErrRead indicates the mailbox exists but could not be read.
	ErrRead = errors.New("mailbox read failed")
)
