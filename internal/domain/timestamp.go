package domain

import "time"

// TimestampLayout is the layout used for server-generated timestamps:
// UTC with exactly three fractional digits, e.g. 2026-03-01T12:00:00.120Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is an ISO 8601 timestamp held as text. A value supplied by a
// caller is kept byte for byte; server-generated values use TimestampLayout.
type Timestamp string

// NewTimestamp formats t in UTC using TimestampLayout.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(TimestampLayout))
}

// String returns the timestamp text.
func (ts Timestamp) String() string {
	return string(ts)
}
