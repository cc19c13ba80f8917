package domain

import "time"

// feedTimeLayout is the locale format used for the envelope's last_updated
// field. The feed carries no zone offset; values are UTC by convention.
const feedTimeLayout = "02/01/2006 15:04:05"

// ConvertTimestamp parses a feed-level timestamp and renders it as RFC 3339
// with an explicit UTC offset. It runs once per feed, never per station; a
// failure here invalidates the whole batch.
func ConvertTimestamp(s string) (string, error) {
	t, err := time.Parse(feedTimeLayout, s)
	if err != nil {
		return "", &TimestampParseError{Input: s, Err: err}
	}
	return t.UTC().Format(time.RFC3339), nil
}
