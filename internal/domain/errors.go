package domain

import "fmt"

// CoercionError reports a value that could not be interpreted as a
// floating-point number.
type CoercionError struct {
	Value  string // raw JSON token as it appeared in the feed
	Reason string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("coerce %s: %s", e.Value, e.Reason)
}

// TimestampParseError reports a feed-level timestamp that does not match the
// expected "dd/mm/yyyy hh:mm:ss" layout.
type TimestampParseError struct {
	Input string
	Err   error
}

func (e *TimestampParseError) Error() string {
	return fmt.Sprintf("parse feed timestamp %q: %v", e.Input, e.Err)
}

func (e *TimestampParseError) Unwrap() error { return e.Err }

// InvalidStationError reports a station record that failed validation. The
// caller skips the record; it never aborts the batch.
type InvalidStationError struct {
	SiteID string
	Reason string
	Err    error
}

func (e *InvalidStationError) Error() string {
	if e.SiteID == "" {
		return fmt.Sprintf("invalid station: %s", e.Reason)
	}
	return fmt.Sprintf("invalid station %s: %s", e.SiteID, e.Reason)
}

func (e *InvalidStationError) Unwrap() error { return e.Err }

// EnvelopeKind classifies fatal feed envelope failures.
type EnvelopeKind string

const (
	// EnvelopeSyntax means the input is not syntactically valid JSON.
	EnvelopeSyntax EnvelopeKind = "syntax"
	// EnvelopeShape means required top-level fields are missing or mistyped.
	EnvelopeShape EnvelopeKind = "shape"
	// EnvelopeTimestamp means the feed-level timestamp failed to parse.
	EnvelopeTimestamp EnvelopeKind = "timestamp"
)

// EnvelopeDecodeError is fatal for the whole batch: without a decodable
// envelope and timestamp no downstream interpretation is possible.
type EnvelopeDecodeError struct {
	Kind EnvelopeKind
	Err  error
}

func (e *EnvelopeDecodeError) Error() string {
	return fmt.Sprintf("decode feed envelope (%s): %v", e.Kind, e.Err)
}

func (e *EnvelopeDecodeError) Unwrap() error { return e.Err }
