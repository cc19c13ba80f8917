// Package domain implements the fuel price feed normalization pipeline.
//
// # Feed Format
//
// Retailers publish periodic price feeds as a JSON envelope:
//
//	{
//	  "last_updated": "27/11/2024 11:45:32",
//	  "stations": [ { ...loosely typed station records... } ]
//	}
//
// The envelope timestamp uses the locale format "dd/mm/yyyy hh:mm:ss" with no
// zone offset and is interpreted as UTC. It is converted once per feed to
// RFC 3339; every normalized station carries that single converted value.
// Stations never have per-station timestamps.
//
// # Encoding Inconsistencies
//
// Retailer feeds are not consistent about scalar encodings:
//
//	Coordinates:  JSON number (51.5) or numeric string ("51.5").
//	Prices:       JSON number (138.9) or numeric string ("138.9"); some feeds
//	              include placeholder grades priced at 0 or junk strings.
//	Brand:        free-form casing and whitespace ("  bp ", "TESCO"), or an
//	              explicit null for unbranded forecourt data.
//
// [FlexFloat] models the number-or-string union at the type level so coercion
// failures stay explicit rather than being absorbed by dynamic typing.
//
// # Error Tiers
//
// Failures fall into three tiers:
//
//	Fatal:       undecodable envelope, missing/mistyped top-level fields, or a
//	             feed timestamp that does not parse. Surfaces as
//	             [EnvelopeDecodeError]; no partial output.
//	Recoverable: a station with a null/absent brand or a non-coercible
//	             coordinate. The record is skipped with
//	             [InvalidStationError]; the batch continues.
//	Silent:      individual price entries that fail coercion or are not
//	             strictly positive. Dropped per entry with no signal.
//
// One bad vendor record must not drop an entire feed, but a malformed envelope
// or timestamp invalidates the whole batch.
//
// # Brand Canonicalization
//
// Known brands are mapped to display names through an immutable [BrandTable]
// built once at startup (lookup on the trimmed, lowercased input). Unknown
// brands pass through with their original casing and whitespace so novel
// retailer names are never silently lost. An optional YAML extension file can
// add entries at startup; the table is never mutated afterwards.
package domain
