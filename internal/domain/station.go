package domain

import (
	"encoding/json"
	"strings"
)

// Normalizer validates and transforms raw station records. It holds the
// brand table by reference and an empty-brand policy; both are fixed at
// construction, so a single Normalizer is safe for concurrent use.
type Normalizer struct {
	brands           *BrandTable
	rejectEmptyBrand bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithEmptyBrandRejection makes a present-but-empty brand string invalid.
// The upstream scheme only mandates rejecting null brands, so the default
// accepts "" as a valid (if useless) brand.
func WithEmptyBrandRejection() NormalizerOption {
	return func(n *Normalizer) { n.rejectEmptyBrand = true }
}

// NewNormalizer creates a Normalizer. A nil brands table gets the built-in
// canonical table.
func NewNormalizer(brands *BrandTable, opts ...NormalizerOption) *Normalizer {
	if brands == nil {
		brands = NewBrandTable(nil)
	}
	n := &Normalizer{brands: brands}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize validates one raw station record and builds its canonical form.
// feedTimestamp is the feed's already-converted last_updated value, shared by
// every station in the batch. An error means "skip this record": the caller
// drops it and continues with the rest of the feed.
func (n *Normalizer) Normalize(raw json.RawMessage, feedTimestamp string) (NormalizedStation, error) {
	var rec rawStation
	if err := json.Unmarshal(raw, &rec); err != nil {
		return NormalizedStation{}, &InvalidStationError{Reason: "malformed record", Err: err}
	}

	if rec.Brand == nil {
		return NormalizedStation{}, &InvalidStationError{SiteID: rec.SiteID, Reason: "brand is null"}
	}
	if n.rejectEmptyBrand && strings.TrimSpace(*rec.Brand) == "" {
		return NormalizedStation{}, &InvalidStationError{SiteID: rec.SiteID, Reason: "brand is empty"}
	}
	brand := n.brands.Canonical(*rec.Brand)

	var loc rawLocation
	if err := json.Unmarshal(rec.Location, &loc); err != nil {
		return NormalizedStation{}, &InvalidStationError{SiteID: rec.SiteID, Reason: "invalid coordinates", Err: err}
	}

	// Filtering never fails; it can only shrink the price set, possibly to empty.
	prices := FilterPrices(rec.Prices)

	return NormalizedStation{
		SiteID:   rec.SiteID,
		Brand:    brand,
		Address:  rec.Address,
		Postcode: rec.Postcode,
		Location: Location{Lat: loc.Latitude.Float(), Lon: loc.Longitude.Float()},
		Prices:   []PriceBlock{{Prices: prices, LastUpdated: feedTimestamp}},
	}, nil
}
