package domain

import "encoding/json"

// RawFeed is the decoded feed envelope. Station records stay opaque at this
// level; each is decoded individually so one malformed record cannot abort
// the batch.
type RawFeed struct {
	LastUpdated string            `json:"last_updated"`
	Stations    []json.RawMessage `json:"stations"`
}

// rawStation is the loosely typed per-station record as retailers publish
// it. Location and prices are kept raw here: coordinate coercion happens
// after the brand check, and price entries are filtered one by one.
type rawStation struct {
	SiteID   string                     `json:"site_id"`
	Brand    *string                    `json:"brand"`
	Address  string                     `json:"address"`
	Postcode string                     `json:"postcode"`
	Location json.RawMessage            `json:"location"`
	Prices   map[string]json.RawMessage `json:"prices"`
}

// rawLocation resolves the number-or-string coordinate union.
type rawLocation struct {
	Latitude  FlexFloat `json:"latitude"`
	Longitude FlexFloat `json:"longitude"`
}

// Location is a resolved WGS-84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PriceBlock holds a station's filtered fuel prices together with the feed
// timestamp they were published at. It serializes flat: the price keys sit
// beside "last_updated" at the same level, which is the shape downstream
// consumers expect.
type PriceBlock struct {
	Prices      map[string]float64
	LastUpdated string
}

// MarshalJSON flattens the price map and the timestamp into one object.
func (b PriceBlock) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(b.Prices)+1)
	for label, price := range b.Prices {
		flat[label] = price
	}
	flat["last_updated"] = b.LastUpdated
	return json.Marshal(flat)
}

// UnmarshalJSON reverses the flattened encoding: "last_updated" becomes the
// timestamp, every other key a price entry.
func (b *PriceBlock) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	block := PriceBlock{Prices: make(map[string]float64, len(flat))}
	for key, raw := range flat {
		if key == "last_updated" {
			if err := json.Unmarshal(raw, &block.LastUpdated); err != nil {
				return err
			}
			continue
		}
		var price float64
		if err := json.Unmarshal(raw, &price); err != nil {
			return err
		}
		block.Prices[key] = price
	}
	*b = block
	return nil
}

// NormalizedStation is the canonical station record produced by the
// pipeline. Prices always holds exactly one block, and that block's
// timestamp equals the feed's converted last_updated value. Records are not
// mutated after construction.
type NormalizedStation struct {
	SiteID   string       `json:"site_id"`
	Brand    string       `json:"brand"`
	Address  string       `json:"address"`
	Postcode string       `json:"postcode"`
	Location Location     `json:"location"`
	Prices   []PriceBlock `json:"prices"`
}
