package domain

import "encoding/json"

// FilterPrices coerces a raw fuel-grade to price mapping and keeps only the
// entries that resolve to a strictly positive number. Entries that fail
// coercion or are zero/negative are dropped silently; that is deliberate
// permissive filtering, not an error condition.
func FilterPrices(raw map[string]json.RawMessage) map[string]float64 {
	prices := make(map[string]float64, len(raw))
	for label, value := range raw {
		v, err := CoerceFloat(value)
		if err != nil || v <= 0 {
			continue
		}
		prices[label] = v
	}
	return prices
}
