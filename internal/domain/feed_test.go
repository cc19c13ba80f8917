package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceBlock_MarshalJSON_Flattened(t *testing.T) {
	block := PriceBlock{
		Prices:      map[string]float64{"E5": 138.9, "E10": 129.9},
		LastUpdated: "2024-11-27T11:45:32Z",
	}

	data, err := json.Marshal(block)
	require.NoError(t, err)

	// Price keys sit beside last_updated at the same level; no nested
	// "prices" object.
	assert.JSONEq(t, `{"E5": 138.9, "E10": 129.9, "last_updated": "2024-11-27T11:45:32Z"}`, string(data))
}

func TestPriceBlock_UnmarshalJSON(t *testing.T) {
	var block PriceBlock
	err := json.Unmarshal([]byte(`{"B7": 142.9, "last_updated": "2024-11-27T11:45:32Z"}`), &block)

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"B7": 142.9}, block.Prices)
	assert.Equal(t, "2024-11-27T11:45:32Z", block.LastUpdated)
}

func TestNormalizedStation_JSONShape(t *testing.T) {
	st := NormalizedStation{
		SiteID:   "gb-00001",
		Brand:    "BP",
		Address:  "1 High Street",
		Postcode: "AB1 2CD",
		Location: Location{Lat: 51.5, Lon: -0.12},
		Prices: []PriceBlock{{
			Prices:      map[string]float64{"E10": 135.9},
			LastUpdated: "2024-11-27T11:45:32Z",
		}},
	}

	data, err := json.Marshal(st)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"site_id": "gb-00001",
		"brand": "BP",
		"address": "1 High Street",
		"postcode": "AB1 2CD",
		"location": {"lat": 51.5, "lon": -0.12},
		"prices": [{"E10": 135.9, "last_updated": "2024-11-27T11:45:32Z"}]
	}`, string(data))

	// Round-trip back into the typed form.
	var decoded NormalizedStation
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, st, decoded)
}
