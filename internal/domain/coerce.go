package domain

import (
	"encoding/json"
	"strconv"
)

// FlexFloat is a float64 that unmarshals from either a JSON number or a
// numeric string. Retailer feeds use both encodings interchangeably for
// coordinates and prices.
type FlexFloat float64

// UnmarshalJSON implements the number-or-string union. Any other JSON kind
// (bool, object, array, null) fails with a CoercionError.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	v, err := CoerceFloat(data)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// MarshalJSON always emits a plain JSON number.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// Float returns the resolved value.
func (f FlexFloat) Float() float64 { return float64(f) }

// CoerceFloat interprets a raw JSON value as a float64. It accepts a JSON
// number or a string containing a number; everything else fails with a
// CoercionError.
func CoerceFloat(raw json.RawMessage) (float64, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, &CoercionError{Value: string(raw), Reason: "not valid JSON"}
	}

	switch val := v.(type) {
	case float64:
		return val, nil
	case string:
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, &CoercionError{Value: string(raw), Reason: "string is not numeric"}
		}
		return n, nil
	default:
		return 0, &CoercionError{Value: string(raw), Reason: "unsupported type"}
	}
}
