package document

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a float64 that also unmarshals from a numeric string, so
// form-built clients can post "2900" where 2900 is meant. Text that does
// not parse as a number resets the field to 0 rather than failing the
// request.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	f, ok := coerceFloat(data)
	if !ok {
		return nil
	}

	*n = Number(f)

	return nil
}

// Count is an integer counterpart of Number. Fractional input is
// truncated, mirroring the int(float(x)) coercion on stock counts.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	f, ok := coerceFloat(data)
	if !ok {
		return nil
	}

	*c = Count(int(f))

	return nil
}

// coerceFloat extracts a float from a JSON number or a numeric string.
// The second return is false only for null, which leaves the current
// value (and therefore any prefilled default) in place.
func coerceFloat(data []byte) (float64, bool) {
	if bytes.Equal(data, []byte("null")) {
		return 0, false
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, true
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, true
		}

		return f, true
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, true
	}

	return f, true
}
