package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// cell decodes any JSON scalar into its string form.
type cell string

func (c *cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*c = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = cell(s)
	default:
		// numbers and booleans keep their literal text
		*c = cell(data)
	}
	return nil
}

func (c cell) time() (time.Time, error) {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// ParsePage reads a page cell leniently. Blank, non-numeric, fractional and
// non-positive values all mean the page is unknown.
func ParsePage(v string) *int {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if f < 1 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil
	}
	page := int(f)
	return &page
}

// NewTimestamp returns the current time in the precision and zone used for
// createdAt values.
func NewTimestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
