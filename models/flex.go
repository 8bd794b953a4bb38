package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Score is a questionnaire score decoded leniently from JSON.
//
// Numbers and numeric strings are accepted (fractions are truncated);
// null, empty strings, booleans and any other non-numeric value decode to
// zero, matching the rule that a missing score counts as zero. Values beyond
// the 32-bit range saturate at [MaxScore] or [MinScore].
type Score int

const (
	MaxScore Score = math.MaxInt32
	MinScore Score = math.MinInt32
)

func (s *Score) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		*s = scoreFromString(num.String())
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = scoreFromString(str)
		return nil
	}

	*s = 0
	return nil
}

func scoreFromString(v string) Score {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	overflow := errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0)
	if !overflow && (err != nil || math.IsNaN(f) || math.IsInf(f, 0)) {
		return 0
	}
	switch {
	case f >= float64(MaxScore):
		return MaxScore
	case f <= float64(MinScore):
		return MinScore
	}
	return Score(math.Trunc(f))
}

// Int returns the score as a plain int.
func (s Score) Int() int {
	return int(s)
}

// timestampLayouts are tried in order when decoding client timestamps.
// The zone-less layouts cover ISO strings produced without an offset; they
// are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// Timestamp is a client-supplied point in time. The zero value means the
// caller did not provide one and the server clock should be used.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		if string(bytes.TrimSpace(b)) == "null" {
			t.Time = time.Time{}
			return nil
		}
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// ParseTimestamp parses s using the accepted layouts. An empty string yields
// the zero time and no error.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}
