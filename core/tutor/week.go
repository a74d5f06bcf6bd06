package tutor

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ErrInvalidWeek is returned when decoding a week that is neither a number nor a string.
var ErrInvalidWeek = errors.New("week must be a number or a string")

type weekKind uint8

const (
	noWeek weekKind = iota
	numberWeek
	stringWeek
)

// WeekID identifies a teaching week. It is either a number or a string,
// and two WeekIDs are only equal when they are of the same kind: 4 != "4".
// The zero WeekID is no week at all (a null or missing JSON value); it equals nothing.
type WeekID struct {
	kind weekKind
	text string // as rendered in refs; numbers keep their JSON spelling
	num  float64
}

func NumericWeek(n float64) WeekID {
	return WeekID{kind: numberWeek, text: strconv.FormatFloat(n, 'f', -1, 64), num: n}
}

func StringWeek(s string) WeekID {
	return WeekID{kind: stringWeek, text: s}
}

// ParseWeekID reads a week typed on a command line: numbers are numeric weeks, anything else a string week.
func ParseWeekID(s string) WeekID {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return NumericWeek(n)
	}
	return StringWeek(s)
}

func (w WeekID) Equal(other WeekID) bool {
	if w.kind == noWeek || w.kind != other.kind {
		return false
	}
	if w.kind == numberWeek {
		return w.num == other.num
	}
	return w.text == other.text
}

func (w WeekID) IsNumeric() bool { return w.kind == numberWeek }
func (w WeekID) IsZero() bool    { return w.kind == noWeek }
func (w WeekID) String() string  { return w.text }

func (w WeekID) MarshalJSON() ([]byte, error) {
	switch w.kind {
	case numberWeek:
		return []byte(w.text), nil
	case stringWeek:
		return json.Marshal(w.text)
	}
	return []byte("null"), nil
}

func (w *WeekID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidWeek
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*w = StringWeek(s)
		return nil
	case 'n':
		if string(data) == "null" {
			*w = WeekID{}
			return nil
		}
		return ErrInvalidWeek
	}
	// only JSON number tokens get here; ParseFloat alone would also take "Inf" or "0x10"
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return ErrInvalidWeek
	}
	n, err := num.Float64()
	if err != nil {
		return ErrInvalidWeek
	}
	*w = WeekID{kind: numberWeek, text: num.String(), num: n}
	return nil
}
