package yatta

import (
	"bytes"
	"strconv"
)

// Number is a JSON number that keeps track of whether the upstream payload
// carried it as an integer or a real. Skill parameters and stat tables mix
// both forms, and the distinction matters when rendering them into
// description strings.
type Number struct {
	i     int64
	f     float64
	isInt bool
}

// Int returns a Number holding an integer value.
func Int(v int64) Number {
	return Number{i: v, isInt: true}
}

// Float returns a Number holding a real value.
func Float(v float64) Number {
	return Number{f: v}
}

// IsInt reports whether the number was carried as an integer.
func (n Number) IsInt() bool {
	return n.isInt
}

// Float64 returns the value as a float64 regardless of form.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// Times returns the number multiplied by factor, preserving its form.
func (n Number) Times(factor int64) Number {
	if n.isInt {
		return Number{i: n.i * factor, isInt: true}
	}
	return Number{f: n.f * float64(factor)}
}

// String renders integers without a decimal point and reals with the
// minimal number of digits.
func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}

// UnmarshalJSON decodes a JSON number, preferring the integer form when the
// payload has no fractional part. A JSON null decodes to integer zero.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Number{isInt: true}
		return nil
	}
	if i, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*n = Number{i: i, isInt: true}
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = Number{f: f}
	return nil
}

// MarshalJSON encodes the number back in the form it arrived in.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}
