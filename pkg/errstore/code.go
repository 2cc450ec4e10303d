package errstore

import (
	"encoding/json"
	"strconv"
)

// Code identifies a descriptor. It holds either an integer or a string.
// Two codes are equal when their canonical text is equal, so IntCode(42)
// and StringCode("42") name the same entry.
type Code struct {
	num   int
	str   string
	isNum bool
}

// IntCode returns a numeric code.
func IntCode(n int) Code {
	return Code{num: n, str: strconv.Itoa(n), isNum: true}
}

// StringCode returns a string code.
func StringCode(s string) Code {
	return Code{str: s}
}

// ParseCode returns an integer code when s is the canonical decimal form
// of a number and a string code otherwise, so "0012" stays a string.
func ParseCode(s string) Code {
	if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
		return IntCode(n)
	}
	return StringCode(s)
}

// String returns the canonical text of the code.
func (c Code) String() string {
	return c.str
}

// IsZero reports whether c was never set.
func (c Code) IsZero() bool {
	return !c.isNum && c.str == ""
}

// Int returns the numeric value and whether the code is numeric.
func (c Code) Int() (int, bool) {
	return c.num, c.isNum
}

// MarshalJSON encodes numeric codes as JSON numbers and string codes as
// JSON strings.
func (c Code) MarshalJSON() ([]byte, error) {
	if c.isNum {
		return []byte(c.str), nil
	}
	return json.Marshal(c.str)
}

// UnmarshalJSON accepts a JSON number or string.
func (c *Code) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*c = IntCode(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = StringCode(s)
	return nil
}
