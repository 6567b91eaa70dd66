// Package option defines the selectable items a select component works on:
// identifiers, labeled options and ordered option lists.
package option

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cast"

	appErrors "selectbox/internal/errors"
)

// ID identifies an option within a list. It holds either a string or an
// integer; the two never compare equal, so IntID(2) != StringID("2").
// The zero ID is undefined and never matches an option.
type ID struct {
	str     string
	num     int64
	numeric bool
	set     bool
}

// StringID returns a string identifier.
func StringID(s string) ID {
	return ID{str: s, set: true}
}

// IntID returns a numeric identifier.
func IntID(n int64) ID {
	return ID{num: n, numeric: true, set: true}
}

// ParseID converts a decoded value (YAML, SQL column, flag) into an ID.
// Integral numbers become numeric IDs; strings and byte slices become string IDs.
func ParseID(v any) (ID, error) {
	switch val := v.(type) {
	case nil:
		return ID{}, appErrors.New(appErrors.CodeParseFailed, "id is missing", nil)
	case ID:
		return val, nil
	case string:
		return StringID(val), nil
	case []byte:
		return StringID(string(val)), nil
	case float32, float64:
		f := cast.ToFloat64(val)
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return ID{}, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("id %v is not an integer", val), nil)
		}
		return IntID(int64(f)), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, err := cast.ToInt64E(val)
		if err != nil {
			return ID{}, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("id %v", val), err)
		}
		return IntID(n), nil
	default:
		return ID{}, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("unsupported id type %T", v), nil)
	}
}

// IsZero reports whether the ID is undefined.
func (id ID) IsZero() bool {
	return !id.set
}

// IsNumeric reports whether the ID holds an integer.
func (id ID) IsNumeric() bool {
	return id.numeric
}

// Int returns the integer value of a numeric ID.
func (id ID) Int() (int64, bool) {
	return id.num, id.numeric
}

// String renders the ID the way it was supplied. Undefined IDs render empty.
func (id ID) String() string {
	switch {
	case !id.set:
		return ""
	case id.numeric:
		return strconv.FormatInt(id.num, 10)
	default:
		return id.str
	}
}

// GoString makes string and numeric IDs distinguishable in test output.
func (id ID) GoString() string {
	switch {
	case !id.set:
		return "option.ID{}"
	case id.numeric:
		return fmt.Sprintf("option.IntID(%d)", id.num)
	default:
		return fmt.Sprintf("option.StringID(%q)", id.str)
	}
}

// Option is a single selectable entry.
type Option struct {
	ID            ID
	DisplayString string
}

// List is an ordered sequence of options. Order drives rendering, keyboard
// navigation and first-match resolution. IDs are expected to be unique;
// with duplicates, which one Find returns is unspecified.
type List []Option

// Find returns the first option whose ID equals id.
func (l List) Find(id ID) (Option, bool) {
	if idx := l.IndexOf(id); idx >= 0 {
		return l[idx], true
	}
	return Option{}, false
}

// IndexOf returns the position of the first option with the given ID, or -1.
func (l List) IndexOf(id ID) int {
	if id.IsZero() {
		return -1
	}
	for i, opt := range l {
		if opt.ID == id {
			return i
		}
	}
	return -1
}

// Labels returns the display strings in list order.
func (l List) Labels() []string {
	labels := make([]string, len(l))
	for i, opt := range l {
		labels[i] = opt.DisplayString
	}
	return labels
}

// Validate checks that every option carries an ID and a display string.
func Validate(l List) error {
	for i, opt := range l {
		if opt.ID.IsZero() {
			return appErrors.New(appErrors.CodeInvalidOption, fmt.Sprintf("option %d has no id", i), nil)
		}
		if opt.DisplayString == "" {
			return appErrors.New(appErrors.CodeInvalidOption, fmt.Sprintf("option %d (id %s) has no display string", i, opt.ID), nil)
		}
	}
	return nil
}
