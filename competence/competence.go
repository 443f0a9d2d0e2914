package competence

import (
	"encoding/json"
	"fmt"
	"time"
)

const readFormat = "2006-1" // Permissive read format (allows single-digit month).

// Format is the format used to represent competences as strings (ISO year-month).
const Format = "2006-01"

// Competence represents a (year, month) period, the canonical key used to
// index every time series and schedule in the planner.
type Competence struct {
	y int
	m time.Month
}

// New returns a normalized Competence for the given year and month.
// Out-of-range months roll over into the adjacent year.
func New(year int, month time.Month) Competence {
	c := Competence{year, month}
	t := c.time()
	c.y, c.m = t.Year(), t.Month()
	return c
}

// Of returns the Competence containing the given time.
func Of(t time.Time) Competence { return New(t.Year(), t.Month()) }

// Current returns the competence of the current month.
func Current() Competence { return Of(time.Now()) }

// time returns a time.Time that is a canonical representation of that
// competence (first day of the month at midnight UTC).
func (c Competence) time() time.Time {
	return time.Date(c.y, c.m, 1, 0, 0, 0, 0, time.UTC)
}

// Year returns the competence's year.
func (c Competence) Year() int { return c.y }

// Month returns the competence's month.
func (c Competence) Month() time.Month { return c.m }

// Before reports whether c is strictly before x.
func (c Competence) Before(x Competence) bool {
	return c.y < x.y || (c.y == x.y && c.m < x.m)
}

// After reports whether c is strictly after x.
func (c Competence) After(x Competence) bool { return x.Before(c) }

// Compare returns -1, 0 or +1 comparing c to x in chronological order.
func (c Competence) Compare(x Competence) int {
	switch {
	case c.Before(x):
		return -1
	case c.After(x):
		return 1
	default:
		return 0
	}
}

// Add returns a new Competence with the given number of months added.
func (c Competence) Add(months int) Competence { return New(c.y, c.m+time.Month(months)) }

// Sub returns the number of months from x to c (positive when c is after x).
func (c Competence) Sub(x Competence) int { return (c.y-x.y)*12 + int(c.m-x.m) }

// YearsSince returns the age in whole years at competence c for someone born
// on the given date.
func (c Competence) YearsSince(birth time.Time) int {
	years := c.y - birth.Year()
	if c.m < birth.Month() {
		years--
	}
	return years
}

// String formats the competence in its standard "2006-01" form.
func (c Competence) String() string { return c.time().Format(Format) }

// Parse parses a Competence from a string. It is lenient and accepts forms
// like "2025-7" as well as "2025-07".
func Parse(str string) (Competence, error) {
	t, err := time.Parse(readFormat, str)
	if err != nil {
		return Competence{}, fmt.Errorf("invalid competence %q want format %q: %w", str, readFormat, err)
	}
	return Of(t), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Competence {
	c, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// UnmarshalJSON implements the json specific way to unmarshall a competence
// from a json string.
func (c *Competence) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	p, err := Parse(str)
	if err != nil {
		return err
	}
	*c = p
	return nil
}

func (c Competence) MarshalJSON() ([]byte, error) {
	str := c.String()
	return json.Marshal(&str)
}

// check that a Competence pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Competence)(nil)
var _ json.Unmarshaler = (*Competence)(nil)
