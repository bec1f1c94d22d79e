package sauce

import (
	"fmt"
	"time"
)

// Date is the CCYYMMDD creation date. The zero Date encodes as "00000000",
// which some producers use for an unknown date. Any other Date must be
// Valid to be encoded.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// ParseDate decodes an 8 byte CCYYMMDD field. Spaces are read as zeros
// because several old editors pad the field with blanks.
func ParseDate(b []byte) (Date, error) {
	if len(b) != 8 {
		return Date{}, fmt.Errorf("%w: want 8 bytes, got %d", ErrInvalidDate, len(b))
	}
	var v [3]int
	widths := [3]int{4, 2, 2}
	pos := 0
	for i, w := range widths {
		for _, c := range b[pos : pos+w] {
			switch {
			case c >= '0' && c <= '9':
				v[i] = v[i]*10 + int(c-'0')
			case c == ' ' || c == 0:
				v[i] *= 10
			default:
				return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, b)
			}
		}
		pos += w
	}
	return Date{Year: v[0], Month: v[1], Day: v[2]}, nil
}

func (d Date) IsZero() bool { return d == Date{} }

// Valid reports whether d names a real calendar day.
func (d Date) Valid() bool {
	if d.Year < 0 || d.Year > 9999 || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= time.Date(d.Year, time.Month(d.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Time returns d at midnight UTC. ok is false for dates that are not valid.
func (d Date) Time() (time.Time, bool) {
	if !d.Valid() {
		return time.Time{}, false
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), true
}

// String formats d as YYYY/MM/DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// appendCCYYMMDD expects d to be zero or Valid.
func (d Date) appendCCYYMMDD(dst []byte) []byte {
	return fmt.Appendf(dst, "%04d%02d%02d", d.Year, d.Month, d.Day)
}
