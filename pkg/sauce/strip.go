package sauce

import (
	"fmt"
	"strings"
)

// StripMode selects how many trailing records Strip removes and whether
// the EOF marker in front of them goes too.
type StripMode uint8

const (
	// Last removes only the final record.
	Last StripMode = iota
	// LastStripFinalEOF removes the final record and a single EOF marker before it.
	LastStripFinalEOF
	// All removes a chain of records joined by single EOF separators.
	All
	// AllStripFinalEOF removes the chain and a single EOF marker before it.
	AllStripFinalEOF
)

var stripModeNames = [...]string{
	Last:              "last",
	LastStripFinalEOF: "last-eof",
	All:               "all",
	AllStripFinalEOF:  "all-eof",
}

func (m StripMode) String() string {
	if int(m) < len(stripModeNames) {
		return stripModeNames[m]
	}
	return fmt.Sprintf("StripMode(%d)", uint8(m))
}

// ParseStripMode accepts the names returned by StripMode.String.
func ParseStripMode(s string) (StripMode, error) {
	for i, name := range stripModeNames {
		if strings.EqualFold(s, name) {
			return StripMode(i), nil
		}
	}
	return Last, fmt.Errorf("sauce: unknown strip mode %q", s)
}

func (m StripMode) chain() bool    { return m == All || m == AllStripFinalEOF }
func (m StripMode) finalEOF() bool { return m == LastStripFinalEOF || m == AllStripFinalEOF }

// StripResult reports what Strip removed. Data aliases the input.
type StripResult struct {
	Data            []byte
	RecordsRemoved  int
	EOFBytesRemoved int
}

// Strip returns the prefix of buf that remains after removing trailing
// records according to mode. It never fails; without a record buf is
// returned as is.
func Strip(buf []byte, mode StripMode) []byte {
	return StripWithStats(buf, mode).Data
}

// StripWithStats is Strip with counts of what was removed.
//
// In the chain modes the walk continues past a record only when exactly one
// EOF byte separates it from another record ending right before that byte.
// A run of two or more EOF bytes is a barrier. In the final EOF modes the
// single EOF directly before the earliest removed record is dropped too;
// any EOF bytes in front of it belong to the content and are kept.
func StripWithStats(buf []byte, mode StripMode) StripResult {
	loc, ok := Locate(buf)
	if !ok {
		return StripResult{Data: buf}
	}

	var (
		res StripResult
		end int
	)
	for {
		end = loc.Start()
		res.RecordsRemoved++
		if !mode.chain() || eofRun(buf[:end]) != 1 {
			break
		}
		next, ok := Locate(buf[:end-1])
		if !ok {
			break
		}
		res.EOFBytesRemoved++
		loc = next
	}
	if mode.finalEOF() && eofRun(buf[:end]) >= 1 {
		end--
		res.EOFBytesRemoved++
	}
	res.Data = buf[:end]
	return res
}

// eofRun counts the EOF bytes at the end of b, saturating at 2.
func eofRun(b []byte) int {
	n := 0
	for i := len(b) - 1; i >= 0 && n < 2 && b[i] == EOF; i-- {
		n++
	}
	return n
}
