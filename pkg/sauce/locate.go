package sauce

// Location describes where a record sits inside a buffer.
type Location struct {
	// HeaderStart is the offset of the 128 byte header.
	HeaderStart int
	// CommentStart is the offset of the "COMNT" marker, or -1 when the
	// record has no comment block or the block could not be found.
	CommentStart int
	// CommentCount is the count stored in the header, even when the block is missing.
	CommentCount int
	// End is one past the last byte of the record.
	End int
}

// Start is the offset of the first byte belonging to the record.
func (l Location) Start() int {
	if l.CommentStart >= 0 {
		return l.CommentStart
	}
	return l.HeaderStart
}

// Len is the number of bytes the record occupies.
func (l Location) Len() int { return l.End - l.Start() }

// HasComments reports whether a comment block was found.
func (l Location) HasComments() bool { return l.CommentStart >= 0 }

// Locate finds a record that ends exactly at the end of buf.
//
// The header must carry a valid signature and version. A declared comment
// block is attached only when it fits in buf and starts with "COMNT";
// otherwise the record is located without it.
func Locate(buf []byte) (Location, bool) {
	hs := len(buf) - HeaderSize
	if !validHeaderAt(buf, hs) {
		return Location{}, false
	}
	loc := Location{
		HeaderStart:  hs,
		CommentStart: -1,
		CommentCount: int(buf[hs+offComments]),
		End:          len(buf),
	}
	if loc.CommentCount > 0 {
		cs := hs - commentBlockSize(loc.CommentCount)
		if cs >= 0 && string(buf[cs:cs+CommentMarkerSize]) == commentMarker {
			loc.CommentStart = cs
		}
	}
	return loc, true
}

// HasEOFBefore reports whether an EOF marker directly precedes the record at loc.
func HasEOFBefore(buf []byte, loc Location) bool {
	s := loc.Start()
	return s > 0 && s <= len(buf) && buf[s-1] == EOF
}

func commentBlockSize(n int) int {
	return CommentMarkerSize + n*CommentLineSize
}
