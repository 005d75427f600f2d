/*
Package object implements a decoder for level object data.

Object data follows the two byte level header and is a list of two byte
entries terminated by 0xfd:

	XXXXYYYY POOOOOOO

	XXXX     column within the current page
	YYYY     row, 0x0-0xb are grid rows, 0xc-0xf select other opcode tables
	P        advance to the next page before placing this object
	OOOOOOO  opcode, classified together with the row
*/
package object

import (
	"github.com/bodgit/smblevels/header"
	"github.com/bodgit/smblevels/stream"
)

// PageWidth is the number of columns in a page
const PageWidth = 16

// Entry is one decoded object
type Entry struct {
	Object

	X       byte
	Y       byte
	NewPage bool

	// Page is the absolute page the object lands on, following new page
	// flags and page skip commands from the start of the stream
	Page int

	// Offset is the position of the entry within the object data
	Offset int
}

// Column returns the absolute column of the entry within the level
func (e Entry) Column() int {
	return e.Page*PageWidth + int(e.X)
}

// Terrain returns the scenery and ground selected by a TerrainChange entry
func (o Object) Terrain() (header.Scenery, header.Ground, bool) {
	if o.Kind != TerrainChange {
		return 0, 0, false
	}
	return header.Scenery(o.Param >> 4), header.Ground(o.Param & 0x0f), true
}

// Backdrop returns the background selected by a BackdropChange entry
func (o Object) Backdrop() (header.Background, bool) {
	if o.Kind != BackdropChange {
		return 0, false
	}
	return header.Background(o.Param), true
}

func decodeEntry(b []byte, offset, page int) Entry {
	e := Entry{
		X:       b[0] >> 4,
		Y:       lowNibble(b[0]),
		NewPage: b[1]&pageFlag != 0,
		Offset:  offset,
	}
	e.Object = Classify(e.Y, b[1])

	if e.NewPage {
		page++
	}
	if e.Kind == PageSkip {
		page = e.Param
	}
	e.Page = page

	return e
}

// Decode decodes object data from b up to the 0xfd sentinel. Unknown
// opcodes produce Invalid entries rather than an error; the only error is
// a *stream.OffsetError wrapping stream.ErrTruncated when b ends before
// the sentinel.
func Decode(b []byte) ([]Entry, error) {
	var entries []Entry

	page := 0
	s := stream.NewScanner(b)
	for s.Scan() {
		e := decodeEntry(s.Record(), s.Offset(), page)
		page = e.Page
		entries = append(entries, e)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Unclassified returns the entries whose opcode has no known meaning
func Unclassified(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Kind == Invalid {
			out = append(out, e)
		}
	}
	return out
}

// Size returns the number of bytes entries occupied in the object data,
// including the sentinel
func Size(entries []Entry) int {
	return len(entries)*stream.RecordSize + 1
}
