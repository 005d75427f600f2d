/*
Package enemy implements a decoder for level enemy data.

Enemy data uses the same record stream as object data, two byte entries
ended by a sentinel, with its own opcode table:

	XXXXYYYY PHIIIIII

	XXXX     column within the current page
	YYYY     row, 0xe and 0xf are commands
	P        advance to the next page before this entry
	H        only spawn in the second quest
	IIIIII   enemy identifier

Row 0xf skips to the page in the low six bits. Row 0xe is a three byte area
change entry; the second byte is the destination area pointer and the third
holds the world from which the change applies and the page to enter on:

	XXXX1110 PAAAAAAA WWWPPPPP

Cartridge images end enemy data with 0xff rather than 0xfd, use
stream.WithSentinel to select it.
*/
package enemy

import (
	"fmt"

	"github.com/bodgit/smblevels/stream"
)

const (
	rowAreaChange = 0x0e
	rowPageSkip   = 0x0f

	pageFlag = 0x80
	hardFlag = 0x40
	idMask   = 0x3f

	areaChangeSize = 3
	pageWidth      = 16
)

// Enemy is a classified opcode
type Enemy struct {
	Kind Kind

	// HardMode is set for enemies that only appear in the second quest
	HardMode bool

	// Param is the group size for group kinds, the page for PageSkip and
	// the raw area pointer for AreaChange
	Param int
}

func (e Enemy) String() string {
	s := e.Kind.String()
	if e.Param != 0 || e.Kind == PageSkip {
		s = fmt.Sprintf("%s(%d)", s, e.Param)
	}
	if e.HardMode {
		s += " [hard]"
	}
	return s
}

// Destination is the target of an AreaChange entry
type Destination struct {
	Area  AreaPointer
	World int
	Page  int
}

// Entry is one decoded enemy record
type Entry struct {
	Enemy

	X       byte
	Y       byte
	NewPage bool

	// Page is the absolute page the entry applies on
	Page int

	// Offset is the position of the entry within the enemy data
	Offset int

	// Destination is only set for AreaChange entries
	Destination *Destination
}

// Column returns the absolute column of the entry within the level
func (e Entry) Column() int {
	return e.Page*pageWidth + int(e.X)
}

var groupSize = map[Kind]int{
	TwoGoombasLow:    2,
	ThreeGoombasLow:  3,
	TwoGoombasHigh:   2,
	ThreeGoombasHigh: 3,
	TwoKoopasLow:     2,
	ThreeKoopasLow:   3,
	TwoKoopasHigh:    2,
	ThreeKoopasHigh:  3,
}

// Classify returns the enemy selected by opcode on the given row. The new
// page flag is ignored. Identifiers the game never places in level data
// return Invalid.
func Classify(row, opcode byte) Enemy {
	switch {
	case row == rowPageSkip:
		return Enemy{Kind: PageSkip, Param: int(opcode & idMask)}
	case row == rowAreaChange:
		return Enemy{Kind: AreaChange, Param: int(opcode &^ pageFlag)}
	case row > rowPageSkip:
		return Enemy{Kind: Invalid}
	}

	k := Kind(opcode & idMask)
	if !k.Known() {
		return Enemy{Kind: Invalid}
	}

	return Enemy{
		Kind:     k,
		HardMode: opcode&hardFlag != 0,
		Param:    groupSize[k],
	}
}

func width(b byte) int {
	if b&0x0f == rowAreaChange {
		return areaChangeSize
	}
	return stream.RecordSize
}

func decodeEntry(b []byte, offset, page int) Entry {
	e := Entry{
		X:       b[0] >> 4,
		Y:       b[0] & 0x0f,
		NewPage: b[1]&pageFlag != 0,
		Offset:  offset,
	}
	e.Enemy = Classify(e.Y, b[1])

	if e.NewPage {
		page++
	}

	switch e.Kind {
	case PageSkip:
		page = e.Param
	case AreaChange:
		e.Destination = &Destination{
			Area:  AreaPointer(e.Param),
			World: int(b[2] >> 5),
			Page:  int(b[2] & 0x1f),
		}
	}
	e.Page = page

	return e
}

// Decode decodes enemy data from b up to the sentinel, 0xfd unless
// overridden with stream.WithSentinel. The only error is a
// *stream.OffsetError wrapping stream.ErrTruncated.
func Decode(b []byte, options ...stream.Option) ([]Entry, error) {
	var entries []Entry

	page := 0
	s := stream.NewScanner(b, append(options[:len(options):len(options)], stream.WithWidth(width))...)
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

// Unclassified returns the entries whose identifier has no known meaning
func Unclassified(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Kind == Invalid {
			out = append(out, e)
		}
	}
	return out
}

// Size returns the number of bytes entries occupied in the enemy data,
// including the sentinel
func Size(entries []Entry) int {
	n := 1
	for _, e := range entries {
		if e.Kind == AreaChange {
			n += areaChangeSize
			continue
		}
		n += stream.RecordSize
	}
	return n
}
