/*
Package header implements a decoder for the two byte level header that
precedes the object data of every area.

The header is laid out as follows, most significant bit first:

	TTSSSBBB PPCCGGGG

	TT   time limit
	SSS  player start position, values 6 and 7 also enable autowalk
	BBB  background
	PP   platform style
	CC   scenery
	GGGG ground structure

Every field is extracted as (byte & mask) >> shift and looked up in a table
that covers every value the mask can produce, so any pair of bytes decodes.
*/
package header

import (
	"errors"
	"fmt"
)

// Size is the number of bytes consumed by Parse
const Size = 2

const (
	timeMask       = 0xc0
	timeShift      = 6
	startMask      = 0x38
	startShift     = 3
	backgroundMask = 0x07

	platformMask  = 0xc0
	platformShift = 6
	sceneryMask   = 0x30
	sceneryShift  = 4
	groundMask    = 0x0f
)

// ErrMalformed is returned when fewer than Size bytes are supplied
var ErrMalformed = errors.New("header: malformed header")

// Header is a decoded level header
type Header struct {
	Time       Time
	Start      Start
	Background Background
	Platform   Platform
	Scenery    Scenery
	Ground     Ground

	// Autowalk is derived from Start, the format has no separate bit
	Autowalk bool
}

// Parse decodes the first Size bytes of b. Any trailing bytes are ignored.
func Parse(b []byte) (Header, error) {
	if len(b) < Size {
		return Header{}, fmt.Errorf("%w: need %d bytes, got %d", ErrMalformed, Size, len(b))
	}

	h := Header{
		Time:       Time((b[0] & timeMask) >> timeShift),
		Start:      Start((b[0] & startMask) >> startShift),
		Background: Background(b[0] & backgroundMask),
		Platform:   Platform((b[1] & platformMask) >> platformShift),
		Scenery:    Scenery((b[1] & sceneryMask) >> sceneryShift),
		Ground:     Ground(b[1] & groundMask),
	}
	h.Autowalk = h.Start.Autowalk()

	return h, nil
}

func (h Header) String() string {
	return fmt.Sprintf("time=%s start=%s background=%s platform=%s scenery=%s ground=%s", h.Time, h.Start, h.Background, h.Platform, h.Scenery, h.Ground)
}
