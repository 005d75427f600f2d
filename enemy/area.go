package enemy

import "fmt"

// AreaType is the kind of area an area pointer refers to
type AreaType int

const (
	AreaWater AreaType = iota
	AreaGround
	AreaUnderground
	AreaCastle
)

var areaTypeNames = [...]string{
	AreaWater:       "water",
	AreaGround:      "ground",
	AreaUnderground: "underground",
	AreaCastle:      "castle",
}

func (t AreaType) String() string {
	if t < 0 || int(t) >= len(areaTypeNames) {
		return fmt.Sprintf("AreaType(%d)", int(t))
	}
	return areaTypeNames[t]
}

// AreaPointer identifies an area, the type in bits 6-5 and the index of
// the area within that type in bits 4-0
type AreaPointer uint8

// Type returns the area type
func (p AreaPointer) Type() AreaType {
	return AreaType(p >> 5 & 0x03)
}

// Index returns the area number within its type
func (p AreaPointer) Index() int {
	return int(p & 0x1f)
}

func (p AreaPointer) String() string {
	return fmt.Sprintf("%s:%d", p.Type(), p.Index())
}
