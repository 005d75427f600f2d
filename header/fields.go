package header

import "fmt"

// Time is the level time limit
type Time uint8

// Time limits
const (
	TimeNotSet Time = iota
	Time400
	Time300
	Time200
)

var timeTable = [timeMask>>timeShift + 1]struct {
	name    string
	seconds int
}{
	{"not set", 0},
	{"400", 400},
	{"300", 300},
	{"200", 200},
}

// Bits returns the raw field value
func (t Time) Bits() byte { return byte(t) & (timeMask >> timeShift) }

// Seconds returns the time limit in game seconds, zero if unset or unknown
func (t Time) Seconds() int {
	if int(t) >= len(timeTable) {
		return 0
	}
	return timeTable[t].seconds
}

func (t Time) String() string {
	if int(t) >= len(timeTable) {
		return unknown("Time", byte(t))
	}
	return timeTable[t].name
}

// Start is the player starting position. The last two values also start
// the player walking automatically.
type Start uint8

// Start positions
const (
	StartFallFromSky Start = iota
	StartFallFromHigh
	StartOnGround
	StartHalfwayOffGround
	StartFallFromSkyAlt
	StartFallFromSkyAlt2
	StartAutowalk
	StartAutowalkAlt
)

var startTable = [startMask>>startShift + 1]struct {
	name     string
	playerY  byte
	autowalk bool
}{
	{"fall from sky", 0x00, false},
	{"fall from high", 0x20, false},
	{"on ground", 0xb0, false},
	{"halfway off ground", 0x50, false},
	{"fall from sky (alt)", 0x00, false},
	{"fall from sky (alt 2)", 0x00, false},
	{"autowalk", 0xb0, true},
	{"autowalk (alt)", 0xb0, true},
}

// Bits returns the raw field value
func (s Start) Bits() byte { return byte(s) & (startMask >> startShift) }

// PlayerY returns the vertical pixel position the player starts at, zero
// for unknown values
func (s Start) PlayerY() byte {
	if int(s) >= len(startTable) {
		return 0
	}
	return startTable[s].playerY
}

// Autowalk reports whether the player walks without input at the start
func (s Start) Autowalk() bool {
	if int(s) >= len(startTable) {
		return false
	}
	return startTable[s].autowalk
}

func (s Start) String() string {
	if int(s) >= len(startTable) {
		return unknown("Start", byte(s))
	}
	return startTable[s].name
}

// Background is the backdrop colour and effect
type Background uint8

// Backgrounds
const (
	BackgroundDayTime Background = iota
	BackgroundUnderwater
	BackgroundCastleWall
	BackgroundOverwater
	BackgroundNightTime
	BackgroundDayTimeSnow
	BackgroundNightTimeSnow
	BackgroundBlackAndWhite
)

var backgroundNames = [backgroundMask + 1]string{
	"day time",
	"underwater",
	"castle wall",
	"overwater",
	"night time",
	"day time snow",
	"night time snow",
	"black and white",
}

// Bits returns the raw field value
func (b Background) Bits() byte { return byte(b) & backgroundMask }

func (b Background) String() string {
	if int(b) >= len(backgroundNames) {
		return unknown("Background", byte(b))
	}
	return backgroundNames[b]
}

// Platform selects the graphics used for island and cannon objects
type Platform uint8

// Platform styles
const (
	PlatformGreenAndTrees Platform = iota
	PlatformOrangeAndMushrooms
	PlatformBulletBills
	PlatformClouds
)

var platformNames = [platformMask>>platformShift + 1]string{
	"green and trees",
	"orange and mushrooms",
	"bullet bills",
	"clouds",
}

// Bits returns the raw field value
func (p Platform) Bits() byte { return byte(p) & (platformMask >> platformShift) }

func (p Platform) String() string {
	if int(p) >= len(platformNames) {
		return unknown("Platform", byte(p))
	}
	return platformNames[p]
}

// Scenery is the repeating background decoration
type Scenery uint8

// Scenery types
const (
	SceneryNothing Scenery = iota
	SceneryClouds
	SceneryMountains
	SceneryFence
)

var sceneryNames = [sceneryMask>>sceneryShift + 1]string{
	"nothing",
	"clouds",
	"mountains",
	"fence",
}

// Bits returns the raw field value
func (s Scenery) Bits() byte { return byte(s) & (sceneryMask >> sceneryShift) }

func (s Scenery) String() string {
	if int(s) >= len(sceneryNames) {
		return unknown("Scenery", byte(s))
	}
	return sceneryNames[s]
}

// Ground is the repeating floor and ceiling pattern
type Ground uint8

// Ground structures
const (
	GroundNothing Ground = iota
	GroundBasicFloor
	GroundBasicFloorAndCeiling
	GroundBasicFloorAndThreeLayerCeiling
	GroundBasicFloorAndFourLayerCeiling
	GroundBasicFloorAndEightLayerCeiling
	GroundFiveLayerFloorAndCeiling
	GroundFiveLayerFloorAndThreeLayerCeiling
	GroundFiveLayerFloorAndFourLayerCeiling
	GroundSixLayerFloorAndCeiling
	GroundCeiling
	GroundSixLayerFloorAndFourLayerCeiling
	GroundNineLayerFloorAndCeiling
	GroundFloorGapFiveLayerBricksGapCeiling
	GroundFloorGapFourLayerBricksGapCeiling
	GroundAll
)

var groundNames = [groundMask + 1]string{
	"nothing",
	"basic floor",
	"basic floor and ceiling",
	"basic floor and three layer ceiling",
	"basic floor and four layer ceiling",
	"basic floor and eight layer ceiling",
	"five layer floor and ceiling",
	"five layer floor and three layer ceiling",
	"five layer floor and four layer ceiling",
	"six layer floor and ceiling",
	"ceiling",
	"six layer floor and four layer ceiling",
	"nine layer floor and ceiling",
	"basic floor, three layer gap, five layer bricks, two layer gap and ceiling",
	"basic floor, three layer gap, four layer bricks, three layer gap and ceiling",
	"all",
}

// Bits returns the raw field value
func (g Ground) Bits() byte { return byte(g) & groundMask }

func (g Ground) String() string {
	if int(g) >= len(groundNames) {
		return unknown("Ground", byte(g))
	}
	return groundNames[g]
}

func unknown(field string, v byte) string {
	return fmt.Sprintf("unknown %s(%#x)", field, v)
}
