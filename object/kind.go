package object

import "fmt"

// Kind identifies what an object entry places in the level
type Kind uint8

// Object kinds. Invalid is the zero value so an unset Object is never
// mistaken for a real one.
const (
	Invalid Kind = iota

	// Single tile objects, rows 0x0 to 0xb
	QuestionBlockPowerup
	QuestionBlockCoin
	HiddenBlockCoin
	HiddenBlockExtraLife
	BrickPowerup
	BrickVine
	BrickStar
	BrickMultiCoin
	BrickExtraLife
	SidewaysPipe
	UsedBlock
	Spring

	// Runs, rows 0x0 to 0xb
	IslandOrCannon
	HorizontalBricks
	HorizontalBlocks
	HorizontalCoins
	VerticalBricks
	VerticalBlocks
	PipeNoEntry
	PipeEntry

	// Row 0xc
	Hole
	BalanceRope
	BridgeY7
	BridgeY8
	BridgeY10
	FilledHole
	QuestionBlocksY3
	QuestionBlocksY7

	// Row 0xd
	PageSkip
	ReverseLPipe
	FlagPole
	CastleAxe
	AxeRope
	CastleBridge
	ScrollStopWarpZone
	ScrollStop
	RedCheepCheepFrenzy
	ContinuousBulletBillsOrCheepCheeps
	StopContinuation
	LoopCommand

	// Row 0xe
	BackdropChange
	TerrainChange

	// Row 0xf
	LiftRope
	PulleyRope
	Castle
	Staircase
	LongReverseLPipe
	FlagBalls

	numKinds
)

var kindNames = [numKinds]string{
	Invalid:                            "invalid",
	QuestionBlockPowerup:               "question block (power-up)",
	QuestionBlockCoin:                  "question block (coin)",
	HiddenBlockCoin:                    "hidden block (coin)",
	HiddenBlockExtraLife:               "hidden block (1-up)",
	BrickPowerup:                       "brick (power-up)",
	BrickVine:                          "brick (vine)",
	BrickStar:                          "brick (star)",
	BrickMultiCoin:                     "brick (multi-coin)",
	BrickExtraLife:                     "brick (1-up)",
	SidewaysPipe:                       "sideways pipe",
	UsedBlock:                          "used block",
	Spring:                             "spring",
	IslandOrCannon:                     "island or cannon",
	HorizontalBricks:                   "horizontal bricks",
	HorizontalBlocks:                   "horizontal blocks",
	HorizontalCoins:                    "horizontal coins",
	VerticalBricks:                     "vertical bricks",
	VerticalBlocks:                     "vertical blocks",
	PipeNoEntry:                        "pipe",
	PipeEntry:                          "pipe (enterable)",
	Hole:                               "hole",
	BalanceRope:                        "balance rope",
	BridgeY7:                           "bridge (y=7)",
	BridgeY8:                           "bridge (y=8)",
	BridgeY10:                          "bridge (y=10)",
	FilledHole:                         "filled hole",
	QuestionBlocksY3:                   "question blocks (y=3)",
	QuestionBlocksY7:                   "question blocks (y=7)",
	PageSkip:                           "page skip",
	ReverseLPipe:                       "reverse L pipe",
	FlagPole:                           "flag pole",
	CastleAxe:                          "castle axe",
	AxeRope:                            "axe rope",
	CastleBridge:                       "castle bridge",
	ScrollStopWarpZone:                 "scroll stop (warp zone)",
	ScrollStop:                         "scroll stop",
	RedCheepCheepFrenzy:                "red cheep cheep frenzy",
	ContinuousBulletBillsOrCheepCheeps: "continuous bullet bills or cheep cheeps",
	StopContinuation:                   "stop continuation",
	LoopCommand:                        "loop command",
	BackdropChange:                     "backdrop change",
	TerrainChange:                      "terrain change",
	LiftRope:                           "lift rope",
	PulleyRope:                         "pulley rope",
	Castle:                             "castle",
	Staircase:                          "staircase",
	LongReverseLPipe:                   "long reverse L pipe",
	FlagBalls:                          "flag balls",
}

func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Bounds returns the inclusive range of the parameter carried by k, or
// ok == false for kinds without one
func (k Kind) Bounds() (lo, hi int, ok bool) {
	switch k {
	case IslandOrCannon, HorizontalBricks, HorizontalBlocks, HorizontalCoins,
		Hole, BalanceRope, BridgeY7, BridgeY8, BridgeY10, FilledHole, QuestionBlocksY3, QuestionBlocksY7,
		LiftRope, PulleyRope, Castle, Staircase, LongReverseLPipe, FlagBalls:
		return 1, 16, true
	case VerticalBricks, VerticalBlocks:
		return 1, 12, true
	case PipeNoEntry, PipeEntry:
		return 2, 9, true
	case PageSkip:
		return 0, 0x3f, true
	case BackdropChange:
		return 0, 0x07, true
	case TerrainChange:
		return 0, 0x3f, true
	}
	return 0, 0, false
}
