package object

import "fmt"

const (
	// Rows below this are literal grid rows sharing one opcode table
	rowHole    = 0x0c
	rowControl = 0x0d
	rowArea    = 0x0e
	rowLarge   = 0x0f

	numRows    = 16
	numOpcodes = 128

	pageFlag   = 0x80
	opcodeMask = 0x7f
)

// Object is a classified opcode. Param is the decoded run length, height or
// command argument for kinds that have one, see Kind.Bounds, and zero
// otherwise.
type Object struct {
	Kind  Kind
	Param int
}

func (o Object) String() string {
	if _, _, ok := o.Kind.Bounds(); ok {
		return fmt.Sprintf("%s(%d)", o.Kind, o.Param)
	}
	return o.Kind.String()
}

// band maps the inclusive opcode range lo-hi to a kind. Opcodes not covered
// by any band in a row are Invalid.
type band struct {
	lo, hi byte
	kind   Kind
	param  func(op byte) int
}

func lowNibble(b byte) byte { return b & 0x0f }

func plusOne(op byte) int  { return int(lowNibble(op)) + 1 }
func plusTwo(op byte) int  { return int(lowNibble(op)) + 2 }
func minusSix(op byte) int { return int(lowNibble(op)) - 6 }
func raw(op byte) int      { return int(op) }
func lowThree(op byte) int { return int(op & 0x07) }
func lowSix(op byte) int   { return int(op & 0x3f) }

func single(op byte, k Kind) band {
	return band{op, op, k, nil}
}

// Rows 0x0 to 0xb
var gridBands = []band{
	single(0x00, QuestionBlockPowerup),
	single(0x01, QuestionBlockCoin),
	single(0x02, HiddenBlockCoin),
	single(0x03, HiddenBlockExtraLife),
	single(0x04, BrickPowerup),
	single(0x05, BrickVine),
	single(0x06, BrickStar),
	single(0x07, BrickMultiCoin),
	single(0x08, BrickExtraLife),
	single(0x09, SidewaysPipe),
	single(0x0a, UsedBlock),
	single(0x0b, Spring),
	// 0x0c-0x0f unused
	{0x10, 0x1f, IslandOrCannon, plusOne},
	{0x20, 0x2f, HorizontalBricks, plusOne},
	{0x30, 0x3f, HorizontalBlocks, plusOne},
	{0x40, 0x4f, HorizontalCoins, plusOne},
	// Columns taller than the 12 visible rows are unused
	{0x50, 0x5b, VerticalBricks, plusOne},
	{0x60, 0x6b, VerticalBlocks, plusOne},
	{0x70, 0x77, PipeNoEntry, plusTwo},
	{0x78, 0x7f, PipeEntry, minusSix},
}

var holeBands = []band{
	{0x00, 0x0f, Hole, plusOne},
	{0x10, 0x1f, BalanceRope, plusOne},
	{0x20, 0x2f, BridgeY7, plusOne},
	{0x30, 0x3f, BridgeY8, plusOne},
	{0x40, 0x4f, BridgeY10, plusOne},
	{0x50, 0x5f, FilledHole, plusOne},
	{0x60, 0x6f, QuestionBlocksY3, plusOne},
	{0x70, 0x7f, QuestionBlocksY7, plusOne},
}

var controlBands = []band{
	{0x00, 0x3f, PageSkip, raw},
	single(0x40, ReverseLPipe),
	single(0x41, FlagPole),
	single(0x42, CastleAxe),
	single(0x43, AxeRope),
	single(0x44, CastleBridge),
	single(0x45, ScrollStopWarpZone),
	{0x46, 0x47, ScrollStop, nil},
	single(0x48, RedCheepCheepFrenzy),
	single(0x49, ContinuousBulletBillsOrCheepCheeps),
	single(0x4a, StopContinuation),
	single(0x4b, LoopCommand),
}

var areaBands = []band{
	{0x00, 0x3f, TerrainChange, lowSix},
	{0x40, 0x7f, BackdropChange, lowThree},
}

var largeBands = []band{
	{0x00, 0x0f, LiftRope, plusOne},
	{0x10, 0x1f, PulleyRope, plusOne},
	{0x20, 0x2f, Castle, plusOne},
	{0x30, 0x3f, Staircase, plusOne},
	{0x40, 0x4f, LongReverseLPipe, plusOne},
	{0x50, 0x5f, FlagBalls, plusOne},
}

func bandsFor(row byte) []band {
	switch row {
	case rowHole:
		return holeBands
	case rowControl:
		return controlBands
	case rowArea:
		return areaBands
	case rowLarge:
		return largeBands
	}
	return gridBands
}

var table [numRows][numOpcodes]Object

func init() {
	for row := byte(0); row < numRows; row++ {
		for _, b := range bandsFor(row) {
			for op := int(b.lo); op <= int(b.hi); op++ {
				o := Object{Kind: b.kind}
				if b.param != nil {
					o.Param = b.param(byte(op))
				}
				table[row][op] = o
			}
		}
	}
}

// Classify returns the object selected by opcode on the given row. The
// new page flag in bit 7 of opcode is ignored. Rows outside 0x0-0xf and
// opcodes without a meaning on that row return an Invalid object.
func Classify(row, opcode byte) Object {
	if row >= numRows {
		return Object{}
	}
	return table[row][opcode&opcodeMask]
}
