package object

import (
	"errors"
	"testing"

	"github.com/bodgit/smblevels/header"
	"github.com/bodgit/smblevels/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		row, opcode byte
		want        Object
	}{
		{0x0, 0x00, Object{QuestionBlockPowerup, 0}},
		{0x5, 0x0b, Object{Spring, 0}},
		{0xb, 0x0c, Object{Invalid, 0}},
		{0x3, 0x0f, Object{Invalid, 0}},
		{0x7, 0x10, Object{IslandOrCannon, 1}},
		{0x7, 0x1f, Object{IslandOrCannon, 16}},
		{0x2, 0x24, Object{HorizontalBricks, 5}},
		{0x2, 0x3a, Object{HorizontalBlocks, 11}},
		{0x2, 0x40, Object{HorizontalCoins, 1}},
		{0x9, 0x50, Object{VerticalBricks, 1}},
		{0x9, 0x5b, Object{VerticalBricks, 12}},
		{0x9, 0x5c, Object{Invalid, 0}},
		{0x9, 0x5f, Object{Invalid, 0}},
		{0x9, 0x6b, Object{VerticalBlocks, 12}},
		{0x9, 0x6c, Object{Invalid, 0}},
		{0xa, 0x70, Object{PipeNoEntry, 2}},
		{0xa, 0x77, Object{PipeNoEntry, 9}},
		{0xa, 0x78, Object{PipeEntry, 2}},
		{0xa, 0x7f, Object{PipeEntry, 9}},
		{0xc, 0x25, Object{BridgeY7, 6}},
		{0xc, 0x00, Object{Hole, 1}},
		{0xc, 0x1f, Object{BalanceRope, 16}},
		{0xc, 0x4a, Object{BridgeY10, 11}},
		{0xc, 0x73, Object{QuestionBlocksY7, 4}},
		{0xd, 0x00, Object{PageSkip, 0}},
		{0xd, 0x3f, Object{PageSkip, 0x3f}},
		{0xd, 0x41, Object{FlagPole, 0}},
		{0xd, 0x47, Object{ScrollStop, 0}},
		{0xd, 0x4b, Object{LoopCommand, 0}},
		{0xd, 0x4c, Object{Invalid, 0}},
		{0xe, 0x21, Object{TerrainChange, 0x21}},
		{0xe, 0x44, Object{BackdropChange, 4}},
		{0xf, 0x23, Object{Castle, 4}},
		{0xf, 0x60, Object{Invalid, 0}},
		{0x10, 0x00, Object{Invalid, 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.row, tt.opcode), "row %#x opcode %#x", tt.row, tt.opcode)
	}
}

func TestClassifyIgnoresPageFlag(t *testing.T) {
	for row := byte(0); row < numRows; row++ {
		for op := 0; op < numOpcodes; op++ {
			assert.Equal(t, Classify(row, byte(op)), Classify(row, byte(op)|pageFlag))
		}
	}
}

func TestClassifyBounds(t *testing.T) {
	for row := byte(0); row < numRows; row++ {
		for op := 0; op < numOpcodes; op++ {
			o := Classify(row, byte(op))
			assert.Less(t, o.Kind, numKinds)

			lo, hi, ok := o.Kind.Bounds()
			if !ok {
				assert.Zero(t, o.Param, "row %#x opcode %#x", row, op)
				continue
			}
			assert.GreaterOrEqual(t, o.Param, lo, "row %#x opcode %#x", row, op)
			assert.LessOrEqual(t, o.Param, hi, "row %#x opcode %#x", row, op)
		}
	}
}

func TestGridRowsShareTable(t *testing.T) {
	for row := byte(1); row < rowHole; row++ {
		for op := 0; op < numOpcodes; op++ {
			assert.Equal(t, Classify(0, byte(op)), Classify(row, byte(op)))
		}
	}
}

func TestBandsOrdered(t *testing.T) {
	for _, bands := range [][]band{gridBands, holeBands, controlBands, areaBands, largeBands} {
		for i, b := range bands {
			assert.LessOrEqual(t, b.lo, b.hi)
			assert.LessOrEqual(t, b.hi, byte(opcodeMask))
			if i > 0 {
				assert.Greater(t, b.lo, bands[i-1].hi, "band %d overlaps", i)
			}
		}
	}
}

func TestKindStrings(t *testing.T) {
	for k := Kind(0); k < numKinds; k++ {
		assert.NotEmpty(t, k.String())
	}
	assert.Equal(t, "Kind(200)", Kind(200).String())
	assert.Equal(t, "bridge (y=7)(6)", Object{BridgeY7, 6}.String())
	assert.Equal(t, "spring", Object{Spring, 0}.String())
}

func TestDecode(t *testing.T) {
	entries, err := Decode([]byte{0x10, 0x00, 0x20, 0x10, 0xfd, 0x00})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, Entry{Object: Object{QuestionBlockPowerup, 0}, X: 1, Y: 0, Offset: 0}, entries[0])
	assert.Equal(t, Entry{Object: Object{IslandOrCannon, 1}, X: 2, Y: 0, Offset: 2}, entries[1])
}

func TestDecodeRowAndPage(t *testing.T) {
	entries, err := Decode([]byte{
		0x4c, 0x25, // bridge at row 0xc
		0x37, 0xa2, // new page, horizontal bricks
		0x0d, 0x05, // page skip to 5
		0xe3, 0x80, // new page, question block
		0xfd,
	})
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, BridgeY7, entries[0].Kind)
	assert.Equal(t, 6, entries[0].Param)
	assert.Equal(t, byte(4), entries[0].X)
	assert.Equal(t, byte(0xc), entries[0].Y)
	assert.Equal(t, 0, entries[0].Page)

	assert.True(t, entries[1].NewPage)
	assert.Equal(t, Object{HorizontalBricks, 3}, entries[1].Object)
	assert.Equal(t, 1, entries[1].Page)
	assert.Equal(t, 19, entries[1].Column())

	assert.Equal(t, Object{PageSkip, 5}, entries[2].Object)
	assert.Equal(t, 5, entries[2].Page)

	assert.Equal(t, 6, entries[3].Page)
	assert.Equal(t, 6*PageWidth+0xe, entries[3].Column())
	assert.Equal(t, 6, entries[3].Offset)
}

func TestDecodeEmpty(t *testing.T) {
	entries, err := Decode([]byte{0xfd, 0x10, 0x00})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecodeTruncated(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		offset int
	}{
		{"empty", nil, 0},
		{"missing sentinel", []byte{0x10, 0x00, 0x20, 0x10}, 4},
		{"odd length", []byte{0x10, 0x00, 0x20}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Decode(tt.data)
			assert.Nil(t, entries)
			require.True(t, errors.Is(err, stream.ErrTruncated))

			var oe *stream.OffsetError
			require.True(t, errors.As(err, &oe))
			assert.Equal(t, tt.offset, oe.Offset)
		})
	}
}

func TestDecodeIdempotent(t *testing.T) {
	b := []byte{0x27, 0x21, 0x73, 0x0c, 0x19, 0xc5, 0xfd}
	e1, err := Decode(b)
	require.NoError(t, err)
	e2, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, e1, e2)
}

func TestUnclassified(t *testing.T) {
	entries, err := Decode([]byte{0x10, 0x0c, 0x20, 0x01, 0x3d, 0x7f, 0xfd})
	require.NoError(t, err)

	u := Unclassified(entries)
	require.Len(t, u, 2)
	assert.Equal(t, 0, u[0].Offset)
	assert.Equal(t, 4, u[1].Offset)
}

func TestTerrainAndBackdrop(t *testing.T) {
	s, g, ok := Classify(rowArea, 0x21).Terrain()
	require.True(t, ok)
	assert.Equal(t, header.SceneryMountains, s)
	assert.Equal(t, header.GroundBasicFloor, g)

	b, ok := Classify(rowArea, 0x45).Backdrop()
	require.True(t, ok)
	assert.Equal(t, header.BackgroundDayTimeSnow, b)

	_, _, ok = Classify(0, 0x21).Terrain()
	assert.False(t, ok)
	_, ok = Classify(0, 0x21).Backdrop()
	assert.False(t, ok)
}

func TestSize(t *testing.T) {
	entries, err := Decode([]byte{0x10, 0x00, 0x20, 0x10, 0xfd, 0x00})
	require.NoError(t, err)
	assert.Equal(t, 5, Size(entries))
	assert.Equal(t, 1, Size(nil))
}
