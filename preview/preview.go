/*
Package preview renders a decoded level as a small paletted map.

Each metatile of the level becomes a square block of pixels. The backdrop
and terrain follow the header and any change commands in the object data,
objects are drawn over the terrain and enemies are marked on top. The
result is quantized to at most 16 colours.
*/
package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/smblevels"
	"github.com/bodgit/smblevels/enemy"
	"github.com/bodgit/smblevels/header"
	"github.com/bodgit/smblevels/object"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/colornames"
)

const (
	rows         = 13
	defaultScale = 4
	maxColors    = 16
	groundRows   = 0x1fff
)

type options struct {
	scale int
}

// Option configures Render
type Option func(*options)

// WithScale sets the size in pixels of each metatile
func WithScale(scale int) Option {
	return func(o *options) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// terrain holds the solid rows for each ground value, bit n is row n
var terrain = [...]uint16{
	header.GroundNothing:                            0x0000,
	header.GroundBasicFloor:                         0x1800,
	header.GroundBasicFloorAndCeiling:               0x1801,
	header.GroundBasicFloorAndThreeLayerCeiling:     0x1807,
	header.GroundBasicFloorAndFourLayerCeiling:      0x180f,
	header.GroundBasicFloorAndEightLayerCeiling:     0x18ff,
	header.GroundFiveLayerFloorAndCeiling:           0x1f01,
	header.GroundFiveLayerFloorAndThreeLayerCeiling: 0x1f07,
	header.GroundFiveLayerFloorAndFourLayerCeiling:  0x1f0f,
	header.GroundSixLayerFloorAndCeiling:            0x1f81,
	header.GroundCeiling:                            0x0001,
	header.GroundSixLayerFloorAndFourLayerCeiling:   0x1f8f,
	header.GroundNineLayerFloorAndCeiling:           0x1ff1,
	header.GroundFloorGapFiveLayerBricksGapCeiling:  0x18f9,
	header.GroundFloorGapFourLayerBricksGapCeiling:  0x18f1,
	header.GroundAll:                                groundRows,
}

func sky(b header.Background) color.Color {
	switch b {
	case header.BackgroundUnderwater:
		return colornames.Royalblue
	case header.BackgroundCastleWall, header.BackgroundNightTime, header.BackgroundNightTimeSnow:
		return colornames.Black
	case header.BackgroundBlackAndWhite:
		return colornames.Dimgray
	}
	return colornames.Lightskyblue
}

func objectColor(k object.Kind) color.Color {
	switch k {
	case object.QuestionBlockPowerup, object.QuestionBlockCoin, object.QuestionBlocksY3, object.QuestionBlocksY7:
		return colornames.Gold
	case object.HiddenBlockCoin, object.HiddenBlockExtraLife:
		return nil
	case object.BrickPowerup, object.BrickVine, object.BrickStar, object.BrickMultiCoin, object.BrickExtraLife, object.HorizontalBricks, object.VerticalBricks:
		return colornames.Chocolate
	case object.UsedBlock, object.HorizontalBlocks, object.VerticalBlocks, object.Staircase:
		return colornames.Peru
	case object.HorizontalCoins:
		return colornames.Yellow
	case object.SidewaysPipe, object.PipeNoEntry, object.PipeEntry, object.ReverseLPipe, object.LongReverseLPipe:
		return colornames.Green
	case object.IslandOrCannon:
		return colornames.Forestgreen
	case object.BridgeY7, object.BridgeY8, object.BridgeY10, object.CastleBridge:
		return colornames.Sienna
	case object.Castle:
		return colornames.Gray
	case object.FlagPole, object.FlagBalls:
		return colornames.White
	case object.Spring, object.LiftRope, object.PulleyRope, object.BalanceRope, object.AxeRope, object.CastleAxe:
		return colornames.Silver
	case object.Invalid:
		return colornames.Magenta
	}
	return nil
}

type canvas struct {
	m     *image.RGBA
	scale int
}

func (c *canvas) cell(col, row int, clr color.Color) {
	if clr == nil || row < 0 || row >= rows {
		return
	}
	r := image.Rect(col*c.scale, row*c.scale, (col+1)*c.scale, (row+1)*c.scale)
	draw.Draw(c.m, r, image.NewUniform(clr), image.Point{}, draw.Src)
}

func width(l *smblevels.Level) int {
	pages := 1
	for _, e := range l.Objects {
		if e.Page+1 > pages {
			pages = e.Page + 1
		}
	}
	for _, e := range l.Enemies {
		if e.Page+1 > pages {
			pages = e.Page + 1
		}
	}
	return pages * object.PageWidth
}

// Terrain and backdrop changes take effect from the column they are placed
// in, holes clear the floor for their width
func (c *canvas) background(l *smblevels.Level, cols int) {
	backdrop := make([]header.Background, cols)
	ground := make([]uint16, cols)
	holes := make([]bool, cols)

	b, g := l.Header.Background, l.Header.Ground
	changes := make(map[int]object.Object)
	for _, e := range l.Objects {
		switch e.Kind {
		case object.TerrainChange, object.BackdropChange:
			changes[e.Column()] = e.Object
		case object.Hole:
			for i := 0; i < e.Param; i++ {
				if col := e.Column() + i; col < cols {
					holes[col] = true
				}
			}
		}
	}

	for col := 0; col < cols; col++ {
		if o, ok := changes[col]; ok {
			if _, ng, ok := o.Terrain(); ok {
				g = ng
			}
			if nb, ok := o.Backdrop(); ok {
				b = nb
			}
		}
		backdrop[col], ground[col] = b, terrain[g&0x0f]
		if holes[col] {
			// Only the floor is removed
			ground[col] &= 0x00ff
		}
	}

	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			if ground[col]&(1<<row) != 0 {
				c.cell(col, row, colornames.Saddlebrown)
			} else {
				c.cell(col, row, sky(backdrop[col]))
			}
		}
	}
}

func fixedRow(k object.Kind) (int, bool) {
	switch k {
	case object.BridgeY7, object.QuestionBlocksY7:
		return 7, true
	case object.BridgeY8:
		return 8, true
	case object.BridgeY10:
		return 10, true
	case object.QuestionBlocksY3:
		return 3, true
	}
	return 0, false
}

func (c *canvas) object(e object.Entry) {
	clr := objectColor(e.Kind)
	row := int(e.Y)
	if r, ok := fixedRow(e.Kind); ok {
		row = r
	}

	switch e.Kind {
	case object.IslandOrCannon, object.HorizontalBricks, object.HorizontalBlocks, object.HorizontalCoins,
		object.BridgeY7, object.BridgeY8, object.BridgeY10, object.QuestionBlocksY3, object.QuestionBlocksY7:
		for i := 0; i < e.Param; i++ {
			c.cell(e.Column()+i, row, clr)
		}
	case object.VerticalBricks, object.VerticalBlocks, object.PipeNoEntry, object.PipeEntry:
		for i := 0; i < e.Param; i++ {
			c.cell(e.Column(), row+i, clr)
		}
	case object.Staircase:
		for i := 0; i < e.Param; i++ {
			for j := 0; j <= i && j < 8; j++ {
				c.cell(e.Column()+i, 11-j, clr)
			}
		}
	case object.FlagPole:
		for r := 1; r < 11; r++ {
			c.cell(e.Column(), r, clr)
		}
	default:
		if row < rows-1 {
			c.cell(e.Column(), row, clr)
		}
	}
}

func (c *canvas) enemy(e enemy.Entry) {
	switch e.Kind {
	case enemy.PageSkip, enemy.AreaChange:
		return
	case enemy.Invalid:
		c.cell(e.Column(), int(e.Y), colornames.Magenta)
		return
	}

	clr := color.Color(colornames.Red)
	if e.HardMode {
		clr = colornames.Orange
	}
	c.cell(e.Column(), int(e.Y), clr)
}

// Render draws l and returns the quantized image
func Render(l *smblevels.Level, opts ...Option) *image.Paletted {
	o := options{scale: defaultScale}
	for _, opt := range opts {
		opt(&o)
	}

	cols := width(l)
	c := &canvas{
		m:     image.NewRGBA(image.Rect(0, 0, cols*o.scale, rows*o.scale)),
		scale: o.scale,
	}

	c.background(l, cols)
	for _, e := range l.Objects {
		c.object(e)
	}
	for _, e := range l.Enemies {
		c.enemy(e)
	}

	b := c.m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxColors), c.m))
	draw.Draw(pm, b, c.m, b.Min, draw.Src)

	return pm
}
