package preview

import (
	"testing"

	"github.com/bodgit/smblevels"
	"github.com/bodgit/smblevels/enemy"
	"github.com/bodgit/smblevels/header"
	"github.com/bodgit/smblevels/object"
	"github.com/stretchr/testify/assert"
)

func basicLevel() *smblevels.Level {
	return &smblevels.Level{
		Header: header.Header{
			Background: header.BackgroundOverwater,
			Ground:     header.GroundBasicFloor,
		},
	}
}

func TestRenderSize(t *testing.T) {
	l := basicLevel()

	m := Render(l)
	assert.Equal(t, object.PageWidth*defaultScale, m.Bounds().Dx())
	assert.Equal(t, rows*defaultScale, m.Bounds().Dy())

	l.Enemies = []enemy.Entry{{Enemy: enemy.Enemy{Kind: enemy.Goomba}, X: 3, Y: 0xb, Page: 2}}
	m = Render(l, WithScale(1))
	assert.Equal(t, 3*object.PageWidth, m.Bounds().Dx())
	assert.Equal(t, rows, m.Bounds().Dy())
	assert.LessOrEqual(t, len(m.Palette), maxColors)
}

func TestRenderTerrain(t *testing.T) {
	l := basicLevel()
	l.Objects = []object.Entry{
		{Object: object.Object{Kind: object.Hole, Param: 2}, X: 4, Y: 0xc},
	}

	m := Render(l, WithScale(1))

	skyIndex := m.ColorIndexAt(0, 5)
	assert.NotEqual(t, skyIndex, m.ColorIndexAt(0, 12), "floor")
	assert.Equal(t, m.ColorIndexAt(0, 12), m.ColorIndexAt(0, 11))
	assert.Equal(t, skyIndex, m.ColorIndexAt(0, 10))

	assert.Equal(t, skyIndex, m.ColorIndexAt(4, 12), "hole")
	assert.Equal(t, skyIndex, m.ColorIndexAt(5, 12), "hole")
	assert.Equal(t, m.ColorIndexAt(0, 12), m.ColorIndexAt(6, 12))
}

func TestRenderTerrainChange(t *testing.T) {
	l := basicLevel()
	l.Objects = []object.Entry{
		{Object: object.Object{Kind: object.TerrainChange, Param: int(header.GroundAll)}, X: 8, Y: 0xe},
	}

	m := Render(l, WithScale(1))

	floor := m.ColorIndexAt(0, 12)
	assert.NotEqual(t, floor, m.ColorIndexAt(7, 0))
	assert.Equal(t, floor, m.ColorIndexAt(8, 0))
	assert.Equal(t, floor, m.ColorIndexAt(15, 6))
}

func TestRenderObjectsAndEnemies(t *testing.T) {
	l := basicLevel()
	l.Objects = []object.Entry{
		{Object: object.Object{Kind: object.HorizontalBricks, Param: 3}, X: 2, Y: 7},
	}
	l.Enemies = []enemy.Entry{
		{Enemy: enemy.Enemy{Kind: enemy.Goomba}, X: 10, Y: 0xa},
		{Enemy: enemy.Enemy{Kind: enemy.PageSkip}, X: 0, Y: 0xf},
	}

	m := Render(l, WithScale(1))

	skyIndex := m.ColorIndexAt(0, 5)
	bricks := m.ColorIndexAt(2, 7)
	assert.NotEqual(t, skyIndex, bricks)
	assert.Equal(t, bricks, m.ColorIndexAt(4, 7))
	assert.Equal(t, skyIndex, m.ColorIndexAt(5, 7))

	goomba := m.ColorIndexAt(10, 0xa)
	assert.NotEqual(t, skyIndex, goomba)
	assert.NotEqual(t, bricks, goomba)
}
