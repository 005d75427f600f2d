package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  Header
	}{
		{
			name:  "mixed fields",
			bytes: []byte{0x63, 0x96}, // 01 100 011, 10 01 0110
			want: Header{
				Time:       Time400,
				Start:      StartFallFromSkyAlt,
				Background: BackgroundOverwater,
				Platform:   PlatformBulletBills,
				Scenery:    SceneryClouds,
				Ground:     GroundFiveLayerFloorAndCeiling,
			},
		},
		{
			name:  "overworld",
			bytes: []byte{0x50, 0x21},
			want: Header{
				Time:       Time400,
				Start:      StartOnGround,
				Background: BackgroundDayTime,
				Platform:   PlatformGreenAndTrees,
				Scenery:    SceneryMountains,
				Ground:     GroundBasicFloor,
			},
		},
		{
			name:  "all zero",
			bytes: []byte{0x00, 0x00},
			want:  Header{},
		},
		{
			name:  "all set",
			bytes: []byte{0xff, 0xff},
			want: Header{
				Time:       Time200,
				Start:      StartAutowalkAlt,
				Background: BackgroundBlackAndWhite,
				Platform:   PlatformClouds,
				Scenery:    SceneryFence,
				Ground:     GroundAll,
				Autowalk:   true,
			},
		},
		{
			name:  "trailing bytes ignored",
			bytes: []byte{0xb1, 0x0a, 0xfd},
			want: Header{
				Time:       Time300,
				Start:      StartAutowalk,
				Background: BackgroundUnderwater,
				Platform:   PlatformGreenAndTrees,
				Scenery:    SceneryNothing,
				Ground:     GroundCeiling,
				Autowalk:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Parse(tt.bytes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, b := range [][]byte{nil, {}, {0x50}} {
		_, err := Parse(b)
		assert.ErrorIs(t, err, ErrMalformed)
	}
}

func TestParseAllInputs(t *testing.T) {
	for i := 0; i < 1<<16; i++ {
		b := []byte{byte(i >> 8), byte(i)}

		h, err := Parse(b)
		require.NoError(t, err)

		assert.Equal(t, (b[0]&0xc0)>>6, h.Time.Bits())
		assert.Equal(t, (b[0]&0x38)>>3, h.Start.Bits())
		assert.Equal(t, b[0]&0x07, h.Background.Bits())
		assert.Equal(t, (b[1]&0xc0)>>6, h.Platform.Bits())
		assert.Equal(t, (b[1]&0x30)>>4, h.Scenery.Bits())
		assert.Equal(t, b[1]&0x0f, h.Ground.Bits())
		assert.Equal(t, h.Start.Autowalk(), h.Autowalk)

		for _, s := range []string{h.Time.String(), h.Start.String(), h.Background.String(), h.Platform.String(), h.Scenery.String(), h.Ground.String()} {
			assert.NotContains(t, s, "unknown")
		}

		if t.Failed() {
			t.Fatalf("input %#04x", i)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	b := []byte{0x91, 0x3c}
	h1, err := Parse(b)
	require.NoError(t, err)
	h2, err := Parse(b)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Equal(t, []byte{0x91, 0x3c}, b)
}

func TestFieldValues(t *testing.T) {
	assert.Equal(t, 0, TimeNotSet.Seconds())
	assert.Equal(t, 400, Time400.Seconds())
	assert.Equal(t, 300, Time300.Seconds())
	assert.Equal(t, 200, Time200.Seconds())

	assert.Equal(t, byte(0xb0), StartOnGround.PlayerY())
	assert.Equal(t, byte(0x50), StartHalfwayOffGround.PlayerY())
	assert.False(t, StartOnGround.Autowalk())
	assert.True(t, StartAutowalk.Autowalk())
}

func TestFieldValuesUnknown(t *testing.T) {
	// Values outside the field width behave like their String, not like
	// the masked value
	assert.Equal(t, 0, Time(5).Seconds())
	assert.Equal(t, "unknown Time(0x5)", Time(5).String())

	assert.Equal(t, byte(0), Start(9).PlayerY())
	assert.False(t, Start(0x0e).Autowalk())
	assert.Equal(t, "unknown Start(0xe)", Start(0x0e).String())
}

func TestFieldStrings(t *testing.T) {
	assert.Equal(t, "400", Time400.String())
	assert.Equal(t, "overwater", BackgroundOverwater.String())
	assert.Equal(t, "bullet bills", PlatformBulletBills.String())
	assert.Equal(t, "unknown Ground(0x10)", Ground(0x10).String())
	assert.Equal(t, "unknown Time(0x4)", Time(4).String())
}
