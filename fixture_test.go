package smblevels

import (
	"context"
	"os"
	"testing"

	"github.com/bodgit/smblevels/manifest"
	"github.com/bodgit/smblevels/rom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Object counts for every level of the retail cartridge
var cartridgeObjects = map[string]int{
	"1-1": 49, "1-2": 80, "1-3": 41, "1-4": 47,
	"2-1": 49, "2-2": 60, "2-3": 65, "2-4": 56,
	"3-1": 57, "3-2": 24, "3-3": 48, "3-4": 53,
	"4-1": 40, "4-2": 79, "4-3": 50, "4-4": 62,
	"5-1": 30, "5-2": 56, "5-3": 41, "5-4": 56,
	"6-1": 56, "6-2": 70, "6-3": 49, "6-4": 47,
	"7-1": 43, "7-2": 60, "7-3": 65, "7-4": 68,
	"8-1": 72, "8-2": 59, "8-3": 51, "8-4": 55,
}

func TestCartridge(t *testing.T) {
	romFile, manifestFile := os.Getenv("SMB_ROM"), os.Getenv("SMB_MANIFEST")
	if romFile == "" || manifestFile == "" {
		t.Skip("SMB_ROM and SMB_MANIFEST not set")
	}

	img, err := rom.LoadFile(romFile)
	require.NoError(t, err)

	m, err := manifest.Load(manifestFile)
	require.NoError(t, err)

	x := New(discard())
	results, err := x.DecodeAll(context.Background(), img, m)
	require.NoError(t, err)

	assert.Empty(t, x.Validate(m, results))

	for i, l := range m.Levels {
		want, ok := cartridgeObjects[l.Name]
		if !ok {
			continue
		}
		assert.Len(t, results[i].Objects, want, "level %s", l.Name)
	}
}
