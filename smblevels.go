/*
Package smblevels is a library for decoding the level data of the Super
Mario Bros. cartridge into typed headers, object streams and enemy streams.

The decoders themselves live in the header, object and enemy packages and
only need the raw bytes of each region; Assemble composes them into a
Level. Extractor adds the cartridge side, pulling regions out of an iNES
image as described by a manifest.
*/
package smblevels

import (
	"errors"
	"fmt"
	"log"

	"github.com/bodgit/smblevels/manifest"
	"github.com/bodgit/smblevels/rom"
	"github.com/bodgit/smblevels/stream"
)

// Extractor decodes levels from cartridge images
type Extractor struct {
	logger *log.Logger
}

// New returns an Extractor logging to logger
func New(logger *log.Logger) *Extractor {
	return &Extractor{
		logger: logger,
	}
}

// ErrCRCMismatch is returned when a manifest is used with the wrong image
var ErrCRCMismatch = errors.New("image does not match manifest")

// Check verifies m was written for img
func (x *Extractor) Check(img *rom.Image, m *manifest.Manifest) error {
	if m.CRC == "" {
		return nil
	}
	if crc := img.CRC(); crc != m.CRC {
		return fmt.Errorf("%w: image CRC %s, manifest CRC %s", ErrCRCMismatch, crc, m.CRC)
	}
	return nil
}

func sentinel(m *manifest.Manifest) byte {
	if m.EnemySentinel != nil {
		return *m.EnemySentinel
	}
	return stream.Sentinel
}

func regions(img *rom.Image, l manifest.Level) (h, o, e []byte, err error) {
	if h, err = img.CPU(l.Header); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: header: %w", l.Name, err)
	}
	if o, err = img.CPU(l.ObjectAddr()); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: objects: %w", l.Name, err)
	}
	if e, err = img.CPU(l.Enemies); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: enemies: %w", l.Name, err)
	}
	return h, o, e, nil
}

// Decode decodes a single level from img
func (x *Extractor) Decode(img *rom.Image, m *manifest.Manifest, l manifest.Level) (*Level, error) {
	h, o, e, err := regions(img, l)
	if err != nil {
		return nil, err
	}

	level, err := Assemble(h, o, e, WithEnemySentinel(sentinel(m)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}

	x.logger.Printf("Decoded %q: %d objects, %d enemies\n", l.Name, len(level.Objects), len(level.Enemies))
	if c := level.Unclassified(); c.Len() > 0 {
		for _, u := range c.Objects {
			x.logger.Printf("Unclassified object in %q at offset %d: row %#x\n", l.Name, u.Offset, u.Y)
		}
		for _, u := range c.Enemies {
			x.logger.Printf("Unclassified enemy in %q at offset %d: row %#x\n", l.Name, u.Offset, u.Y)
		}
	}

	return level, nil
}

// Mismatch describes a level whose entry counts differ from the manifest
type Mismatch struct {
	Name     string
	Region   Region
	Found    int
	Expected int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: wrong %s count: found %d expected %d", m.Name, m.Region, m.Found, m.Expected)
}

// Validate compares decoded levels against the counts recorded in the
// manifest. results must be in manifest order, as returned by DecodeAll.
func (x *Extractor) Validate(m *manifest.Manifest, results []*Level) []Mismatch {
	var out []Mismatch
	for i, l := range m.Levels {
		if i >= len(results) || results[i] == nil {
			continue
		}
		if want := l.Expect.Objects; want != nil && *want != len(results[i].Objects) {
			out = append(out, Mismatch{l.Name, RegionObjects, len(results[i].Objects), *want})
		}
		if want := l.Expect.Enemies; want != nil && *want != len(results[i].Enemies) {
			out = append(out, Mismatch{l.Name, RegionEnemies, len(results[i].Enemies), *want})
		}
	}
	return out
}

// Raw returns the bytes level was decoded from
func (x *Extractor) Raw(img *rom.Image, l manifest.Level, level *Level) (Raw, error) {
	h, o, e, err := regions(img, l)
	if err != nil {
		return Raw{}, err
	}
	return RawLevel(level, h, o, e), nil
}
