/*
Package rom implements a reader for iNES cartridge images.

The image is a 16 byte header followed by an optional 512 byte trainer, the
PRG ROM in 16 KB units and the CHR ROM in 8 KB units. Level data lives in PRG
ROM and is addressed the way the CPU sees it; only mapper 0 (NROM) images
are supported, where PRG ROM is mapped at $8000-$FFFF and a single 16 KB bank
is mirrored into both halves.
*/
package rom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	magic       = "NES\x1a"
	headerSize  = 0x10
	trainerSize = 0x200
	prgUnit     = 0x4000
	chrUnit     = 0x2000

	prgBase = 0x8000

	flagTrainer = 0x04
)

var (
	// ErrBadMagic is returned for files without the iNES signature
	ErrBadMagic = errors.New("rom: invalid iNES signature")
	// ErrUnsupportedMapper is returned for anything other than NROM
	ErrUnsupportedMapper = errors.New("rom: unsupported mapper")
	// ErrOutOfRange is returned for addresses outside PRG ROM
	ErrOutOfRange = errors.New("rom: address out of range")
)

// Image is a loaded cartridge image
type Image struct {
	Mapper uint8
	PRG    []byte
	CHR    []byte
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Load reads an iNES image from r
func Load(r io.Reader) (*Image, error) {
	var h [headerSize]byte
	if err := readFull(r, h[:]); err != nil {
		return nil, fmt.Errorf("rom: reading header: %w", err)
	}

	if !bytes.Equal(h[:len(magic)], []byte(magic)) {
		return nil, ErrBadMagic
	}

	img := &Image{
		Mapper: h[6]>>4 | h[7]&0xf0,
	}
	if img.Mapper != 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, img.Mapper)
	}
	if h[4] == 0 {
		return nil, errors.New("rom: no PRG ROM")
	}

	if h[6]&flagTrainer != 0 {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, fmt.Errorf("rom: skipping trainer: %w", err)
		}
	}

	img.PRG = make([]byte, int(h[4])*prgUnit)
	if err := readFull(r, img.PRG); err != nil {
		return nil, fmt.Errorf("rom: reading PRG ROM: %w", err)
	}

	img.CHR = make([]byte, int(h[5])*chrUnit)
	if err := readFull(r, img.CHR); err != nil {
		return nil, fmt.Errorf("rom: reading CHR ROM: %w", err)
	}

	return img, nil
}

// LoadFile reads an iNES image from the named file
func LoadFile(file string) (*Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// CPU returns PRG ROM from the CPU address addr through to the end of PRG
// ROM. A single 16 KB bank answers at both $8000 and $C000. The slice
// aliases the image.
func (img *Image) CPU(addr uint16) ([]byte, error) {
	if addr < prgBase || len(img.PRG) == 0 {
		return nil, fmt.Errorf("%w: $%04X", ErrOutOfRange, addr)
	}

	offset := int(addr-prgBase) % len(img.PRG)

	return img.PRG[offset:], nil
}
