package smblevels

import (
	"errors"
	"fmt"

	"github.com/bodgit/smblevels/enemy"
	"github.com/bodgit/smblevels/header"
	"github.com/bodgit/smblevels/object"
	"github.com/bodgit/smblevels/stream"
)

// Region names one of the three byte ranges a level is decoded from
type Region int

const (
	RegionHeader Region = iota
	RegionObjects
	RegionEnemies
)

var regionNames = [...]string{
	RegionHeader:  "header",
	RegionObjects: "objects",
	RegionEnemies: "enemies",
}

func (r Region) String() string {
	if r < 0 || int(r) >= len(regionNames) {
		return fmt.Sprintf("Region(%d)", int(r))
	}
	return regionNames[r]
}

var (
	// ErrMalformedHeader is returned when the header region is too short
	ErrMalformedHeader = header.ErrMalformed
	// ErrTruncatedStream is returned when object or enemy data ends
	// before its sentinel
	ErrTruncatedStream = stream.ErrTruncated
)

// DecodeError reports which region of a level failed to decode and where
type DecodeError struct {
	Region Region
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: offset %d: %v", e.Region, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func regionError(region Region, offset int, err error) error {
	de := &DecodeError{Region: region, Offset: offset, Err: err}

	var oe *stream.OffsetError
	if errors.As(err, &oe) {
		de.Offset = oe.Offset
		de.Err = oe.Err
	}

	return de
}

// Level is a fully decoded level
type Level struct {
	Header  header.Header
	Objects []object.Entry
	Enemies []enemy.Entry
}

type assembleOptions struct {
	enemySentinel byte
}

// AssembleOption configures Assemble
type AssembleOption func(*assembleOptions)

// WithEnemySentinel sets the byte ending enemy data, cartridge images use
// 0xff
func WithEnemySentinel(sentinel byte) AssembleOption {
	return func(o *assembleOptions) {
		o.enemySentinel = sentinel
	}
}

// Assemble decodes a level from its three regions. On failure the returned
// error is a *DecodeError and no Level is returned.
func Assemble(headerBytes, objectBytes, enemyBytes []byte, options ...AssembleOption) (*Level, error) {
	o := assembleOptions{
		enemySentinel: stream.Sentinel,
	}
	for _, option := range options {
		option(&o)
	}

	h, err := header.Parse(headerBytes)
	if err != nil {
		return nil, regionError(RegionHeader, len(headerBytes), err)
	}

	objects, err := object.Decode(objectBytes)
	if err != nil {
		return nil, regionError(RegionObjects, 0, err)
	}

	enemies, err := enemy.Decode(enemyBytes, stream.WithSentinel(o.enemySentinel))
	if err != nil {
		return nil, regionError(RegionEnemies, 0, err)
	}

	return &Level{
		Header:  h,
		Objects: objects,
		Enemies: enemies,
	}, nil
}

// Coverage lists the entries of a level with no known meaning
type Coverage struct {
	Objects []object.Entry
	Enemies []enemy.Entry
}

// Len returns the total number of unclassified entries
func (c Coverage) Len() int {
	return len(c.Objects) + len(c.Enemies)
}

// Unclassified returns the object and enemy entries that decoded to an
// invalid kind
func (l *Level) Unclassified() Coverage {
	return Coverage{
		Objects: object.Unclassified(l.Objects),
		Enemies: enemy.Unclassified(l.Enemies),
	}
}
