/*
Package manifest reads the YAML file describing where each level's data
lives inside a cartridge image.

	crc: 1A2B3C4D
	enemy_sentinel: 0xff
	levels:
	  - name: "1-1"
	    header: 0xa6d9
	    enemies: 0x9f11
	    expect:
	      objects: 49

Addresses are CPU addresses. Object data directly follows the header unless
objects is given explicitly.
*/
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Expect holds optional known-good entry counts used for validation
type Expect struct {
	Objects *int `yaml:"objects,omitempty"`
	Enemies *int `yaml:"enemies,omitempty"`
}

// Level locates the three regions of a single level
type Level struct {
	Name    string  `yaml:"name"`
	Header  uint16  `yaml:"header"`
	Objects *uint16 `yaml:"objects,omitempty"`
	Enemies uint16  `yaml:"enemies"`
	Expect  Expect  `yaml:"expect,omitempty"`
}

// ObjectAddr returns the address of the object data
func (l Level) ObjectAddr() uint16 {
	if l.Objects != nil {
		return *l.Objects
	}
	return l.Header + 2
}

// Manifest is the parsed file
type Manifest struct {
	// CRC, if set, must match the image the manifest is used with
	CRC string `yaml:"crc,omitempty"`

	// EnemySentinel ends enemy data, defaulting to 0xfd
	EnemySentinel *uint8 `yaml:"enemy_sentinel,omitempty"`

	Levels []Level `yaml:"levels"`
}

// Decode parses a manifest from r and checks it for consistency
func Decode(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest: empty")
		}
		return nil, fmt.Errorf("manifest: %w", err)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Parse parses a manifest from b
func Parse(b []byte) (*Manifest, error) {
	return Decode(bytes.NewReader(b))
}

// Load parses the named manifest file
func Load(file string) (*Manifest, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

func (m *Manifest) validate() error {
	if len(m.Levels) == 0 {
		return errors.New("manifest: no levels")
	}

	seen := make(map[string]struct{}, len(m.Levels))
	for i, l := range m.Levels {
		if l.Name == "" {
			return fmt.Errorf("manifest: level %d has no name", i)
		}
		if _, ok := seen[l.Name]; ok {
			return fmt.Errorf("manifest: duplicate level %q", l.Name)
		}
		seen[l.Name] = struct{}{}
	}

	return nil
}

// Find returns the named level
func (m *Manifest) Find(name string) (Level, bool) {
	for _, l := range m.Levels {
		if l.Name == name {
			return l, true
		}
	}
	return Level{}, false
}
