package rom

import (
	"fmt"
	"hash/crc32"
)

// CRC returns the CRC-32 of the PRG and CHR ROM, ignoring the iNES header
// and any trainer so that re-headered dumps match
func (img *Image) CRC() string {
	h := crc32.NewIEEE()
	h.Write(img.PRG)
	h.Write(img.CHR)

	return fmt.Sprintf("%.*X", crc32.Size<<1, h.Sum(nil))
}
