// Package textenc decodes raw robots.txt bytes to UTF-8 text before
// validation.
package textenc

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16LE = []byte{0xff, 0xfe}
	bomUTF16BE = []byte{0xfe, 0xff}
)

// Decode converts raw file bytes to a UTF-8 string. A UTF-8 BOM is
// stripped; a UTF-16 BOM triggers transcoding. Bytes that are invalid
// UTF-8 are passed through untouched so the validator can report them
// as an encoding warning instead of this layer failing.
func Decode(raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return string(raw[len(bomUTF8):]), nil
	case bytes.HasPrefix(raw, bomUTF16LE), bytes.HasPrefix(raw, bomUTF16BE):
		// The decoder picks endianness from the BOM and drops it.
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, raw)
		if err != nil {
			return "", fmt.Errorf("decoding UTF-16 content: %w", err)
		}
		return string(out), nil
	default:
		return string(raw), nil
	}
}
