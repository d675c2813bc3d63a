package textenc

import (
	"testing"
	"unicode/utf16"
)

// encodeUTF16 builds UTF-16 bytes for s with the given BOM and byte order.
func encodeUTF16(s string, littleEndian bool) []byte {
	units := utf16.Encode([]rune(s))
	var out []byte
	if littleEndian {
		out = append(out, 0xff, 0xfe)
	} else {
		out = append(out, 0xfe, 0xff)
	}
	for _, u := range units {
		if littleEndian {
			out = append(out, byte(u), byte(u>>8))
		} else {
			out = append(out, byte(u>>8), byte(u))
		}
	}
	return out
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"plain UTF-8", []byte("User-agent: *\n"), "User-agent: *\n"},
		{"UTF-8 BOM stripped", append([]byte{0xef, 0xbb, 0xbf}, []byte("User-agent: *\n")...), "User-agent: *\n"},
		{"UTF-16 LE", encodeUTF16("User-agent: *\n", true), "User-agent: *\n"},
		{"UTF-16 BE", encodeUTF16("User-agent: *\n", false), "User-agent: *\n"},
		{"empty input", nil, ""},
		{"invalid UTF-8 passes through", []byte{0x44, 0xff, 0x45}, string([]byte{0x44, 0xff, 0x45})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			if err != nil {
				t.Fatalf("Decode() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode_NonASCIIContent(t *testing.T) {
	got, err := Decode(encodeUTF16("Disallow: /café\n", true))
	if err != nil {
		t.Fatalf("Decode() returned error: %v", err)
	}
	if got != "Disallow: /café\n" {
		t.Errorf("Decode() = %q, want %q", got, "Disallow: /café\n")
	}
}
