package bmp

import (
	"encoding/binary"
	"testing"
)

func TestLittleEndianUint(t *testing.T) {
	for _, tc := range []struct {
		in   []byte
		want uint64
	}{
		{in: nil, want: 0},
		{in: []byte{7}, want: 7},
		{in: []byte{0x00, 0x01}, want: 256},
		{in: []byte{0x36, 0x00, 0x00, 0x00}, want: 54},
		{in: []byte{0x78, 0x56, 0x34, 0x12}, want: 0x12345678},
		{in: []byte{0xff, 0xff, 0xff, 0xff}, want: 0xffffffff},
	} {
		if got := LittleEndianUint(tc.in); got != tc.want {
			t.Errorf("LittleEndianUint(% x) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLittleEndianUint_MatchesEncodingBinary(t *testing.T) {
	b := make([]byte, 4)
	for _, v := range []uint32{0, 1, 640, 480, 1 << 24, 0xdeadbeef} {
		binary.LittleEndian.PutUint32(b, v)
		if got := LittleEndianUint(b); got != uint64(v) {
			t.Errorf("LittleEndianUint(% x) = %d, want %d", b, got, v)
		}
		putUint32(b, v)
		if got := binary.LittleEndian.Uint32(b); got != v {
			t.Errorf("putUint32(%d) wrote % x", v, b)
		}
	}
}
