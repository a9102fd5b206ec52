package adjustments

import (
	"errors"
	"reflect"
	"testing"

	"github.com/anas-shakeel/bmp-editor/internal/bmp"
)

func makeMatrix(w, h int) [][]bmp.Pixel {
	pixels := make([][]bmp.Pixel, h)
	for y := range pixels {
		pixels[y] = make([]bmp.Pixel, w)
		for x := range pixels[y] {
			pixels[y][x] = bmp.Pixel{R: uint8(x*37 + y*5), G: uint8(x*11 ^ y*29), B: uint8(200 - x*3 - y*7)}
		}
	}
	return pixels
}

func TestSplit_TwoByTwo(t *testing.T) {
	src := [][]bmp.Pixel{
		{{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}},
		{{R: 0, G: 0, B: 255}, {R: 255, G: 255, B: 255}},
	}

	got, err := Split(src)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	want := bmp.Pixel{R: 127, G: 127, B: 127}
	for y := range got {
		for x := range got[y] {
			if got[y][x] != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got[y][x], want)
			}
		}
	}
}

func TestSplit_TilesQuarter(t *testing.T) {
	for _, tc := range []struct {
		name string
		w, h int
	}{
		{name: "2x2", w: 2, h: 2},
		{name: "4x2", w: 4, h: 2},
		{name: "6x8", w: 6, h: 8},
		{name: "10x4", w: 10, h: 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := makeMatrix(tc.w, tc.h)
			before := makeMatrix(tc.w, tc.h)

			got, err := Split(src)
			if err != nil {
				t.Fatalf("Split: %v", err)
			}
			if !reflect.DeepEqual(src, before) {
				t.Fatalf("Split modified its input")
			}
			if len(got) != tc.h || len(got[0]) != tc.w {
				t.Fatalf("got %dx%d, want %dx%d", len(got[0]), len(got), tc.w, tc.h)
			}

			quarter := Shrink(src)
			halfW, halfH := tc.w/2, tc.h/2
			for y := range got {
				for x := range got[y] {
					if got[y][x] != quarter[y%halfH][x%halfW] {
						t.Fatalf("(%d,%d) = %v, want %v", x, y, got[y][x], quarter[y%halfH][x%halfW])
					}
				}
			}
			if got[0][0] != got[0][halfW] || got[0][0] != got[halfH][0] || got[0][0] != got[halfH][halfW] {
				t.Fatalf("quadrant corners differ")
			}
		})
	}
}

func TestShrink_FloorAverage(t *testing.T) {
	src := [][]bmp.Pixel{
		{{R: 1, G: 10, B: 0}, {R: 1, G: 10, B: 0}},
		{{R: 1, G: 10, B: 0}, {R: 2, G: 13, B: 3}},
	}
	got := Shrink(src)
	// (1+1+1+2)/4 = 1, (10+10+10+13)/4 = 10, 3/4 = 0
	if want := (bmp.Pixel{R: 1, G: 10, B: 0}); len(got) != 1 || got[0][0] != want {
		t.Fatalf("got %v, want [[%v]]", got, want)
	}
}

func TestSplit_Rejects(t *testing.T) {
	ragged := makeMatrix(4, 4)
	ragged[2] = ragged[2][:3]

	for _, tc := range []struct {
		name   string
		pixels [][]bmp.Pixel
		want   error
	}{
		{name: "empty", pixels: nil, want: ErrOddDimensions},
		{name: "zero_width", pixels: make([][]bmp.Pixel, 2), want: ErrOddDimensions},
		{name: "odd_width", pixels: makeMatrix(3, 2), want: ErrOddDimensions},
		{name: "odd_height", pixels: makeMatrix(2, 3), want: ErrOddDimensions},
		{name: "1x1", pixels: makeMatrix(1, 1), want: ErrOddDimensions},
		{name: "ragged", pixels: ragged, want: ErrRaggedMatrix},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Split(tc.pixels)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if got != nil {
				t.Fatalf("got a matrix on error")
			}
		})
	}
}
