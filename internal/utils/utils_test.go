package utils

import (
	"path/filepath"
	"testing"
)

func TestAverage(t *testing.T) {
	for _, tc := range []struct {
		n    []int
		want int
	}{
		{n: []int{255, 0, 0, 255}, want: 127},
		{n: []int{1, 1, 1, 2}, want: 1},
		{n: []int{3, 3, 3, 3}, want: 3},
		{n: []int{0}, want: 0},
	} {
		if got := Average(tc.n...); got != tc.want {
			t.Errorf("Average(%v) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestOutputName(t *testing.T) {
	in := filepath.Join("images", "photo.bmp")

	if got, want := OutputName("grayscale", in, ""), filepath.Join("images", "grayscale_photo.bmp"); got != want {
		t.Errorf("same dir: got %q, want %q", got, want)
	}
	if got, want := OutputName("split", in, "out"), filepath.Join("out", "split_photo.bmp"); got != want {
		t.Errorf("output dir: got %q, want %q", got, want)
	}
}

func TestColoredBlock(t *testing.T) {
	if got, want := ColoredBlock("  ", 1, 2, 3), "\033[48;2;1;2;3m  \033[0m"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
