// Adjusts image dimensions, orientation, or structure.
package adjustments

import (
	"errors"
	"fmt"

	"github.com/anas-shakeel/bmp-editor/internal/bmp"
	"github.com/anas-shakeel/bmp-editor/internal/utils"
)

var (
	ErrOddDimensions = errors.New("invalid dimensions: split needs an even, non-zero width and height")
	ErrRaggedMatrix  = errors.New("invalid matrix: rows have different lengths")
)

// Splits the image into four half-size copies of itself (arranged 2x2).
//
// Every 2x2 block of the source is averaged (per channel, rounded down) into
// one pixel of a quarter-size image, which is then tiled into all four
// quadrants of a new matrix of the original size. The source is not modified.
func Split(pixels [][]bmp.Pixel) ([][]bmp.Pixel, error) {
	height := len(pixels)
	if height == 0 {
		return nil, fmt.Errorf("%w: got 0x0", ErrOddDimensions)
	}
	width := len(pixels[0])
	for row := range pixels {
		if len(pixels[row]) != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, row 0 has %d", ErrRaggedMatrix, row, len(pixels[row]), width)
		}
	}
	if width == 0 || width%2 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrOddDimensions, width, height)
	}

	// Shrink first: the quarter is complete before any output pixel is written
	quarter := Shrink(pixels)

	halfW, halfH := width/2, height/2
	split := make([][]bmp.Pixel, height)
	for row := 0; row < height; row++ {
		split[row] = make([]bmp.Pixel, width)
		for col := 0; col < width; col++ {
			split[row][col] = quarter[row%halfH][col%halfW]
		}
	}

	return split, nil
}

// Returns a half-size image where every pixel is the average of a 2x2 block.
// Width and height of pixels must be even.
func Shrink(pixels [][]bmp.Pixel) [][]bmp.Pixel {
	shrunk := make([][]bmp.Pixel, len(pixels)/2)
	for row := range shrunk {
		shrunk[row] = make([]bmp.Pixel, len(pixels[0])/2)
		for col := range shrunk[row] {
			// The 2x2 block (Top-Left, Top-Right, Bottom-Left, Bottom-Right)
			tl := pixels[2*row][2*col]
			tr := pixels[2*row][2*col+1]
			bl := pixels[2*row+1][2*col]
			br := pixels[2*row+1][2*col+1]

			shrunk[row][col] = bmp.Pixel{
				R: byte(utils.Average(int(tl.R), int(tr.R), int(bl.R), int(br.R))),
				G: byte(utils.Average(int(tl.G), int(tr.G), int(bl.G), int(br.G))),
				B: byte(utils.Average(int(tl.B), int(tr.B), int(bl.B), int(br.B))),
			}
		}
	}
	return shrunk
}
