// Filters perform color manipulation and per-pixel operations
package filters

import (
	"github.com/anas-shakeel/bmp-editor/internal/bmp"
)

// Luma weights in hundredths (0.3, 0.59, 0.11)
const (
	redWeight   = 30
	greenWeight = 59
	blueWeight  = 11
)

// Swaps the red and blue channel of every pixel in-place
func SwapRedBlue(pixels [][]bmp.Pixel) [][]bmp.Pixel {
	for row := range pixels {
		for col := range pixels[row] {
			p := &pixels[row][col]
			p.R, p.B = p.B, p.R
		}
	}
	return pixels
}

// Returns floor(0.3*R + 0.59*G + 0.11*B).
//
// Integer math keeps the floor exact: in float64, 0.3+0.59+0.11 of a gray
// level such as 1 sums to 0.9999999999999999 and would truncate to 0.
func Luma(p bmp.Pixel) byte {
	return byte((redWeight*int(p.R) + greenWeight*int(p.G) + blueWeight*int(p.B)) / 100)
}

// Converts the pixels to Black-and-White in-place (every channel set to the luma)
func Grayscale(pixels [][]bmp.Pixel) [][]bmp.Pixel {
	for row := range pixels {
		for col := range pixels[row] {
			L := Luma(pixels[row][col])

			pixels[row][col].R = L
			pixels[row][col].G = L
			pixels[row][col].B = L
		}
	}
	return pixels
}
