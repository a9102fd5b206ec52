package bmp

import (
	"image"
	"image/color"
)

// Returns the pixels as an opaque *image.RGBA (top row at y = 0)
func (b *BitmapImage) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y, row := range b.Pixels {
		for x, p := range row {
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// Converts any image into a top-down pixel matrix, dropping alpha.
func FromImage(img image.Image) [][]Pixel {
	bounds := img.Bounds()
	pixels := make([][]Pixel, bounds.Dy())
	for y := range pixels {
		pixels[y] = make([]Pixel, bounds.Dx())
		for x := range pixels[y] {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			pixels[y][x] = Pixel{R: c.R, G: c.G, B: c.B}
		}
	}
	return pixels
}
