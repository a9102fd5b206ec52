// bmp package implements a 24-bit uncompressed bitmap codec
package bmp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anas-shakeel/bmp-editor/internal/utils"
)

const bytesPerPixel = 3

var (
	ErrTruncated         = errors.New("bmp: buffer too short for declared dimensions")
	ErrDimensionMismatch = errors.New("bmp: pixel matrix does not match declared dimensions")
	ErrNotBitmap         = errors.New("invalid file: provided file is not a bitmap")
	ErrUnsupported       = errors.New("unsupported BMP format: only 24-bit uncompressed is supported")
)

// Pixel holds one color in memory order (Red, Green, Blue)
type Pixel struct {
	R, G, B byte
}

type BitmapImage struct {
	Filename string
	Raw      []byte // The bytes the image was decoded from (header + pixel data)
	BFHeader *BitmapFileHeader
	BIHeader *BitmapInfoHeader
	Width    int
	Height   int
	Stride   int
	Padding  int
	Pixels   [][]Pixel // Top row first
}

// Returns the Pixels in bytes as BGR (Blue, Green, Red)
func (p *Pixel) BytesBGR() []byte {
	return []byte{p.B, p.G, p.R}
}

// Number of padding bytes that bring a row of width pixels to a multiple of 4
func RowPadding(width int) int {
	return (4 - (width*bytesPerPixel)%4) % 4
}

// Reads width and height from the header and checks that buf holds every row.
func dimensions(buf []byte) (width, height, stride int, err error) {
	if len(buf) < HeaderSize {
		return 0, 0, 0, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncated, HeaderSize, len(buf))
	}

	w := LittleEndianUint(buf[WidthOffset : WidthOffset+fieldSize])
	h := LittleEndianUint(buf[HeightOffset : HeightOffset+fieldSize])
	s := w*bytesPerPixel + uint64(RowPadding(int(w%4))) // padding only depends on w mod 4

	// Compare by division so huge header values can't overflow
	if w > 0 && h > 0 && s > uint64(len(buf)-HeaderSize)/h {
		return 0, 0, 0, fmt.Errorf("%w: %dx%d needs %d bytes of pixel data, got %d",
			ErrTruncated, w, h, s*h, len(buf)-HeaderSize)
	}

	return int(w), int(h), int(s), nil
}

// Decodes a bitmap buffer into a top-down pixel matrix.
//
// Width and height come from the header (offsets 18 and 22), pixel data
// starts at byte 54 with the bottom row first, each pixel stored as
// (Blue, Green, Red) and each row padded to a multiple of 4 bytes.
func Decode(buf []byte) (*BitmapImage, error) {
	width, height, stride, err := dimensions(buf)
	if err != nil {
		return nil, err
	}

	bfHeader, biHeader, err := ParseHeaders(buf)
	if err != nil {
		return nil, err
	}

	var pixels [][]Pixel
	if width > 0 && height > 0 {
		pixels = make([][]Pixel, height)
		for i := 0; i < height; i++ {
			// Bottom-up on disk: the i-th stored row is the (height-i-1)-th visual row
			row := make([]Pixel, width)
			offset := HeaderSize + i*stride
			for col := 0; col < width; col++ {
				px := buf[offset+col*bytesPerPixel:]
				row[col] = Pixel{R: px[2], G: px[1], B: px[0]}
			}
			pixels[height-i-1] = row
		}
	}

	return &BitmapImage{
		Raw:      buf,
		BFHeader: bfHeader,
		BIHeader: biHeader,
		Width:    width,
		Height:   height,
		Stride:   stride,
		Padding:  stride - width*bytesPerPixel,
		Pixels:   pixels,
	}, nil
}

// Encodes pixels back into a copy of original.
//
// Only pixel bytes are written; the header, the row padding and anything
// after the pixel data are kept byte-for-byte. original is never modified.
func Encode(original []byte, pixels [][]Pixel) ([]byte, error) {
	width, height, stride, err := dimensions(original)
	if err != nil {
		return nil, err
	}

	if width == 0 || height == 0 {
		if len(pixels) != 0 {
			return nil, fmt.Errorf("%w: expected an empty matrix for %dx%d", ErrDimensionMismatch, width, height)
		}
	} else if len(pixels) != height {
		return nil, fmt.Errorf("%w: %d rows, header says %d", ErrDimensionMismatch, len(pixels), height)
	}
	for i, row := range pixels {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, header says %d", ErrDimensionMismatch, i, len(row), width)
		}
	}

	out := make([]byte, len(original))
	copy(out, original)

	// Write the pixels (BottomUp: last row first)
	for i := 0; i < len(pixels); i++ {
		offset := HeaderSize + i*stride
		for col, p := range pixels[height-i-1] {
			copy(out[offset+col*bytesPerPixel:], p.BytesBGR())
		}
	}

	return out, nil
}

// Encodes the (possibly transformed) pixels on top of the bytes the image was read from
func (b *BitmapImage) Bytes() ([]byte, error) {
	return Encode(b.Raw, b.Pixels)
}

// Creates a blank bitmap image (24 bit uncompressed) with a fresh header
func CreateBitmap(width, height int) (*BitmapImage, error) {
	if width <= 0 {
		return nil, errors.New("width must be greater than 0")
	} else if height <= 0 {
		return nil, errors.New("height must be greater than 0")
	}

	stride := width*bytesPerPixel + RowPadding(width)
	sizeImage := stride * height
	buf := make([]byte, HeaderSize+sizeImage)

	// File header
	buf[0], buf[1] = 'B', 'M'
	putUint32(buf[2:], uint32(len(buf)))
	putUint32(buf[10:], HeaderSize)

	// Info header
	putUint32(buf[14:], 40)
	putUint32(buf[WidthOffset:], uint32(width))
	putUint32(buf[HeightOffset:], uint32(height))
	buf[26] = 1  // Planes
	buf[28] = 24 // BitCount
	putUint32(buf[34:], uint32(sizeImage))

	return Decode(buf)
}

// Writes v least-significant byte first (the inverse of LittleEndianUint)
func putUint32(b []byte, v uint32) {
	for i := 0; i < fieldSize; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// Reads a Bitmap file (fully into memory)
func ReadBitmap(filename string) (*BitmapImage, error) {
	// Open the file
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	bitmap, err := Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	bitmap.Filename = filename

	return bitmap, nil
}

// Saves the bitmap image onto local disk
func (b *BitmapImage) Save(filename string) (err error) {
	data, err := b.Bytes()
	if err != nil {
		return err
	}

	newBitmap, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := newBitmap.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = newBitmap.Write(data)
	return err
}

// Returns a Copy of the bitmap image (pixels are deep-copied, Raw is shared)
func (b *BitmapImage) Copy() *BitmapImage {
	newBitmap := *b

	// Copy over pixels too
	newBitmap.Pixels = make([][]Pixel, len(b.Pixels))
	for row := range b.Pixels {
		newBitmap.Pixels[row] = make([]Pixel, len(b.Pixels[row]))
		copy(newBitmap.Pixels[row], b.Pixels[row])
	}

	return &newBitmap
}

// Print the bitmap in terminal. Use for small images only
func (b *BitmapImage) PrintBitmap(w io.Writer) {
	for _, row := range b.Pixels {
		for _, pixel := range row {
			fmt.Fprint(w, utils.ColoredBlock("  ", int(pixel.R), int(pixel.G), int(pixel.B)))
		}
		fmt.Fprintln(w)
	}
}

// Print the Metadata bitmap in terminal. (in human-readable format)
func (b *BitmapImage) PrintMetadata(w io.Writer) {
	fmt.Fprintf(w, "Filename: \t%v\n", b.Filename)
	fmt.Fprintf(w, "Filesize: \t%v bytes\n", len(b.Raw))
	fmt.Fprintf(w, "Width: \t\t%v px\n", b.Width)
	fmt.Fprintf(w, "Height: \t%v px\n", b.Height)
	fmt.Fprintf(w, "BitCount: \t%vbits\n", b.BIHeader.BitCount)
	fmt.Fprintf(w, "PixelOffset: \t%v bytes\n", b.BFHeader.OffBits)
	fmt.Fprintf(w, "PixelCount: \t%v pixels\n", b.Width*b.Height)
	fmt.Fprintf(w, "Stride: \t%v bytes\n", b.Stride)
	fmt.Fprintf(w, "Padding: \t%v bytes\n", b.Padding)
}
