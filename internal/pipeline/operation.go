package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anas-shakeel/bmp-editor/internal/adjustments"
	"github.com/anas-shakeel/bmp-editor/internal/bmp"
	"github.com/anas-shakeel/bmp-editor/internal/filters"
)

// Operation names a pixel transform. Its value is also the output file prefix.
type Operation string

const (
	RedBlueSwap Operation = "red_blue_swap"
	Grayscale   Operation = "grayscale"
	Split       Operation = "split"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Operations lists every supported operation
var Operations = []Operation{RedBlueSwap, Grayscale, Split}

// Maps a user-supplied token to an Operation ("channel_swap" is accepted for red_blue_swap)
func ParseOperation(token string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case string(RedBlueSwap), "channel_swap":
		return RedBlueSwap, nil
	case string(Grayscale):
		return Grayscale, nil
	case string(Split):
		return Split, nil
	default:
		return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownOperation, token, Operations)
	}
}

// Applies the operation to pixels. Pixels may be modified in-place.
func (op Operation) apply(pixels [][]bmp.Pixel) ([][]bmp.Pixel, error) {
	switch op {
	case RedBlueSwap:
		return filters.SwapRedBlue(pixels), nil
	case Grayscale:
		return filters.Grayscale(pixels), nil
	case Split:
		return adjustments.Split(pixels)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
}
