package utils

import (
	"fmt"
	"path/filepath"
)

// Returns the average of all given numbers n (rounded down)
func Average(n ...int) int {
	// Sum all numbers
	var sum int
	for _, num := range n {
		sum += num
	}

	// Divide sum by total numbers
	return sum / len(n)
}

// Print a Colored Block in terminal
func ColoredBlock(block string, red int, green int, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}

// Returns the output path for an operation: "<operation>_<file name>" in dir.
// An empty dir keeps the output next to the input.
func OutputName(operation, input, dir string) string {
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, operation+"_"+filepath.Base(input))
}
