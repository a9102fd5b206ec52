package bmp

// Returns the unsigned integer stored in b, least-significant byte first.
// The bytes are consumed from the last one to the first: total = total*256 + byte
func LittleEndianUint(b []byte) uint64 {
	var total uint64
	for i := len(b) - 1; i >= 0; i-- {
		total = total*256 + uint64(b[i])
	}
	return total
}
