package access

import "fmt"

// WriteUint8 writes a uint8 value to the buffer.
func WriteUint8(buffer []byte, pos int, v uint8) int {
	buffer[pos] = v
	return pos + 1
}

// WriteBool writes a boolean as a single canonical byte (1 or 0).
func WriteBool(buffer []byte, pos int, v bool) int {
	var b byte
	if v {
		b = 1
	}
	buffer[pos] = b
	return pos + 1
}

// ReadUint8 reads the byte at pos.
func ReadUint8(buffer []byte, pos int) (uint8, error) {
	if pos < 0 || pos >= len(buffer) {
		return 0, fmt.Errorf("ReadUint8: pos %d, buffer length %d: %w", pos, len(buffer), ErrOutOfBounds)
	}
	return buffer[pos], nil
}

// ReadBool reads the byte at pos; any non-zero value is true.
func ReadBool(buffer []byte, pos int) (bool, error) {
	if pos < 0 || pos >= len(buffer) {
		return false, fmt.Errorf("ReadBool: pos %d, buffer length %d: %w", pos, len(buffer), ErrOutOfBounds)
	}
	return buffer[pos] != 0, nil
}
