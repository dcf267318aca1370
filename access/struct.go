package access

import "fmt"

// Struct is the (buffer, position) pair behind every fixed-layout view.
// It does not own Bytes: the caller keeps the buffer alive and unchanged
// for as long as the view is used. Positions are never checked on bind,
// only when a field is read.
type Struct struct {
	Bytes []byte
	Pos   int
}

// GetUint8 reads the unsigned byte at Pos+off.
func (s Struct) GetUint8(off int) (uint8, error) {
	v, err := ReadUint8(s.Bytes, s.Pos+off)
	if err != nil {
		return 0, fmt.Errorf("GetUint8: struct at %d, field offset %d: %w", s.Pos, off, err)
	}
	return v, nil
}

// GetBool reads the byte at Pos+off as a boolean (non-zero is true).
func (s Struct) GetBool(off int) (bool, error) {
	v, err := ReadBool(s.Bytes, s.Pos+off)
	if err != nil {
		return false, fmt.Errorf("GetBool: struct at %d, field offset %d: %w", s.Pos, off, err)
	}
	return v, nil
}
