package access

// FixedRecord is a value with a constant wire size that can write itself
// straight into a pre-sized slice, in the same pos-in/pos-out style as the
// Write* helpers.
//
// Keep implementations as small value types (not pointers to slices):
// Builder.AppendRecord takes the interface by value and boxing a large
// struct costs an allocation per append.
type FixedRecord interface {
	Size() int
	Align() int
	// Write lays the record out in declaration order starting at pos and
	// returns pos+Size().
	Write(buf []byte, pos int) int
}
