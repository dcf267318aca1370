package types

// Kind is the scalar type of a fixed-layout struct field
type Kind uint8

const (
	KindInvalid Kind = 0
	KindUint8   Kind = 1
	KindBool    Kind = 2 // one byte, zero is false, anything else is true
)

// String returns the human-readable name of the kind
func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Size is the number of bytes a field of this kind occupies.
func (k Kind) Size() int {
	switch k {
	case KindUint8, KindBool:
		return 1
	default:
		return 0
	}
}

// Field describes one member of a fixed-layout struct, relative to the
// struct's base offset.
type Field struct {
	Name   string
	Offset int
	Kind   Kind
}

// End is the offset just past the field.
func (f Field) End() int {
	return f.Offset + f.Kind.Size()
}

// LayoutSize returns the number of bytes spanned by fields, padding included.
func LayoutSize(fields []Field) int {
	size := 0
	for _, f := range fields {
		if e := f.End(); e > size {
			size = e
		}
	}
	return size
}
