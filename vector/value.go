package vector

import (
	"errors"
	"fmt"

	"github.com/quickwritereader/filovec/access"
)

var (
	ErrNBitsRange  = errors.New("nbits outside 1-64")
	ErrValueLength = errors.New("DataInfo must be exactly 2 bytes")
)

// Value is a DataInfo copied out of its buffer.
type Value struct {
	NBits  uint8 `json:"nbits"`
	Signed bool  `json:"signed"`
}

var _ access.FixedRecord = Value{}

func (v Value) Size() int  { return DataInfoSize }
func (v Value) Align() int { return DataInfoAlign }

func (v Value) Write(buf []byte, pos int) int {
	pos = access.WriteUint8(buf, pos, v.NBits)
	return access.WriteBool(buf, pos, v.Signed)
}

// Pack appends v to b the same way CreateDataInfo does.
func (v Value) Pack(b *access.Builder) (int, error) {
	return CreateDataInfo(b, int(v.NBits), v.Signed)
}

// Validate checks the conventional bit-width domain. Encoding and decoding
// never call it.
func (v Value) Validate() error {
	if v.NBits < 1 || v.NBits > 64 {
		return fmt.Errorf("Validate: nbits %d: %w", v.NBits, ErrNBitsRange)
	}
	return nil
}

func (v Value) MarshalBinary() ([]byte, error) {
	buf := make([]byte, DataInfoSize)
	v.Write(buf, 0)
	return buf, nil
}

func (v *Value) UnmarshalBinary(data []byte) error {
	if len(data) != DataInfoSize {
		return fmt.Errorf("UnmarshalBinary: got %d bytes: %w", len(data), ErrValueLength)
	}
	out, err := GetDataInfo(data, 0).Unpack()
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func (v Value) String() string {
	sign := "unsigned"
	if v.Signed {
		sign = "signed"
	}
	return fmt.Sprintf("DataInfo{%d bits, %s}", v.NBits, sign)
}
