package vector

import (
	"fmt"

	"github.com/quickwritereader/filovec/access"

	mus "github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
)

// ValueMUS serializes a Value in MUS format: a raw byte for nbits followed
// by a MUS bool. Unlike the fixed layout, MUS rejects bool bytes other
// than 0 and 1.
var ValueMUS = valueMUS{}

var _ mus.Serializer[Value] = ValueMUS

type valueMUS struct{}

func (s valueMUS) Marshal(v Value, bs []byte) (n int) {
	n = raw.Uint8.Marshal(v.NBits, bs)
	return n + ord.Bool.Marshal(v.Signed, bs[n:])
}

func (s valueMUS) Unmarshal(bs []byte) (v Value, n int, err error) {
	if len(bs) < DataInfoSize {
		err = fmt.Errorf("ValueMUS.Unmarshal: %d bytes: %w", len(bs), access.ErrOutOfBounds)
		return
	}
	v.NBits, n, err = raw.Uint8.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Signed, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	return
}

func (s valueMUS) Size(v Value) (size int) {
	size = raw.Uint8.Size(v.NBits)
	return size + ord.Bool.Size(v.Signed)
}

func (s valueMUS) Skip(bs []byte) (n int, err error) {
	if len(bs) < DataInfoSize {
		return 0, fmt.Errorf("ValueMUS.Skip: %d bytes: %w", len(bs), access.ErrOutOfBounds)
	}
	n, err = raw.Uint8.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	return
}
