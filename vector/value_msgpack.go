package vector

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Value{}
	_ msgpack.CustomDecoder = (*Value)(nil)
)

// EncodeMsgpack writes v as the two-element array [nbits, signed].
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint8(v.NBits); err != nil {
		return err
	}
	return enc.EncodeBool(v.Signed)
}

func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("DecodeMsgpack: %w", err)
	}
	if n != 2 {
		return fmt.Errorf("DecodeMsgpack: array of %d elements: %w", n, ErrValueLength)
	}
	nbits, err := dec.DecodeUint8()
	if err != nil {
		return fmt.Errorf("DecodeMsgpack: nbits: %w", err)
	}
	signed, err := dec.DecodeBool()
	if err != nil {
		return fmt.Errorf("DecodeMsgpack: signed: %w", err)
	}
	v.NBits, v.Signed = nbits, signed
	return nil
}
