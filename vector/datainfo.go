package vector

import (
	"fmt"

	"github.com/quickwritereader/filovec/access"
	"github.com/quickwritereader/filovec/types"
)

const (
	DataInfoSize  = 2
	DataInfoAlign = 1

	DataInfoNBitsOffset  = 0
	DataInfoSignedOffset = 1
)

// DataInfoLayout lists the fields of a DataInfo in declaration order.
var DataInfoLayout = []types.Field{
	{Name: "nbits", Offset: DataInfoNBitsOffset, Kind: types.KindUint8},
	{Name: "signed", Offset: DataInfoSignedOffset, Kind: types.KindBool},
}

// DataInfo is a read-only view of a DataInfo record inside someone else's buffer.
type DataInfo struct {
	_tab access.Struct
}

// GetDataInfo binds a view at pos. Nothing is copied or validated.
func GetDataInfo(buf []byte, pos int) *DataInfo {
	x := &DataInfo{}
	x.Init(buf, pos)
	return x
}

func (rcv *DataInfo) Init(buf []byte, pos int) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = pos
}

func (rcv *DataInfo) Table() access.Struct {
	return rcv._tab
}

func (rcv *DataInfo) NBits() (uint8, error) {
	return rcv._tab.GetUint8(DataInfoNBitsOffset)
}

func (rcv *DataInfo) Signed() (bool, error) {
	return rcv._tab.GetBool(DataInfoSignedOffset)
}

// Unpack copies both fields out of the buffer.
func (rcv *DataInfo) Unpack() (Value, error) {
	nbits, err := rcv.NBits()
	if err != nil {
		return Value{}, fmt.Errorf("DataInfo.Unpack: %w", err)
	}
	signed, err := rcv.Signed()
	if err != nil {
		return Value{}, fmt.Errorf("DataInfo.Unpack: %w", err)
	}
	return Value{NBits: nbits, Signed: signed}, nil
}

// CreateDataInfo appends a DataInfo to b and returns the offset it starts at.
// Only the low 8 bits of nbits are kept.
func CreateDataInfo(b *access.Builder, nbits int, signed bool) (int, error) {
	if err := b.Prep(DataInfoAlign, DataInfoSize); err != nil {
		return 0, fmt.Errorf("CreateDataInfo: %w", err)
	}
	if err := b.PutBool(signed); err != nil {
		return 0, fmt.Errorf("CreateDataInfo: signed: %w", err)
	}
	if err := b.PutUint8(uint8(nbits & 0xFF)); err != nil {
		return 0, fmt.Errorf("CreateDataInfo: nbits: %w", err)
	}
	return b.Offset(), nil
}
