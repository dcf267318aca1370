// Package vector holds the fixed-layout structs that describe column vectors.
//
// # DataInfo
//
// DataInfo records how the integers of a vector are stored: the bit width of
// each element and whether elements are signed. On the wire it is exactly two
// bytes with no header:
//
//	[nbits(1)][signed(1)]
//
// nbits is an unsigned byte, conventionally 1–64. signed is 0x00 for false;
// any other byte reads as true, and writers always emit 0x01.
//
// Reading goes through a view that is bound to a caller-owned buffer and a
// position. Binding copies nothing and checks nothing; a position that runs
// past the buffer surfaces access.ErrOutOfBounds from the first field read.
//
//	info := vector.GetDataInfo(buf, pos)
//	nbits, err := info.NBits()
//
// Writing appends an independent record to an access.Builder:
//
//	b := access.NewBuilder(0)
//	off, err := vector.CreateDataInfo(b, 12, true)
//
// nbits values outside 0–255 are masked to their low byte rather than
// rejected. Value.Validate is available when the 1–64 domain matters.
//
// A view bound to Builder.Bytes() is only good until the builder grows,
// resets or is released.
package vector
