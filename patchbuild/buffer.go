// Package patchbuild is a byte-level builder for the wire format the
// reconcile package consumes: fixed-width little-endian primitives, the
// tagged "number" encoding, short strings, and the three sentinels. It
// exists purely as test and tooling infrastructure (spec.md places
// server-side encoding out of scope for the library itself) — grounded on
// glint's Buffer/DocumentBuilder pair (buffer.go, documentbuilder.go),
// repurposed to emit this spec's field-index + sentinel record stream
// instead of glint's name + varint document format.
package patchbuild

import (
	"encoding/binary"
	"math"
)

// Buffer accumulates encoded patch bytes. Like glint's Buffer, it supports
// only append operations.
type Buffer struct {
	Bytes []byte
}

// New returns an empty Buffer ready for appends.
func New() *Buffer {
	return &Buffer{}
}

// Field starts a new field record by writing its index byte, mirroring the
// one-byte field-index prefix every patch record in spec.md §6 carries.
func (b *Buffer) Field(index uint8) *Buffer {
	b.Bytes = append(b.Bytes, index)
	return b
}

func (b *Buffer) Uint8(v uint8) *Buffer {
	b.Bytes = append(b.Bytes, v)
	return b
}

func (b *Buffer) Int8(v int8) *Buffer {
	return b.Uint8(uint8(v))
}

func (b *Buffer) Bool(v bool) *Buffer {
	if v {
		return b.Uint8(1)
	}
	return b.Uint8(0)
}

func (b *Buffer) Uint16(v uint16) *Buffer {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.Bytes = append(b.Bytes, tmp[:]...)
	return b
}

func (b *Buffer) Int16(v int16) *Buffer { return b.Uint16(uint16(v)) }

func (b *Buffer) Uint32(v uint32) *Buffer {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.Bytes = append(b.Bytes, tmp[:]...)
	return b
}

func (b *Buffer) Int32(v int32) *Buffer { return b.Uint32(uint32(v)) }

func (b *Buffer) Uint64(v uint64) *Buffer {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.Bytes = append(b.Bytes, tmp[:]...)
	return b
}

func (b *Buffer) Int64(v int64) *Buffer { return b.Uint64(uint64(v)) }

func (b *Buffer) Float32(v float32) *Buffer { return b.Uint32(math.Float32bits(v)) }
func (b *Buffer) Float64(v float64) *Buffer { return b.Uint64(math.Float64bits(v)) }

// String writes a short-string: one length byte (0..31) then the raw
// bytes. Panics if s is longer than 31 bytes, the short-string form's
// ceiling (spec §4.1).
func (b *Buffer) String(s string) *Buffer {
	if len(s) > 31 {
		panic("patchbuild: string exceeds short-string max length (31)")
	}
	b.Bytes = append(b.Bytes, 0xa0|byte(len(s)))
	b.Bytes = append(b.Bytes, s...)
	return b
}

// Nil writes the NIL sentinel (0xc0).
func (b *Buffer) Nil() *Buffer {
	b.Bytes = append(b.Bytes, 0xc0)
	return b
}

// EndOfStructure writes the END_OF_STRUCTURE sentinel (0xc1).
func (b *Buffer) EndOfStructure() *Buffer {
	b.Bytes = append(b.Bytes, 0xc1)
	return b
}

// IndexChange writes the INDEX_CHANGE sentinel (0xd4) followed by the
// redundant u8 the wire format carries for compatibility (spec §4.3.b
// step 2: "consume a u8 sentinel byte — redundant with peek").
func (b *Buffer) IndexChange() *Buffer {
	b.Bytes = append(b.Bytes, 0xd4, 0xd4)
	return b
}

// PosFixint writes a number in positive-fixint form (0..127), the
// smallest encoding for small non-negative values.
func (b *Buffer) PosFixint(v uint8) *Buffer {
	if v > 0x7f {
		panic("patchbuild: value exceeds positive fixint range")
	}
	return b.Uint8(v)
}

// NegFixint writes a number in negative-fixint form (-32..-1).
func (b *Buffer) NegFixint(v int8) *Buffer {
	if v >= 0 || v < -32 {
		panic("patchbuild: value outside negative fixint range")
	}
	return b.Uint8(uint8(256 + int(v)))
}

// NumberUint8/Uint16/Uint32/Uint64/Int8/Int16/Int32/Int64/Float32/Float64
// write a tagged number in the given explicit width, for tests exercising
// a specific prefix byte rather than the smallest-fit encoding.
func (b *Buffer) NumberUint8(v uint8) *Buffer   { return b.Uint8(0xcc).Uint8(v) }
func (b *Buffer) NumberUint16(v uint16) *Buffer { return b.Uint8(0xcd).Uint16(v) }
func (b *Buffer) NumberUint32(v uint32) *Buffer { return b.Uint8(0xce).Uint32(v) }
func (b *Buffer) NumberUint64(v uint64) *Buffer { return b.Uint8(0xcf).Uint64(v) }
func (b *Buffer) NumberInt8(v int8) *Buffer     { return b.Uint8(0xd0).Int8(v) }
func (b *Buffer) NumberInt16(v int16) *Buffer   { return b.Uint8(0xd1).Int16(v) }
func (b *Buffer) NumberInt32(v int32) *Buffer   { return b.Uint8(0xd2).Int32(v) }
func (b *Buffer) NumberInt64(v int64) *Buffer   { return b.Uint8(0xd3).Int64(v) }
func (b *Buffer) NumberFloat32(v float32) *Buffer {
	return b.Uint8(0xca).Float32(v)
}
func (b *Buffer) NumberFloat64(v float64) *Buffer {
	return b.Uint8(0xcb).Float64(v)
}

// Number writes v using the smallest tagged encoding that represents it
// exactly among fixints and the unsigned/signed integer widths, falling
// back to float64 for non-integral or out-of-range values. This is the
// form test helpers reach for when the exact wire width doesn't matter.
func (b *Buffer) Number(v float64) *Buffer {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		iv := int64(v)
		switch {
		case iv >= 0 && iv <= 0x7f:
			return b.PosFixint(uint8(iv))
		case iv >= -32 && iv < 0:
			return b.NegFixint(int8(iv))
		case iv >= 0 && iv <= 0xff:
			return b.NumberUint8(uint8(iv))
		case iv >= 0 && iv <= 0xffff:
			return b.NumberUint16(uint16(iv))
		case iv >= 0 && iv <= 0xffffffff:
			return b.NumberUint32(uint32(iv))
		case iv < 0 && iv >= math.MinInt8:
			return b.NumberInt8(int8(iv))
		case iv < 0 && iv >= math.MinInt16:
			return b.NumberInt16(int16(iv))
		case iv < 0 && iv >= math.MinInt32:
			return b.NumberInt32(int32(iv))
		}
	}
	return b.NumberFloat64(v)
}

// Build returns the accumulated buffer.
func (b *Buffer) Build() []byte {
	return b.Bytes
}
