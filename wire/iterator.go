// Package wire implements the binary codec layer: a single-cursor reader
// over a patch byte slice, fixed-width little-endian primitive reads, a
// tagged variable-width "number" reader, and the three sentinel bytes that
// the reconciler inspects without consuming. It has no knowledge of
// schemas, fields, or containers — those live in the schema and reconcile
// packages, which are built on top of Iterator.
package wire

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/kungfusheep/schemasync/wire/werr"
)

// Sentinel bytes. These never appear as the first byte of a primitive
// value in a well-formed patch, so peeking for them before committing to
// a primitive read is always safe.
const (
	EndOfStructure byte = 0xc1
	Nil            byte = 0xc0
	IndexChange    byte = 0xd4
)

// fixstrBase/fixstrMax bound the short-string length-byte range: a byte in
// [fixstrBase, fixstrMax] carries the string's length directly in its low
// 5 bits (0..31), the same fixstr marker a MessagePack-style encoder uses.
// This range is also how the map decoder (reconcile package) distinguishes
// a literal string key from a tagged-number previous-key ordinal at the
// same wire position (spec §4.3.c step 2): a byte outside this range is a
// number prefix, one inside it is a string.
const (
	fixstrBase = 0xa0
	fixstrMax  = 0xbf
)

// Iterator is the single shared cursor over a patch's bytes. Every read
// advances Offset; nothing about Iterator is safe for concurrent use,
// matching the reconciler's single-threaded, non-suspending contract.
type Iterator struct {
	Data   []byte // first for alignment, mirrors the layout reader.go uses for its cursor
	Offset int
}

// NewIterator wraps a patch buffer for sequential reads starting at 0.
func NewIterator(data []byte) *Iterator {
	return &Iterator{Data: data}
}

// Len reports how many bytes remain unread.
func (it *Iterator) Len() int {
	return len(it.Data) - it.Offset
}

// Done reports whether the cursor has reached the end of the buffer.
func (it *Iterator) Done() bool {
	return it.Offset >= len(it.Data)
}

func (it *Iterator) need(n int) error {
	if it.Offset+n > len(it.Data) {
		return errors.Wrapf(werr.ErrTruncated, "need %d bytes at offset %d, have %d", n, it.Offset, len(it.Data))
	}
	return nil
}

// PeekByte returns the next byte without advancing the cursor. Used by the
// reconciler to test for NIL/INDEX_CHANGE/END_OF_STRUCTURE before
// committing to a read.
func (it *Iterator) PeekByte() (byte, bool) {
	if it.Done() {
		return 0, false
	}
	return it.Data[it.Offset], true
}

// PeekIsString reports whether the next byte is a fixstr length prefix
// rather than a number prefix, without advancing the cursor. The map
// decoder uses this to tell a literal string key from a tagged-number
// previous-key ordinal occupying the same wire position.
func (it *Iterator) PeekIsString() bool {
	b, ok := it.PeekByte()
	return ok && b >= fixstrBase && b <= fixstrMax
}

// Skip advances the cursor n bytes without interpreting them.
func (it *Iterator) Skip(n int) error {
	if err := it.need(n); err != nil {
		return err
	}
	it.Offset += n
	return nil
}

// Uint8 reads one raw byte.
func (it *Iterator) Uint8() (uint8, error) {
	if err := it.need(1); err != nil {
		return 0, err
	}
	v := it.Data[it.Offset]
	it.Offset++
	return v, nil
}

// Int8 reads one byte as two's-complement.
func (it *Iterator) Int8() (int8, error) {
	v, err := it.Uint8()
	return int8(v), err
}

// Bool reads one byte: zero is false, nonzero is true.
func (it *Iterator) Bool() (bool, error) {
	v, err := it.Uint8()
	return v != 0, err
}

// Uint16 reads a little-endian uint16.
func (it *Iterator) Uint16() (uint16, error) {
	if err := it.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(it.Data[it.Offset:])
	it.Offset += 2
	return v, nil
}

// Int16 reads a little-endian int16.
func (it *Iterator) Int16() (int16, error) {
	v, err := it.Uint16()
	return int16(v), err
}

// Uint32 reads a little-endian uint32.
func (it *Iterator) Uint32() (uint32, error) {
	if err := it.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(it.Data[it.Offset:])
	it.Offset += 4
	return v, nil
}

// Int32 reads a little-endian int32.
func (it *Iterator) Int32() (int32, error) {
	v, err := it.Uint32()
	return int32(v), err
}

// Uint64 reads a little-endian uint64.
func (it *Iterator) Uint64() (uint64, error) {
	if err := it.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(it.Data[it.Offset:])
	it.Offset += 8
	return v, nil
}

// Int64 reads a little-endian int64.
func (it *Iterator) Int64() (int64, error) {
	v, err := it.Uint64()
	return int64(v), err
}

// Float32 reads a little-endian IEEE-754 single.
func (it *Iterator) Float32() (float32, error) {
	v, err := it.Uint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Float64 reads a little-endian IEEE-754 double.
func (it *Iterator) Float64() (float64, error) {
	v, err := it.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// String reads a short-string: one length byte whose low 5 bits give the
// character count directly (0..31), followed by that many raw bytes.
func (it *Iterator) String() (string, error) {
	lenByte, err := it.Uint8()
	if err != nil {
		return "", err
	}
	n := int(lenByte & 0b00011111)
	if it.Offset+n > len(it.Data) {
		return "", errors.Wrapf(werr.ErrStringOverrun, "string of length %d at offset %d exceeds %d remaining bytes", n, it.Offset, it.Len())
	}
	b := it.Data[it.Offset : it.Offset+n]
	it.Offset += n
	// avoids an allocation for the common case of decoding straight into a field
	return *(*string)(unsafe.Pointer(&b)), nil
}

// Tagged number prefixes, mirroring the fixint/ext ranges of a
// MessagePack-like encoding. Only the prefixes this format actually uses
// are named; anything else is ErrUnknownNumberPrefix.
const (
	numPosFixintMax = 0x7f
	numNegFixintMin = 0xe0
	numFloat32      = 0xca
	numFloat64      = 0xcb
	numUint8        = 0xcc
	numUint16       = 0xcd
	numUint32       = 0xce
	numUint64       = 0xcf
	numInt8         = 0xd0
	numInt16        = 0xd1
	numInt32        = 0xd2
	numInt64        = 0xd3
)

// Number reads a tagged variable-width numeric value, normalizing it to
// float64. A float64 is wide enough to hold any of the tagged widths
// without loss except 64-bit integer domains above 2^53 — a documented
// precision ceiling, not a bug (see spec's "varint_t is secretly a
// float32" note: this rewrite widens that ceiling to float64's 53 bits
// rather than float32's 24).
func (it *Iterator) Number() (float64, error) {
	prefix, err := it.Uint8()
	if err != nil {
		return 0, err
	}

	switch {
	case prefix <= numPosFixintMax:
		return float64(prefix), nil
	case prefix >= numNegFixintMin:
		return float64(int(prefix) - 256), nil
	}

	switch prefix {
	case numFloat32:
		v, err := it.Float32()
		return float64(v), err
	case numFloat64:
		return it.Float64()
	case numUint8:
		v, err := it.Uint8()
		return float64(v), err
	case numUint16:
		v, err := it.Uint16()
		return float64(v), err
	case numUint32:
		v, err := it.Uint32()
		return float64(v), err
	case numUint64:
		v, err := it.Uint64()
		return float64(v), err
	case numInt8:
		v, err := it.Int8()
		return float64(v), err
	case numInt16:
		v, err := it.Int16()
		return float64(v), err
	case numInt32:
		v, err := it.Int32()
		return float64(v), err
	case numInt64:
		v, err := it.Int64()
		return float64(v), err
	}

	return 0, errors.Wrapf(werr.ErrUnknownNumberPrefix, "prefix 0x%02x at offset %d", prefix, it.Offset-1)
}
