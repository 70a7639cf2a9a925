package schema

import (
	"github.com/pkg/errors"

	"github.com/kungfusheep/schemasync/wire"
	"github.com/kungfusheep/schemasync/wire/werr"
)

// DecodePrimitiveField reads one value of the given kind off it and
// routes it through the matching typed setter on s. This is the single
// (wire-kind, value) dispatch point the design notes call for in place of
// sixteen duplicated typed-getter/setter call sites scattered through the
// reconciler (spec §4.3.d).
func DecodePrimitiveField(it *wire.Iterator, kind WireKind, s Schema, name string) error {
	switch kind {
	case KindString:
		v, err := it.String()
		if err != nil {
			return err
		}
		s.SetString(name, v)
	case KindBool:
		v, err := it.Bool()
		if err != nil {
			return err
		}
		s.SetBool(name, v)
	case KindInt8:
		v, err := it.Int8()
		if err != nil {
			return err
		}
		s.SetInt8(name, v)
	case KindUint8:
		v, err := it.Uint8()
		if err != nil {
			return err
		}
		s.SetUint8(name, v)
	case KindInt16:
		v, err := it.Int16()
		if err != nil {
			return err
		}
		s.SetInt16(name, v)
	case KindUint16:
		v, err := it.Uint16()
		if err != nil {
			return err
		}
		s.SetUint16(name, v)
	case KindInt32:
		v, err := it.Int32()
		if err != nil {
			return err
		}
		s.SetInt32(name, v)
	case KindUint32:
		v, err := it.Uint32()
		if err != nil {
			return err
		}
		s.SetUint32(name, v)
	case KindInt64:
		v, err := it.Int64()
		if err != nil {
			return err
		}
		s.SetInt64(name, v)
	case KindUint64:
		v, err := it.Uint64()
		if err != nil {
			return err
		}
		s.SetUint64(name, v)
	case KindFloat32:
		v, err := it.Float32()
		if err != nil {
			return err
		}
		s.SetFloat32(name, v)
	case KindFloat64:
		v, err := it.Float64()
		if err != nil {
			return err
		}
		s.SetFloat64(name, v)
	case KindNumber:
		v, err := it.Number()
		if err != nil {
			return err
		}
		s.SetNumber(name, v)
	default:
		return errors.Wrapf(werr.ErrUnknownWireKind, "field %q has non-primitive kind %v", name, kind)
	}
	return nil
}

// DecodePrimitiveElement reads one value of the given kind off it without
// routing it through a schema accessor, for use as a container (array or
// map) element — container slots hold `any`, not a named struct field.
func DecodePrimitiveElement(it *wire.Iterator, kind WireKind) (any, error) {
	switch kind {
	case KindString:
		return it.String()
	case KindBool:
		return it.Bool()
	case KindInt8:
		return it.Int8()
	case KindUint8:
		return it.Uint8()
	case KindInt16:
		return it.Int16()
	case KindUint16:
		return it.Uint16()
	case KindInt32:
		return it.Int32()
	case KindUint32:
		return it.Uint32()
	case KindInt64:
		return it.Int64()
	case KindUint64:
		return it.Uint64()
	case KindFloat32:
		return it.Float32()
	case KindFloat64:
		return it.Float64()
	case KindNumber:
		return it.Number()
	default:
		return nil, errors.Wrapf(werr.ErrUnknownWireKind, "non-primitive element kind %v", kind)
	}
}
