package gameschema

import "github.com/kungfusheep/schemasync/schema"

// PrimitiveTypes exercises every fixed-width primitive wire-kind plus the
// tagged-number form, in one flat struct with no containers or refs — the
// scenario the wire package's own iterator tests are grounded on.
type PrimitiveTypes struct {
	schema.BaseSchema

	int8    int8
	uint8   uint8
	int16   int16
	uint16  uint16
	int32   int32
	uint32  uint32
	int64   int64
	uint64  uint64
	float32 float32
	float64 float64

	varintInt8    float64
	varintUint8   float64
	varintInt16   float64
	varintUint16  float64
	varintInt32   float64
	varintUint32  float64
	varintInt64   float64
	varintUint64  float64
	varintFloat32 float64
	varintFloat64 float64

	str     string
	boolean bool
}

// NewPrimitiveTypes constructs a zero-valued instance, ready for the
// reconciler to apply patches to.
func NewPrimitiveTypes() *PrimitiveTypes {
	p := &PrimitiveTypes{}
	p.Init(p)
	return p
}

func (p *PrimitiveTypes) FieldTable() *schema.FieldTable { return primitiveTypesFields }
func (p *PrimitiveTypes) TypeID() schema.TypeID          { return TypePrimitiveTypes }
func (p *PrimitiveTypes) Factory(id schema.TypeID) (schema.Schema, bool) {
	return NewByTypeID(id)
}

func (p *PrimitiveTypes) GetInt8(string) int8 { return p.int8 }
func (p *PrimitiveTypes) SetInt8(_ string, v int8) { p.int8 = v }

func (p *PrimitiveTypes) GetUint8(string) uint8 { return p.uint8 }
func (p *PrimitiveTypes) SetUint8(_ string, v uint8) { p.uint8 = v }

func (p *PrimitiveTypes) GetInt16(string) int16 { return p.int16 }
func (p *PrimitiveTypes) SetInt16(_ string, v int16) { p.int16 = v }

func (p *PrimitiveTypes) GetUint16(string) uint16 { return p.uint16 }
func (p *PrimitiveTypes) SetUint16(_ string, v uint16) { p.uint16 = v }

func (p *PrimitiveTypes) GetInt32(string) int32 { return p.int32 }
func (p *PrimitiveTypes) SetInt32(_ string, v int32) { p.int32 = v }

func (p *PrimitiveTypes) GetUint32(string) uint32 { return p.uint32 }
func (p *PrimitiveTypes) SetUint32(_ string, v uint32) { p.uint32 = v }

func (p *PrimitiveTypes) GetInt64(string) int64 { return p.int64 }
func (p *PrimitiveTypes) SetInt64(_ string, v int64) { p.int64 = v }

func (p *PrimitiveTypes) GetUint64(string) uint64 { return p.uint64 }
func (p *PrimitiveTypes) SetUint64(_ string, v uint64) { p.uint64 = v }

func (p *PrimitiveTypes) GetFloat32(string) float32 { return p.float32 }
func (p *PrimitiveTypes) SetFloat32(_ string, v float32) { p.float32 = v }

func (p *PrimitiveTypes) GetFloat64(string) float64 { return p.float64 }
func (p *PrimitiveTypes) SetFloat64(_ string, v float64) { p.float64 = v }

func (p *PrimitiveTypes) GetString(string) string { return p.str }
func (p *PrimitiveTypes) SetString(_ string, v string) { p.str = v }

func (p *PrimitiveTypes) GetBool(string) bool { return p.boolean }
func (p *PrimitiveTypes) SetBool(_ string, v bool) { p.boolean = v }

// GetNumber/SetNumber cover the ten varint_* fields, the only fields in
// this type sharing one wire-kind across several names — mirroring the
// generated class's single getNumber/setNumber pair with an if/else-if
// chain over field name.
func (p *PrimitiveTypes) GetNumber(name string) float64 {
	switch name {
	case "varint_int8":
		return p.varintInt8
	case "varint_uint8":
		return p.varintUint8
	case "varint_int16":
		return p.varintInt16
	case "varint_uint16":
		return p.varintUint16
	case "varint_int32":
		return p.varintInt32
	case "varint_uint32":
		return p.varintUint32
	case "varint_int64":
		return p.varintInt64
	case "varint_uint64":
		return p.varintUint64
	case "varint_float32":
		return p.varintFloat32
	case "varint_float64":
		return p.varintFloat64
	}
	return p.BaseSchema.GetNumber(name)
}

func (p *PrimitiveTypes) SetNumber(name string, v float64) {
	switch name {
	case "varint_int8":
		p.varintInt8 = v
	case "varint_uint8":
		p.varintUint8 = v
	case "varint_int16":
		p.varintInt16 = v
	case "varint_uint16":
		p.varintUint16 = v
	case "varint_int32":
		p.varintInt32 = v
	case "varint_uint32":
		p.varintUint32 = v
	case "varint_int64":
		p.varintInt64 = v
	case "varint_uint64":
		p.varintUint64 = v
	case "varint_float32":
		p.varintFloat32 = v
	case "varint_float64":
		p.varintFloat64 = v
	default:
		p.BaseSchema.SetNumber(name, v)
	}
}
