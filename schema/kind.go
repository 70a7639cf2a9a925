package schema

// WireKind tags the abstract category governing how a field is read from
// the wire and routed to a typed accessor. Dispatch throughout this
// repository is by WireKind, never by a field's Go storage type — the
// reconciler never inspects concrete storage, only the kind tagged in the
// field table (spec §4.2: "Dispatch is by wire-kind, not by source type").
type WireKind uint8

const (
	KindString WireKind = iota
	KindBool
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindNumber // tagged variable-width numeric, normalized to float64
	KindRef    // nested schema
	KindArray  // ordered sequence
	KindMap    // string-keyed collection
)

func (k WireKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindInt8:
		return "int8"
	case KindUint8:
		return "uint8"
	case KindInt16:
		return "int16"
	case KindUint16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindNumber:
		return "number"
	case KindRef:
		return "ref"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// IsContainer reports whether the kind is a container kind (array or map)
// rather than a scalar or ref.
func (k WireKind) IsContainer() bool {
	return k == KindArray || k == KindMap
}
