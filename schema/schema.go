package schema

// Schema is what the reconciler needs from a concrete schema type: its
// field table, typed accessors for every wire-kind, a factory from child
// schema identity to a freshly constructed child, and hooks to fire the
// per-instance change/remove listeners. Concrete schema types are
// "external collaborators" (spec §1): generated or hand-written, and the
// reconciler only ever talks to them through this interface.
//
// A concrete type embeds BaseSchema for the default zero/empty/null
// behavior and overrides only the accessors for the fields it declares —
// the same "override your fields, delegate upward otherwise" shape the
// source protocol's generated C++ classes use (Derived::getX falls back
// to Base::getX), expressed here through Go embedding instead of a
// virtual-override tower.
type Schema interface {
	FieldTable() *FieldTable
	TypeID() TypeID

	// Factory constructs a new instance for the given child schema
	// identity. A type's Factory covers every identity its own ref/
	// container fields may hold, including subtypes; unrecognized
	// identities delegate upward and the root BaseSchema.Factory
	// reports (nil, false).
	Factory(id TypeID) (Schema, bool)

	GetString(name string) string
	SetString(name string, v string)
	GetBool(name string) bool
	SetBool(name string, v bool)
	GetInt8(name string) int8
	SetInt8(name string, v int8)
	GetUint8(name string) uint8
	SetUint8(name string, v uint8)
	GetInt16(name string) int16
	SetInt16(name string, v int16)
	GetUint16(name string) uint16
	SetUint16(name string, v uint16)
	GetInt32(name string) int32
	SetInt32(name string, v int32)
	GetUint32(name string) uint32
	SetUint32(name string, v uint32)
	GetInt64(name string) int64
	SetInt64(name string, v int64)
	GetUint64(name string) uint64
	SetUint64(name string, v uint64)
	GetFloat32(name string) float32
	SetFloat32(name string, v float32)
	GetFloat64(name string) float64
	SetFloat64(name string, v float64)
	GetNumber(name string) float64
	SetNumber(name string, v float64)
	GetRef(name string) Schema
	SetRef(name string, v Schema)
	GetArray(name string) *ArraySchema
	SetArray(name string, v *ArraySchema)
	GetMap(name string) *MapSchema
	SetMap(name string, v *MapSchema)

	// SetOnChange/SetOnRemove register this instance's listeners.
	SetOnChange(fn func(Schema, []DataChange))
	SetOnRemove(fn func(Schema))

	// NotifyChange/NotifyRemove fire the registered listeners, if any.
	// Only the reconciler calls these.
	NotifyChange(changes []DataChange)
	NotifyRemove()
}

// BaseSchema is the root of every concrete schema type's embedding chain.
// It implements every Schema method with a zero/empty/nil default, so a
// concrete type only has to write accessors for the fields it actually
// declares.
type BaseSchema struct {
	self     Schema
	onChange func(Schema, []DataChange)
	onRemove func(Schema)
}

// Init binds the instance's own interface value so NotifyChange and
// NotifyRemove can pass "the instance" to listeners, matching the spec's
// listener interface (`on_change(instance, changes)`). Every concrete
// schema constructor must call Init(self) exactly once, immediately after
// allocating the instance — the same shape as a Factory (spec §4.2)
// always returning a freshly constructed, ready-to-use instance.
func (b *BaseSchema) Init(self Schema) {
	b.self = self
}

func (b *BaseSchema) FieldTable() *FieldTable             { return nil }
func (b *BaseSchema) TypeID() TypeID                      { return TypeNone }
func (b *BaseSchema) Factory(TypeID) (Schema, bool)       { return nil, false }
func (b *BaseSchema) GetString(string) string             { return "" }
func (b *BaseSchema) SetString(string, string)            {}
func (b *BaseSchema) GetBool(string) bool                 { return false }
func (b *BaseSchema) SetBool(string, bool)                {}
func (b *BaseSchema) GetInt8(string) int8                 { return 0 }
func (b *BaseSchema) SetInt8(string, int8)                {}
func (b *BaseSchema) GetUint8(string) uint8               { return 0 }
func (b *BaseSchema) SetUint8(string, uint8)              {}
func (b *BaseSchema) GetInt16(string) int16               { return 0 }
func (b *BaseSchema) SetInt16(string, int16)              {}
func (b *BaseSchema) GetUint16(string) uint16             { return 0 }
func (b *BaseSchema) SetUint16(string, uint16)            {}
func (b *BaseSchema) GetInt32(string) int32               { return 0 }
func (b *BaseSchema) SetInt32(string, int32)              {}
func (b *BaseSchema) GetUint32(string) uint32             { return 0 }
func (b *BaseSchema) SetUint32(string, uint32)            {}
func (b *BaseSchema) GetInt64(string) int64               { return 0 }
func (b *BaseSchema) SetInt64(string, int64)              {}
func (b *BaseSchema) GetUint64(string) uint64             { return 0 }
func (b *BaseSchema) SetUint64(string, uint64)            {}
func (b *BaseSchema) GetFloat32(string) float32           { return 0 }
func (b *BaseSchema) SetFloat32(string, float32)          {}
func (b *BaseSchema) GetFloat64(string) float64           { return 0 }
func (b *BaseSchema) SetFloat64(string, float64)          {}
func (b *BaseSchema) GetNumber(string) float64            { return 0 }
func (b *BaseSchema) SetNumber(string, float64)           {}
func (b *BaseSchema) GetRef(string) Schema                { return nil }
func (b *BaseSchema) SetRef(string, Schema)               {}
func (b *BaseSchema) GetArray(string) *ArraySchema        { return nil }
func (b *BaseSchema) SetArray(string, *ArraySchema)       {}
func (b *BaseSchema) GetMap(string) *MapSchema            { return nil }
func (b *BaseSchema) SetMap(string, *MapSchema)           {}

func (b *BaseSchema) SetOnChange(fn func(Schema, []DataChange)) { b.onChange = fn }
func (b *BaseSchema) SetOnRemove(fn func(Schema))               { b.onRemove = fn }

func (b *BaseSchema) NotifyChange(changes []DataChange) {
	if b.onChange == nil || len(changes) == 0 {
		return
	}
	self := b.self
	if self == nil {
		return
	}
	b.onChange(self, changes)
}

func (b *BaseSchema) NotifyRemove() {
	if b.onRemove == nil {
		return
	}
	self := b.self
	if self == nil {
		return
	}
	b.onRemove(self)
}
