// Package gameschema holds the concrete, hand-written schema types this
// module ships as its reference fixture domain: the same shapes the
// original protocol's code generator produces from a .proto-like schema
// definition (PrimitiveTypes, Entity/Player/Bot, ChildSchemaTypes,
// ArraySchemaTypes, MapSchemaTypes, and the root State), built by hand in
// their generated style rather than by a generator (spec §1, §9 design
// note 2). Every type embeds schema.BaseSchema and follows the "override
// your fields, delegate upward otherwise" accessor shape.
package gameschema

import "github.com/kungfusheep/schemasync/schema"

// TypeID values. A sealed, package-closed enumeration stands in for the
// source protocol's typeid()-based RTTI (spec §9 design note 9): the
// reconciler never needs runtime type identity, only this tag and the
// factory below.
const (
	TypeEntity schema.TypeID = iota + 1
	TypePlayer
	TypeBot
	TypeIAmAChild
	TypePrimitiveTypes
	TypeChildSchemaTypes
	TypeArraySchemaTypes
	TypeMapSchemaTypes
	TypeState
	TypeEntityHolder
)

// NewByTypeID is the total function TypeID -> Schema design note 9 calls
// for. Every concrete type's Factory method delegates here rather than
// each carrying its own private subset of the mapping, since the mapping
// itself is global and total, not per-type.
func NewByTypeID(id schema.TypeID) (schema.Schema, bool) {
	switch id {
	case TypeEntity:
		return NewEntity(), true
	case TypePlayer:
		return NewPlayer(), true
	case TypeBot:
		return NewBot(), true
	case TypeIAmAChild:
		return NewIAmAChild(), true
	case TypePrimitiveTypes:
		return NewPrimitiveTypes(), true
	case TypeChildSchemaTypes:
		return NewChildSchemaTypes(), true
	case TypeArraySchemaTypes:
		return NewArraySchemaTypes(), true
	case TypeMapSchemaTypes:
		return NewMapSchemaTypes(), true
	case TypeState:
		return NewState(), true
	case TypeEntityHolder:
		return NewEntityHolder(), true
	default:
		return nil, false
	}
}
