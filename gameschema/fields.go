package gameschema

import "github.com/kungfusheep/schemasync/schema"

// Field tables are built once, at package init, and shared across every
// instance of their type (spec §3) — the Go equivalent of the generated
// constructor bodies populating _indexes/_types/_childPrimitiveTypes/
// _childSchemaTypes in the original's generated C++ classes.

var primitiveTypesFields = schema.NewFieldTable(
	schema.FieldMeta{Index: 0, Name: "int8", Kind: schema.KindInt8},
	schema.FieldMeta{Index: 1, Name: "uint8", Kind: schema.KindUint8},
	schema.FieldMeta{Index: 2, Name: "int16", Kind: schema.KindInt16},
	schema.FieldMeta{Index: 3, Name: "uint16", Kind: schema.KindUint16},
	schema.FieldMeta{Index: 4, Name: "int32", Kind: schema.KindInt32},
	schema.FieldMeta{Index: 5, Name: "uint32", Kind: schema.KindUint32},
	schema.FieldMeta{Index: 6, Name: "int64", Kind: schema.KindInt64},
	schema.FieldMeta{Index: 7, Name: "uint64", Kind: schema.KindUint64},
	schema.FieldMeta{Index: 8, Name: "float32", Kind: schema.KindFloat32},
	schema.FieldMeta{Index: 9, Name: "float64", Kind: schema.KindFloat64},
	schema.FieldMeta{Index: 10, Name: "varint_int8", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 11, Name: "varint_uint8", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 12, Name: "varint_int16", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 13, Name: "varint_uint16", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 14, Name: "varint_int32", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 15, Name: "varint_uint32", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 16, Name: "varint_int64", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 17, Name: "varint_uint64", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 18, Name: "varint_float32", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 19, Name: "varint_float64", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 20, Name: "str", Kind: schema.KindString},
	schema.FieldMeta{Index: 21, Name: "boolean", Kind: schema.KindBool},
)

var entityFields = schema.NewFieldTable(
	schema.FieldMeta{Index: 0, Name: "x", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 1, Name: "y", Kind: schema.KindNumber},
)

// playerFields and botFields repeat Entity's fields at the same indices:
// the original's generated _indexes map is cumulative down the
// inheritance chain, not just the subtype's own additions, and the
// reconciler reads field metadata purely by dense index, so a subtype's
// table must carry its ancestors' entries too.
var playerFields = schema.NewFieldTable(
	schema.FieldMeta{Index: 0, Name: "x", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 1, Name: "y", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 2, Name: "name", Kind: schema.KindString},
)

var botFields = schema.NewFieldTable(
	schema.FieldMeta{Index: 0, Name: "x", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 1, Name: "y", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 2, Name: "name", Kind: schema.KindString},
	schema.FieldMeta{Index: 3, Name: "power", Kind: schema.KindNumber},
)

var iAmAChildFields = schema.NewFieldTable(
	schema.FieldMeta{Index: 0, Name: "x", Kind: schema.KindNumber},
	schema.FieldMeta{Index: 1, Name: "y", Kind: schema.KindNumber},
)

var childSchemaTypesFields = schema.NewFieldTable(
	schema.FieldMeta{Index: 0, Name: "child", Kind: schema.KindRef, HasChildType: true, ChildType: TypeIAmAChild},
	schema.FieldMeta{Index: 1, Name: "secondChild", Kind: schema.KindRef, HasChildType: true, ChildType: TypeIAmAChild},
)

var arraySchemaTypesFields = schema.NewFieldTable(
	schema.FieldMeta{Index: 0, Name: "arrayOfSchemas", Kind: schema.KindArray, HasChildType: true, ChildType: TypeIAmAChild},
	schema.FieldMeta{Index: 1, Name: "arrayOfNumbers", Kind: schema.KindArray, HasChildKind: true, ChildKind: schema.KindNumber},
	schema.FieldMeta{Index: 2, Name: "arrayOfStrings", Kind: schema.KindArray, HasChildKind: true, ChildKind: schema.KindString},
	schema.FieldMeta{Index: 3, Name: "arrayOfInt32", Kind: schema.KindArray, HasChildKind: true, ChildKind: schema.KindInt32},
)

var mapSchemaTypesFields = schema.NewFieldTable(
	schema.FieldMeta{Index: 0, Name: "mapOfSchemas", Kind: schema.KindMap, HasChildType: true, ChildType: TypeIAmAChild},
	schema.FieldMeta{Index: 1, Name: "mapOfNumbers", Kind: schema.KindMap, HasChildKind: true, ChildKind: schema.KindNumber},
	schema.FieldMeta{Index: 2, Name: "mapOfStrings", Kind: schema.KindMap, HasChildKind: true, ChildKind: schema.KindString},
	schema.FieldMeta{Index: 3, Name: "mapOfInt32", Kind: schema.KindMap, HasChildKind: true, ChildKind: schema.KindInt32},
)

// entityHolderFields declares its one ref field against its own TypeID,
// not Entity's: a self-referential ref chain lets tests exercise the
// reconciler's recursion-depth limit (spec §9 design note 9's factory is
// a total function, and nothing about it forbids a type naming itself).
// Reconciling an *existing* child of a different concrete type (e.g. a
// Bot pre-assigned by the host) still works against that child's own
// field table regardless of this declaration — see EntityHolder's
// doc comment.
var entityHolderFields = schema.NewFieldTable(
	schema.FieldMeta{Index: 0, Name: "occupant", Kind: schema.KindRef, HasChildType: true, ChildType: TypeEntityHolder},
)

var stateFields = schema.NewFieldTable(
	schema.FieldMeta{Index: 0, Name: "arrayOfStrings", Kind: schema.KindArray, HasChildKind: true, ChildKind: schema.KindString},
	schema.FieldMeta{Index: 1, Name: "arrayOfNumbers", Kind: schema.KindArray, HasChildKind: true, ChildKind: schema.KindNumber},
	schema.FieldMeta{Index: 2, Name: "arrayOfPlayers", Kind: schema.KindArray, HasChildType: true, ChildType: TypePlayer},
	schema.FieldMeta{Index: 3, Name: "mapOfStrings", Kind: schema.KindMap, HasChildKind: true, ChildKind: schema.KindString},
	schema.FieldMeta{Index: 4, Name: "mapOfNumbers", Kind: schema.KindMap, HasChildKind: true, ChildKind: schema.KindNumber},
	schema.FieldMeta{Index: 5, Name: "mapOfPlayers", Kind: schema.KindMap, HasChildType: true, ChildType: TypePlayer},
)
