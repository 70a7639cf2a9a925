package schema

// FieldMeta describes one dense field-table entry: a field's wire-kind
// and, when the field is a ref or a container of schemas, the declared
// child schema identity; when the field is a container of primitives,
// the element's wire-kind. Spec §3 invariant: ChildKind is present iff
// the field is a container of primitives; ChildType is present iff the
// field is a ref, or a container of schemas.
type FieldMeta struct {
	Index uint8
	Name  string
	Kind  WireKind

	HasChildKind bool
	ChildKind    WireKind

	HasChildType bool
	ChildType    TypeID
}

// FieldTable is a schema type's immutable, dense field index -> metadata
// mapping, shared by every instance of that type (spec §3: "A reference
// to its field table (shared, immutable per type)").
type FieldTable struct {
	fields []FieldMeta
}

// NewFieldTable builds a field table from a dense, index-ordered field
// list. Concrete schema types build one of these once, at package init,
// and share it across every instance — mirroring the codegen'd
// `_indexes`/`_types`/`_childPrimitiveTypes`/`_childSchemaTypes` maps in
// the source protocol's generated schema classes.
func NewFieldTable(fields ...FieldMeta) *FieldTable {
	for i, f := range fields {
		if int(f.Index) != i {
			panic("schema: field table indices must be dense starting from 0")
		}
	}
	return &FieldTable{fields: fields}
}

// Field looks up metadata by dense index. The second return is false for
// an index with no entry (spec §7 Unknown field index).
func (t *FieldTable) Field(index uint8) (FieldMeta, bool) {
	if t == nil || int(index) >= len(t.fields) {
		return FieldMeta{}, false
	}
	return t.fields[index], true
}

// Len reports the number of declared fields.
func (t *FieldTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.fields)
}
