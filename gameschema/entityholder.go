package gameschema

import "github.com/kungfusheep/schemasync/schema"

// EntityHolder wraps a single ref field, "occupant", declared against its
// own TypeID for self-referential nesting depth tests. Spec §4.3.a notes
// that a ref field's actual child "may be a subtype" of its declared
// identity; decodeRef only consults the declared identity to construct a
// *new* child, so once a host has assigned an occupant of any concrete
// type (e.g. a Bot), the reconciler decodes against that instance's own
// field table regardless of what EntityHolder declared.
type EntityHolder struct {
	schema.BaseSchema

	occupant schema.Schema
}

func NewEntityHolder() *EntityHolder {
	h := &EntityHolder{}
	h.Init(h)
	return h
}

func (h *EntityHolder) FieldTable() *schema.FieldTable { return entityHolderFields }
func (h *EntityHolder) TypeID() schema.TypeID          { return TypeEntityHolder }
func (h *EntityHolder) Factory(id schema.TypeID) (schema.Schema, bool) {
	return NewByTypeID(id)
}

func (h *EntityHolder) GetRef(name string) schema.Schema {
	if name == "occupant" {
		return h.occupant
	}
	return h.BaseSchema.GetRef(name)
}

func (h *EntityHolder) SetRef(name string, v schema.Schema) {
	if name == "occupant" {
		h.occupant = v
		return
	}
	h.BaseSchema.SetRef(name, v)
}
