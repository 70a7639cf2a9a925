package gameschema

import "github.com/kungfusheep/schemasync/schema"

// ChildSchemaTypes holds two sibling ref fields of the same child schema
// type — a case the original's getRef/setRef forwarding handles by field
// name alone, independent of how many fields happen to share a type.
type ChildSchemaTypes struct {
	schema.BaseSchema

	child       schema.Schema
	secondChild schema.Schema
}

func NewChildSchemaTypes() *ChildSchemaTypes {
	c := &ChildSchemaTypes{}
	c.Init(c)
	return c
}

func (c *ChildSchemaTypes) FieldTable() *schema.FieldTable { return childSchemaTypesFields }
func (c *ChildSchemaTypes) TypeID() schema.TypeID          { return TypeChildSchemaTypes }
func (c *ChildSchemaTypes) Factory(id schema.TypeID) (schema.Schema, bool) {
	return NewByTypeID(id)
}

func (c *ChildSchemaTypes) GetRef(name string) schema.Schema {
	switch name {
	case "child":
		return c.child
	case "secondChild":
		return c.secondChild
	}
	return c.BaseSchema.GetRef(name)
}

func (c *ChildSchemaTypes) SetRef(name string, v schema.Schema) {
	switch name {
	case "child":
		c.child = v
	case "secondChild":
		c.secondChild = v
	default:
		c.BaseSchema.SetRef(name, v)
	}
}
