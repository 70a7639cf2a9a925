package gameschema

import "github.com/kungfusheep/schemasync/schema"

// IAmAChild is a standalone position type used only as a ref/container
// element elsewhere (ChildSchemaTypes, ArraySchemaTypes, MapSchemaTypes).
// It is shaped identically to Entity but is a distinct schema type with
// its own TypeID — the two must never be confused by the factory.
type IAmAChild struct {
	schema.BaseSchema

	x, y float64
}

func NewIAmAChild() *IAmAChild {
	c := &IAmAChild{}
	c.Init(c)
	return c
}

func (c *IAmAChild) FieldTable() *schema.FieldTable { return iAmAChildFields }
func (c *IAmAChild) TypeID() schema.TypeID          { return TypeIAmAChild }
func (c *IAmAChild) Factory(id schema.TypeID) (schema.Schema, bool) {
	return NewByTypeID(id)
}

func (c *IAmAChild) GetNumber(name string) float64 {
	switch name {
	case "x":
		return c.x
	case "y":
		return c.y
	}
	return c.BaseSchema.GetNumber(name)
}

func (c *IAmAChild) SetNumber(name string, v float64) {
	switch name {
	case "x":
		c.x = v
	case "y":
		c.y = v
	default:
		c.BaseSchema.SetNumber(name, v)
	}
}
