package gameschema

import "github.com/kungfusheep/schemasync/schema"

// Entity is the root of the game object inheritance chain: position only.
// Player and Bot embed it and extend its field table, the Go shape for
// the source protocol's class-inheritance-driven schema subtyping (spec
// §9 design note 9).
type Entity struct {
	schema.BaseSchema

	x, y float64
}

func NewEntity() *Entity {
	e := &Entity{}
	e.Init(e)
	return e
}

func (e *Entity) FieldTable() *schema.FieldTable { return entityFields }
func (e *Entity) TypeID() schema.TypeID          { return TypeEntity }
func (e *Entity) Factory(id schema.TypeID) (schema.Schema, bool) {
	return NewByTypeID(id)
}

func (e *Entity) GetNumber(name string) float64 {
	switch name {
	case "x":
		return e.x
	case "y":
		return e.y
	}
	return e.BaseSchema.GetNumber(name)
}

func (e *Entity) SetNumber(name string, v float64) {
	switch name {
	case "x":
		e.x = v
	case "y":
		e.y = v
	default:
		e.BaseSchema.SetNumber(name, v)
	}
}
