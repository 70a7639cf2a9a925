package gameschema

import "github.com/kungfusheep/schemasync/schema"

// MapSchemaTypes exercises all four map element kinds on one type,
// the map analogue of ArraySchemaTypes (see MapSchemaTypes.hpp in the
// original).
type MapSchemaTypes struct {
	schema.BaseSchema

	mapOfSchemas *schema.MapSchema
	mapOfNumbers *schema.MapSchema
	mapOfStrings *schema.MapSchema
	mapOfInt32   *schema.MapSchema
}

func NewMapSchemaTypes() *MapSchemaTypes {
	m := &MapSchemaTypes{}
	m.Init(m)
	return m
}

func (m *MapSchemaTypes) FieldTable() *schema.FieldTable { return mapSchemaTypesFields }
func (m *MapSchemaTypes) TypeID() schema.TypeID          { return TypeMapSchemaTypes }
func (m *MapSchemaTypes) Factory(id schema.TypeID) (schema.Schema, bool) {
	return NewByTypeID(id)
}

func (m *MapSchemaTypes) GetMap(name string) *schema.MapSchema {
	switch name {
	case "mapOfSchemas":
		return m.mapOfSchemas
	case "mapOfNumbers":
		return m.mapOfNumbers
	case "mapOfStrings":
		return m.mapOfStrings
	case "mapOfInt32":
		return m.mapOfInt32
	}
	return m.BaseSchema.GetMap(name)
}

func (m *MapSchemaTypes) SetMap(name string, v *schema.MapSchema) {
	switch name {
	case "mapOfSchemas":
		m.mapOfSchemas = v
	case "mapOfNumbers":
		m.mapOfNumbers = v
	case "mapOfStrings":
		m.mapOfStrings = v
	case "mapOfInt32":
		m.mapOfInt32 = v
	default:
		m.BaseSchema.SetMap(name, v)
	}
}
