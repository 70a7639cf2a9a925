package gameschema

import "github.com/kungfusheep/schemasync/schema"

// ArraySchemaTypes exercises all four array element kinds on one type:
// nested schema, tagged number, string, and fixed int32 — broader
// container coverage than the single mixed State fixture spec.md's
// scenarios sketch (see ArraySchemaTypes.hpp in the original).
type ArraySchemaTypes struct {
	schema.BaseSchema

	arrayOfSchemas *schema.ArraySchema
	arrayOfNumbers *schema.ArraySchema
	arrayOfStrings *schema.ArraySchema
	arrayOfInt32   *schema.ArraySchema
}

func NewArraySchemaTypes() *ArraySchemaTypes {
	a := &ArraySchemaTypes{}
	a.Init(a)
	return a
}

func (a *ArraySchemaTypes) FieldTable() *schema.FieldTable { return arraySchemaTypesFields }
func (a *ArraySchemaTypes) TypeID() schema.TypeID          { return TypeArraySchemaTypes }
func (a *ArraySchemaTypes) Factory(id schema.TypeID) (schema.Schema, bool) {
	return NewByTypeID(id)
}

func (a *ArraySchemaTypes) GetArray(name string) *schema.ArraySchema {
	switch name {
	case "arrayOfSchemas":
		return a.arrayOfSchemas
	case "arrayOfNumbers":
		return a.arrayOfNumbers
	case "arrayOfStrings":
		return a.arrayOfStrings
	case "arrayOfInt32":
		return a.arrayOfInt32
	}
	return a.BaseSchema.GetArray(name)
}

func (a *ArraySchemaTypes) SetArray(name string, v *schema.ArraySchema) {
	switch name {
	case "arrayOfSchemas":
		a.arrayOfSchemas = v
	case "arrayOfNumbers":
		a.arrayOfNumbers = v
	case "arrayOfStrings":
		a.arrayOfStrings = v
	case "arrayOfInt32":
		a.arrayOfInt32 = v
	default:
		a.BaseSchema.SetArray(name, v)
	}
}
