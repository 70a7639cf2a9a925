package gameschema

import "github.com/kungfusheep/schemasync/schema"

// State is the root schema of the example game: a mix of primitive and
// schema-typed containers on one instance, the shape spec.md's scenarios
// 2 and 3 decode literal patches against (arrayOfStrings/arrayOfNumbers/
// arrayOfPlayers, mapOfStrings/mapOfNumbers/mapOfPlayers).
type State struct {
	schema.BaseSchema

	arrayOfStrings *schema.ArraySchema
	arrayOfNumbers *schema.ArraySchema
	arrayOfPlayers *schema.ArraySchema

	mapOfStrings *schema.MapSchema
	mapOfNumbers *schema.MapSchema
	mapOfPlayers *schema.MapSchema
}

func NewState() *State {
	s := &State{}
	s.Init(s)
	return s
}

func (s *State) FieldTable() *schema.FieldTable { return stateFields }
func (s *State) TypeID() schema.TypeID          { return TypeState }
func (s *State) Factory(id schema.TypeID) (schema.Schema, bool) {
	return NewByTypeID(id)
}

func (s *State) GetArray(name string) *schema.ArraySchema {
	switch name {
	case "arrayOfStrings":
		return s.arrayOfStrings
	case "arrayOfNumbers":
		return s.arrayOfNumbers
	case "arrayOfPlayers":
		return s.arrayOfPlayers
	}
	return s.BaseSchema.GetArray(name)
}

func (s *State) SetArray(name string, v *schema.ArraySchema) {
	switch name {
	case "arrayOfStrings":
		s.arrayOfStrings = v
	case "arrayOfNumbers":
		s.arrayOfNumbers = v
	case "arrayOfPlayers":
		s.arrayOfPlayers = v
	default:
		s.BaseSchema.SetArray(name, v)
	}
}

func (s *State) GetMap(name string) *schema.MapSchema {
	switch name {
	case "mapOfStrings":
		return s.mapOfStrings
	case "mapOfNumbers":
		return s.mapOfNumbers
	case "mapOfPlayers":
		return s.mapOfPlayers
	}
	return s.BaseSchema.GetMap(name)
}

func (s *State) SetMap(name string, v *schema.MapSchema) {
	switch name {
	case "mapOfStrings":
		s.mapOfStrings = v
	case "mapOfNumbers":
		s.mapOfNumbers = v
	case "mapOfPlayers":
		s.mapOfPlayers = v
	default:
		s.BaseSchema.SetMap(name, v)
	}
}
