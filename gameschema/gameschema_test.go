package gameschema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kungfusheep/schemasync/gameschema"
	"github.com/kungfusheep/schemasync/schema"
)

func TestBotInheritsEntityPositionAccessors(t *testing.T) {
	b := gameschema.NewBot()
	b.SetNumber("x", 1)
	b.SetNumber("y", 2)
	b.SetNumber("power", 3)
	b.SetString("name", "Gort")

	require.EqualValues(t, 1, b.GetNumber("x"))
	require.EqualValues(t, 2, b.GetNumber("y"))
	require.EqualValues(t, 3, b.GetNumber("power"))
	require.Equal(t, "Gort", b.GetString("name"))
}

func TestFactoryIsTotalOverDeclaredTypeIDs(t *testing.T) {
	for _, id := range []schema.TypeID{
		gameschema.TypeEntity,
		gameschema.TypePlayer,
		gameschema.TypeBot,
		gameschema.TypeIAmAChild,
		gameschema.TypePrimitiveTypes,
		gameschema.TypeChildSchemaTypes,
		gameschema.TypeArraySchemaTypes,
		gameschema.TypeMapSchemaTypes,
		gameschema.TypeState,
		gameschema.TypeEntityHolder,
	} {
		inst, ok := gameschema.NewByTypeID(id)
		require.True(t, ok, "type id %v", id)
		require.NotNil(t, inst)
	}
}

func TestFactoryMissForUnknownTypeID(t *testing.T) {
	_, ok := gameschema.NewByTypeID(schema.TypeID(9999))
	require.False(t, ok)
}

func TestChildSchemaTypesSiblingRefsAreIndependent(t *testing.T) {
	c := gameschema.NewChildSchemaTypes()
	a := gameschema.NewIAmAChild()
	a.SetNumber("x", 1)
	b := gameschema.NewIAmAChild()
	b.SetNumber("x", 2)

	c.SetRef("child", a)
	c.SetRef("secondChild", b)

	require.EqualValues(t, 1, c.GetRef("child").GetNumber("x"))
	require.EqualValues(t, 2, c.GetRef("secondChild").GetNumber("x"))
}

func TestBaseSchemaDefaultsAreZeroValued(t *testing.T) {
	var b schema.BaseSchema
	require.Equal(t, "", b.GetString("anything"))
	require.Equal(t, false, b.GetBool("anything"))
	require.Nil(t, b.GetRef("anything"))
	require.Nil(t, b.GetArray("anything"))
	require.Nil(t, b.GetMap("anything"))
	_, ok := b.Factory(schema.TypeID(1))
	require.False(t, ok)
}
