package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kungfusheep/schemasync/gameschema"
	"github.com/kungfusheep/schemasync/patchbuild"
	"github.com/kungfusheep/schemasync/reconcile"
	"github.com/kungfusheep/schemasync/schema"
	"github.com/kungfusheep/schemasync/wire/werr"
)

// TestPrimitiveTypesRoundTrip is spec.md §8 scenario 1: the int8 through
// uint32 fixed-width primitives plus the short string and boolean decode
// onto their matching accessor.
func TestPrimitiveTypesRoundTrip(t *testing.T) {
	buf := patchbuild.New()
	buf.Field(0).Int8(-128)
	buf.Field(1).Uint8(255)
	buf.Field(2).Int16(-32768)
	buf.Field(3).Uint16(65535)
	buf.Field(4).Int32(-2147483648)
	buf.Field(5).Uint32(4294967295)
	buf.Field(20).String("Hello world")
	buf.Field(21).Bool(true)

	p := gameschema.NewPrimitiveTypes()
	d := reconcile.New()
	require.NoError(t, d.Decode(buf.Build(), p))

	require.EqualValues(t, -128, p.GetInt8(""))
	require.EqualValues(t, 255, p.GetUint8(""))
	require.EqualValues(t, -32768, p.GetInt16(""))
	require.EqualValues(t, 65535, p.GetUint16(""))
	require.EqualValues(t, -2147483648, p.GetInt32(""))
	require.EqualValues(t, 4294967295, p.GetUint32(""))
	require.Equal(t, "Hello world", p.GetString(""))
	require.True(t, p.GetBool(""))
}

// TestArrayOfStringsNumbersSchemas is spec.md §8 scenario 2: a State
// instance's three array fields (strings, numbers, Player schemas) all
// populate from one patch.
func TestArrayOfStringsNumbersSchemas(t *testing.T) {
	buf := patchbuild.New()
	buf.Array(0, 3, []patchbuild.ArrayChange{
		{Index: 0, FromIdx: -1, Encode: func(b *patchbuild.Buffer) { b.String("one") }},
		{Index: 1, FromIdx: -1, Encode: func(b *patchbuild.Buffer) { b.String("two") }},
		{Index: 2, FromIdx: -1, Encode: func(b *patchbuild.Buffer) { b.String("three") }},
	})
	buf.Array(1, 3, []patchbuild.ArrayChange{
		{Index: 0, FromIdx: -1, Encode: func(b *patchbuild.Buffer) { b.Number(1) }},
		{Index: 1, FromIdx: -1, Encode: func(b *patchbuild.Buffer) { b.Number(2) }},
		{Index: 2, FromIdx: -1, Encode: func(b *patchbuild.Buffer) { b.Number(3) }},
	})
	buf.Array(2, 1, []patchbuild.ArrayChange{
		{Index: 0, FromIdx: -1, Encode: func(b *patchbuild.Buffer) {
			b.Field(0).Number(100)
			b.Field(1).Number(100)
			b.Field(2).String("Player One")
			b.EndOfStructure()
		}},
	})

	st := gameschema.NewState()
	d := reconcile.New()
	require.NoError(t, d.Decode(buf.Build(), st))

	arrStrings := st.GetArray("arrayOfStrings")
	require.Equal(t, 3, arrStrings.Len())
	s0, _ := arrStrings.At(0)
	s1, _ := arrStrings.At(1)
	s2, _ := arrStrings.At(2)
	require.Equal(t, "one", s0)
	require.Equal(t, "two", s1)
	require.Equal(t, "three", s2)

	arrNumbers := st.GetArray("arrayOfNumbers")
	n0, _ := arrNumbers.At(0)
	n1, _ := arrNumbers.At(1)
	n2, _ := arrNumbers.At(2)
	require.EqualValues(t, 1, n0)
	require.EqualValues(t, 2, n1)
	require.EqualValues(t, 3, n2)

	arrPlayers := st.GetArray("arrayOfPlayers")
	require.Equal(t, 1, arrPlayers.Len())
	el, _ := arrPlayers.At(0)
	player, ok := el.(*gameschema.Player)
	require.True(t, ok)
	require.Equal(t, "Player One", player.GetString("name"))
	require.EqualValues(t, 100, player.GetNumber("x"))
	require.EqualValues(t, 100, player.GetNumber("y"))
}

// TestMapWithSchemaValues is spec.md §8 scenario 3: a map of nested
// schema values keyed by literal string.
func TestMapWithSchemaValues(t *testing.T) {
	buf := patchbuild.New()
	buf.Map(0, 2, []patchbuild.MapChange{
		{NewKey: "one", NewKeyOrdinal: -1, RenameFromOrdinal: -1, Encode: func(b *patchbuild.Buffer) {
			b.Field(0).Number(100)
			b.Field(1).Number(200)
			b.EndOfStructure()
		}},
		{NewKey: "two", NewKeyOrdinal: -1, RenameFromOrdinal: -1, Encode: func(b *patchbuild.Buffer) {
			b.Field(0).Number(300)
			b.Field(1).Number(400)
			b.EndOfStructure()
		}},
	})

	m := gameschema.NewMapSchemaTypes()
	d := reconcile.New()
	require.NoError(t, d.Decode(buf.Build(), m))

	mos := m.GetMap("mapOfSchemas")
	require.Equal(t, 2, mos.Len())

	one, ok := mos.Get("one")
	require.True(t, ok)
	oneChild := one.(*gameschema.IAmAChild)
	require.EqualValues(t, 100, oneChild.GetNumber("x"))
	require.EqualValues(t, 200, oneChild.GetNumber("y"))

	two, ok := mos.Get("two")
	require.True(t, ok)
	twoChild := two.(*gameschema.IAmAChild)
	require.EqualValues(t, 300, twoChild.GetNumber("x"))
	require.EqualValues(t, 400, twoChild.GetNumber("y"))
}

// TestSubtypeInRefField is spec.md §8 scenario 4: a ref field already
// holding a Bot (the concrete subtype) reconciles fields through the
// Bot's own field table, including "power", which Entity's table doesn't
// declare. First-time polymorphic construction would additionally need a
// wire-level type discriminator this spec's distillation never documents
// (see DESIGN.md's decision on this Open Question) — this test exercises
// the documented, steady-state half of §4.3.a Inheritance.
func TestSubtypeInRefField(t *testing.T) {
	holder := gameschema.NewEntityHolder()
	bot := gameschema.NewBot()
	holder.SetRef("occupant", bot)

	buf := patchbuild.New()
	buf.Ref(0, false, func(b *patchbuild.Buffer) {
		b.Field(3).Number(42) // Bot's "power" field, index 3
	})

	d := reconcile.New()
	require.NoError(t, d.Decode(buf.Build(), holder))

	occupant, ok := holder.GetRef("occupant").(*gameschema.Bot)
	require.True(t, ok)
	require.EqualValues(t, 42, occupant.GetNumber("power"))
}

// TestArrayShrinkFiresRemoveBeforeLengthChanges is spec.md §8 scenario 5:
// shrinking arrayOfPlayers from 5 to 2 fires on_remove for indices 2,3,4
// in ascending order before anything else, and the final length is 2.
func TestArrayShrinkFiresRemoveBeforeLengthChanges(t *testing.T) {
	st := gameschema.NewState()
	arr := schema.NewArraySchema()
	for i := 0; i < 5; i++ {
		require.NoError(t, arr.SetAt(i, gameschema.NewPlayer()))
	}
	var removedIndices []int
	arr.OnRemove = func(_ *schema.ArraySchema, _ any, index int) {
		removedIndices = append(removedIndices, index)
	}
	st.SetArray("arrayOfPlayers", arr)

	buf := patchbuild.New()
	buf.Array(2, 2, nil)

	d := reconcile.New()
	require.NoError(t, d.Decode(buf.Build(), st))

	require.Equal(t, []int{2, 3, 4}, removedIndices)
	require.Equal(t, 2, st.GetArray("arrayOfPlayers").Len())
}

// TestMapRenameViaIndexChange is spec.md §8 scenario 6: renaming "a" to
// "c" via INDEX_CHANGE preserves "b"'s position and fires on_change on
// the renamed element.
func TestMapRenameViaIndexChange(t *testing.T) {
	mt := gameschema.NewMapSchemaTypes()
	m := schema.NewMapSchema()
	m.Set("a", float64(1))
	m.Set("b", float64(2))
	var changedKeys []string
	m.OnChange = func(_ *schema.MapSchema, _ any, key string) {
		changedKeys = append(changedKeys, key)
	}
	mt.SetMap("mapOfNumbers", m)

	buf := patchbuild.New()
	buf.Map(1, 1, []patchbuild.MapChange{
		{NewKey: "c", NewKeyOrdinal: -1, RenameFromOrdinal: 0, Encode: func(b *patchbuild.Buffer) {
			b.Number(9)
		}},
	})

	d := reconcile.New()
	require.NoError(t, d.Decode(buf.Build(), mt))

	result := mt.GetMap("mapOfNumbers")
	require.Equal(t, []string{"c", "b"}, result.Keys())
	v, ok := result.Get("c")
	require.True(t, ok)
	require.EqualValues(t, 9, v)
	require.Equal(t, []string{"c"}, changedKeys)
}

// TestEmptyPatchIsNoop covers spec.md §8 "Boundary behaviors".
func TestEmptyPatchIsNoop(t *testing.T) {
	p := gameschema.NewPrimitiveTypes()
	d := reconcile.New()
	require.NoError(t, d.Decode(nil, p))
	require.EqualValues(t, 0, p.GetInt8(""))
}

// TestEndOfStructureOnlyPatchReturnsImmediately covers spec.md §8
// "Patch containing only END_OF_STRUCTURE returns immediately with no
// changes."
func TestEndOfStructureOnlyPatchReturnsImmediately(t *testing.T) {
	var changeCount int
	p := gameschema.NewPrimitiveTypes()
	p.SetOnChange(func(schema.Schema, []schema.DataChange) { changeCount++ })

	d := reconcile.New()
	require.NoError(t, d.Decode([]byte{0xc1}, p))
	require.Equal(t, 0, changeCount)
}

// TestNilOnlyRefClearsFieldAndFiresOnChangeOnce covers spec.md §8: a
// NIL-only ref patch clears the field and fires exactly one on_change.
func TestNilOnlyRefClearsFieldAndFiresOnChangeOnce(t *testing.T) {
	holder := gameschema.NewEntityHolder()
	holder.SetRef("occupant", gameschema.NewEntity())

	var changes []schema.DataChange
	holder.SetOnChange(func(_ schema.Schema, c []schema.DataChange) { changes = append(changes, c...) })

	var removed bool
	holder.GetRef("occupant").SetOnRemove(func(schema.Schema) { removed = true })

	buf := patchbuild.New()
	buf.Ref(0, true, nil)

	d := reconcile.New()
	require.NoError(t, d.Decode(buf.Build(), holder))

	require.Nil(t, holder.GetRef("occupant"))
	require.True(t, removed)
	require.Len(t, changes, 1)
	require.Equal(t, "occupant", changes[0].Field)
}

func TestUnknownFieldIndexIsAnError(t *testing.T) {
	p := gameschema.NewPrimitiveTypes()
	d := reconcile.New()
	err := d.Decode([]byte{250, 1}, p)
	require.ErrorIs(t, err, werr.ErrUnknownField)
}

func TestTruncatedInputIsAnError(t *testing.T) {
	p := gameschema.NewPrimitiveTypes()
	d := reconcile.New()
	// field 2 is int16, needs 2 bytes, only 1 remains.
	err := d.Decode([]byte{2, 0}, p)
	require.ErrorIs(t, err, werr.ErrTruncated)
}

// TestArrayListenerFiresAddBeforeChangeOrdering checks spec §5: within an
// array patch, on_add fires for new elements and on_change for existing
// ones, and a new element constructed mid-loop never retroactively
// becomes a "change".
func TestArrayListenerFiresAddBeforeChangeOrdering(t *testing.T) {
	st := gameschema.NewState()
	arr := schema.NewArraySchema()
	require.NoError(t, arr.SetAt(0, "existing"))
	var adds, changes []int
	arr.OnAdd = func(_ *schema.ArraySchema, _ any, index int) { adds = append(adds, index) }
	arr.OnChange = func(_ *schema.ArraySchema, _ any, index int) { changes = append(changes, index) }
	st.SetArray("arrayOfStrings", arr)

	buf := patchbuild.New()
	buf.Array(0, 2, []patchbuild.ArrayChange{
		{Index: 0, FromIdx: -1, Encode: func(b *patchbuild.Buffer) { b.String("updated") }},
		{Index: 1, FromIdx: -1, Encode: func(b *patchbuild.Buffer) { b.String("new") }},
	})

	d := reconcile.New()
	require.NoError(t, d.Decode(buf.Build(), st))

	require.Equal(t, []int{1}, adds)
	require.Equal(t, []int{0}, changes)
}

func TestDecoderRespectsMaxDepth(t *testing.T) {
	d := reconcile.NewWithLimits(reconcile.Limits{MaxDepth: 1})

	holder := gameschema.NewEntityHolder()
	buf := patchbuild.New()
	buf.Ref(0, false, func(b *patchbuild.Buffer) {
		b.Ref(0, false, func(inner *patchbuild.Buffer) {})
	})

	err := d.Decode(buf.Build(), holder)
	require.ErrorIs(t, err, werr.ErrMaxDepthExceeded)
}
