package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kungfusheep/schemasync/schema"
	"github.com/kungfusheep/schemasync/wire/werr"
)

func TestArraySchemaSetAtAppendAndOverwrite(t *testing.T) {
	a := schema.NewArraySchema()
	require.NoError(t, a.SetAt(0, "a"))
	require.NoError(t, a.SetAt(1, "b"))
	require.NoError(t, a.SetAt(0, "z"))
	require.Equal(t, 2, a.Len())
	v0, _ := a.At(0)
	require.Equal(t, "z", v0)
}

func TestArraySchemaSetAtBeyondSizeIsAnError(t *testing.T) {
	a := schema.NewArraySchema()
	err := a.SetAt(1, "x")
	require.ErrorIs(t, err, werr.ErrInvalidSetAt)
}

func TestArraySchemaShrinkReturnsRemovedInAscendingOrder(t *testing.T) {
	a := schema.NewArraySchema()
	for i, v := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, a.SetAt(i, v))
	}
	removed := a.Shrink(2)
	require.Equal(t, []any{"c", "d", "e"}, removed)
	require.Equal(t, 2, a.Len())
}

func TestArraySchemaShrinkNoopWhenNotSmaller(t *testing.T) {
	a := schema.NewArraySchema()
	require.NoError(t, a.SetAt(0, "a"))
	require.Nil(t, a.Shrink(5))
	require.Equal(t, 1, a.Len())
}

func TestMapSchemaInsertionOrderSurvivesLookups(t *testing.T) {
	m := schema.NewMapSchema()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	require.Equal(t, []string{"a", "b", "c"}, m.Keys())
	require.Equal(t, []string{"a", "b", "c"}, m.Keys(), "Keys must be stable across repeated reads")
}

func TestMapSchemaRenamePreservesPosition(t *testing.T) {
	m := schema.NewMapSchema()
	m.Set("a", 1)
	m.Set("b", 2)
	v, ok := m.Rename("a", "c")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, []string{"c", "b"}, m.Keys())
	require.False(t, m.Has("a"))
}

func TestMapSchemaRenameMissingKeyFails(t *testing.T) {
	m := schema.NewMapSchema()
	_, ok := m.Rename("missing", "new")
	require.False(t, ok)
}

func TestMapSchemaDeleteClosesGapInOrder(t *testing.T) {
	m := schema.NewMapSchema()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	v, ok := m.Delete("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, []string{"a", "c"}, m.Keys())
	require.False(t, m.Has("b"))
}

func TestMapSchemaSetReportsNewness(t *testing.T) {
	m := schema.NewMapSchema()
	require.True(t, m.Set("a", 1))
	require.False(t, m.Set("a", 2))
	v, _ := m.Get("a")
	require.Equal(t, 2, v)
}

func TestArraySchemaListenersFireOnContainer(t *testing.T) {
	a := schema.NewArraySchema()
	var added, changed, removed []int
	a.OnAdd = func(_ *schema.ArraySchema, _ any, i int) { added = append(added, i) }
	a.OnChange = func(_ *schema.ArraySchema, _ any, i int) { changed = append(changed, i) }
	a.OnRemove = func(_ *schema.ArraySchema, _ any, i int) { removed = append(removed, i) }

	a.FireAdd("x", 0)
	a.FireChange("y", 0)
	a.FireRemove("y", 0)

	require.Equal(t, []int{0}, added)
	require.Equal(t, []int{0}, changed)
	require.Equal(t, []int{0}, removed)
}
