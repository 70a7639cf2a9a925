// Package reconcile implements the client-side reconciler (spec §4.3): the
// recursive walk that applies one patch to a schema instance, classifying
// every touched ref/array/map/primitive field into add/change/remove and
// firing the corresponding listener in wire order. It is the only package
// that knows how a patch's bytes map onto a schema tree — wire knows
// nothing about fields, and schema knows nothing about patches.
package reconcile

import (
	"go.uber.org/zap"

	"github.com/pkg/errors"

	"github.com/kungfusheep/schemasync/schema"
	"github.com/kungfusheep/schemasync/wire"
	"github.com/kungfusheep/schemasync/wire/werr"
)

// Limits bounds recursive descent into nested ref/array/map structures, the
// reconciler's analogue of glint's DecodeLimits guarding against memory
// exhaustion from adversarial input.
type Limits struct {
	MaxDepth uint // 0 means unlimited
}

// DefaultLimits caps recursion well above any legitimate schema nesting
// depth while still bounding a hostile or corrupt patch.
var DefaultLimits = Limits{MaxDepth: 128}

// Decoder applies patches to schema instances. It is safe for reuse across
// many Decode calls but, like wire.Iterator, is not safe for concurrent use
// on the same call.
type Decoder struct {
	limits Limits
	log    *zap.Logger
}

// New constructs a Decoder with DefaultLimits and a no-op logger.
func New() *Decoder {
	return NewWithLimits(DefaultLimits)
}

// NewWithLimits constructs a Decoder with custom recursion bounds.
func NewWithLimits(limits Limits) *Decoder {
	return &Decoder{limits: limits, log: zap.NewNop()}
}

// WithLogger attaches a structured logger for patch-level tracing. Field-
// level decode stays silent: every error already aborts and carries its
// own context (spec §7), so per-field logging would only duplicate it.
func (d *Decoder) WithLogger(log *zap.Logger) *Decoder {
	if log != nil {
		d.log = log
	}
	return d
}

// Decode applies patch to root, recursively reconciling every ref, array,
// and map field it touches, and firing on_change/on_remove listeners as
// each instance's fields settle (spec §4.3, §5).
func (d *Decoder) Decode(patch []byte, root schema.Schema) error {
	d.log.Debug("decoding patch", zap.Int("bytes", len(patch)))
	it := wire.NewIterator(patch)
	if err := d.decode(it, root, 0); err != nil {
		return err
	}
	if it.Len() > 0 {
		d.log.Debug("patch had trailing bytes after root structure closed", zap.Int("remaining", it.Len()))
	}
	return nil
}

// decode consumes field records from it until END_OF_STRUCTURE or the
// buffer is exhausted, dispatching each to the matching field-kind
// handler, then fires instance's on_change with the accumulated field list
// (spec §4.3 steps 1-2).
func (d *Decoder) decode(it *wire.Iterator, instance schema.Schema, depth int) error {
	if d.limits.MaxDepth > 0 && uint(depth) > d.limits.MaxDepth {
		return errors.Wrapf(werr.ErrMaxDepthExceeded, "depth %d", depth)
	}

	table := instance.FieldTable()
	var changes []schema.DataChange

	for {
		b, ok := it.PeekByte()
		if !ok {
			break
		}
		if b == wire.EndOfStructure {
			it.Skip(1)
			break
		}

		index, err := it.Uint8()
		if err != nil {
			return err
		}
		field, ok := table.Field(index)
		if !ok {
			return errors.Wrapf(werr.ErrUnknownField, "index %d", index)
		}

		var changed bool
		switch field.Kind {
		case schema.KindRef:
			err = d.decodeRef(it, instance, field, depth)
			changed = err == nil
		case schema.KindArray:
			changed, err = d.decodeArray(it, instance, field, depth)
		case schema.KindMap:
			changed, err = d.decodeMap(it, instance, field, depth)
		default:
			err = schema.DecodePrimitiveField(it, field.Kind, instance, field.Name)
			changed = err == nil
		}
		if err != nil {
			return errors.Wrapf(err, "field %q", field.Name)
		}
		if changed {
			changes = append(changes, schema.DataChange{Field: field.Name})
		}
	}

	instance.NotifyChange(changes)
	return nil
}

// decodeRef applies one ref field record: NIL clears it (notifying the
// outgoing child's removal), otherwise the existing or freshly constructed
// child is recursively decoded in place (spec §4.3.a).
func (d *Decoder) decodeRef(it *wire.Iterator, instance schema.Schema, field schema.FieldMeta, depth int) error {
	if b, ok := it.PeekByte(); ok && b == wire.Nil {
		it.Skip(1)
		if old := instance.GetRef(field.Name); old != nil {
			old.NotifyRemove()
		}
		instance.SetRef(field.Name, nil)
		return nil
	}

	child := instance.GetRef(field.Name)
	if child == nil {
		built, ok := instance.Factory(field.ChildType)
		if !ok {
			return errors.Wrapf(werr.ErrFactoryMiss, "type %v", field.ChildType)
		}
		child = built
		instance.SetRef(field.Name, child)
	}
	return d.decode(it, child, depth+1)
}

// decodeArray applies one array field record in full: new_length, then
// shrink-before-loop, then num_changes per-slot records each classified
// into add/change/remove (spec §4.3.b). Returns whether the field should
// be reported as changed to the owning instance (num_changes > 0).
func (d *Decoder) decodeArray(it *wire.Iterator, instance schema.Schema, field schema.FieldMeta, depth int) (bool, error) {
	newLenF, err := it.Number()
	if err != nil {
		return false, err
	}
	newLen := int(newLenF)

	numChangesF, err := it.Number()
	if err != nil {
		return false, err
	}
	numChanges := int(numChangesF)

	arr := instance.GetArray(field.Name)
	if arr == nil {
		arr = schema.NewArraySchema()
		instance.SetArray(field.Name, arr)
	}
	isSchemaChild := field.HasChildType

	// Every removal fires before the array is truncated, and truncation
	// happens before any add/change in this patch.
	var removed []any
	if newLen < arr.Len() {
		removed = append([]any(nil), arr.Elements()[newLen:]...)
	}
	for i, el := range removed {
		idx := newLen + i
		arr.FireRemove(el, idx)
		if isSchemaChild {
			if sch, ok := el.(schema.Schema); ok && sch != nil {
				sch.NotifyRemove()
			}
		}
	}
	arr.Shrink(newLen)

	for c := 0; c < numChanges; c++ {
		newIndexF, err := it.Number()
		if err != nil {
			return false, err
		}
		newIndex := int(newIndexF)

		hasIndexChange := false
		fromIndex := -1
		if b, ok := it.PeekByte(); ok && b == wire.IndexChange {
			it.Skip(1)
			// The sentinel is followed by a redundant u8 kept for wire
			// compatibility.
			if _, err := it.Uint8(); err != nil {
				return false, err
			}
			hasIndexChange = true
			fromIndexF, err := it.Number()
			if err != nil {
				return false, err
			}
			fromIndex = int(fromIndexF)
		}

		_, existsAtNewIndex := arr.At(newIndex)
		isNew := (!hasIndexChange && !existsAtNewIndex) || (hasIndexChange && fromIndex == -1)

		var element any
		switch {
		case isNew && isSchemaChild:
			built, ok := instance.Factory(field.ChildType)
			if !ok {
				return false, errors.Wrapf(werr.ErrFactoryMiss, "type %v", field.ChildType)
			}
			element = built
		case hasIndexChange && fromIndex >= 0:
			element, _ = arr.At(fromIndex)
		default:
			element, _ = arr.At(newIndex)
		}

		if b, ok := it.PeekByte(); ok && b == wire.Nil {
			it.Skip(1)
			arr.FireRemove(element, newIndex)
			if isSchemaChild {
				if sch, ok := element.(schema.Schema); ok && sch != nil {
					sch.NotifyRemove()
				}
			}
			continue
		}

		if isSchemaChild {
			sch, _ := element.(schema.Schema)
			if sch == nil {
				built, ok := instance.Factory(field.ChildType)
				if !ok {
					return false, errors.Wrapf(werr.ErrFactoryMiss, "type %v", field.ChildType)
				}
				sch = built
			}
			if err := d.decode(it, sch, depth+1); err != nil {
				return false, err
			}
			element = sch
		} else {
			v, err := schema.DecodePrimitiveElement(it, field.ChildKind)
			if err != nil {
				return false, err
			}
			element = v
		}

		if err := arr.SetAt(newIndex, element); err != nil {
			return false, err
		}

		if isNew {
			arr.FireAdd(element, newIndex)
		} else {
			arr.FireChange(element, newIndex)
		}
	}

	return numChanges > 0, nil
}

// decodeMap applies one map field record: length, then that many per-key
// records, each resolved against a snapshot of the map's previous
// insertion order so INDEX_CHANGE ordinals mean what they meant when the
// patch was built (spec §4.3.c).
func (d *Decoder) decodeMap(it *wire.Iterator, instance schema.Schema, field schema.FieldMeta, depth int) (bool, error) {
	lengthF, err := it.Number()
	if err != nil {
		return false, err
	}
	length := int(lengthF)

	m := instance.GetMap(field.Name)
	if m == nil {
		m = schema.NewMapSchema()
		instance.SetMap(field.Name, m)
	}
	previousKeys := m.Keys()
	isSchemaChild := field.HasChildType

	for c := 0; c < length; c++ {
		if it.Done() {
			break
		}
		if b, ok := it.PeekByte(); ok && b == wire.EndOfStructure {
			break
		}

		hasIndexChange := false
		previousKey := ""
		if b, ok := it.PeekByte(); ok && b == wire.IndexChange {
			it.Skip(1)
			hasIndexChange = true
			ord, err := readMapOrdinal(it, previousKeys)
			if err != nil {
				return false, err
			}
			if ord >= 0 {
				previousKey = previousKeys[ord]
			}
		}

		var newKey string
		if it.PeekIsString() {
			newKey, err = it.String()
			if err != nil {
				return false, err
			}
		} else {
			ord, err := readMapOrdinal(it, previousKeys)
			if err != nil {
				return false, err
			}
			if ord < 0 {
				return false, errors.Wrap(werr.ErrInvalidMapIndex, "map-index-form key cannot use the no-previous-entry sentinel")
			}
			newKey = previousKeys[ord]
		}

		isNew := (!hasIndexChange && !m.Has(newKey)) || (hasIndexChange && previousKey == "")

		var element any
		switch {
		case isNew && isSchemaChild:
			built, ok := instance.Factory(field.ChildType)
			if !ok {
				return false, errors.Wrapf(werr.ErrFactoryMiss, "type %v", field.ChildType)
			}
			element = built
		case hasIndexChange:
			element, _ = m.Get(previousKey)
		default:
			element, _ = m.Get(newKey)
		}

		if b, ok := it.PeekByte(); ok && b == wire.Nil {
			it.Skip(1)
			deleteKey := newKey
			if hasIndexChange {
				deleteKey = previousKey
			}
			if isSchemaChild {
				if sch, ok := element.(schema.Schema); ok && sch != nil {
					sch.NotifyRemove()
				}
			}
			m.Delete(deleteKey)
			m.FireRemove(element, newKey)
			continue
		}

		if hasIndexChange && previousKey != newKey {
			m.Rename(previousKey, newKey)
		}

		if isSchemaChild {
			sch, _ := element.(schema.Schema)
			if sch == nil {
				built, ok := instance.Factory(field.ChildType)
				if !ok {
					return false, errors.Wrapf(werr.ErrFactoryMiss, "type %v", field.ChildType)
				}
				sch = built
			}
			if err := d.decode(it, sch, depth+1); err != nil {
				return false, err
			}
			element = sch
		} else {
			v, err := schema.DecodePrimitiveElement(it, field.ChildKind)
			if err != nil {
				return false, err
			}
			element = v
		}

		m.Set(newKey, element)

		if isNew {
			m.FireAdd(element, newKey)
		} else {
			m.FireChange(element, newKey)
		}
	}

	return length > 0, nil
}

// readMapOrdinal reads a previous-key ordinal. A negative value is the
// wire's "no previous entry" sentinel — decodeMap's INDEX_CHANGE-ordinal
// caller treats it as such, the same way decodeArray treats fromIndex ==
// -1 — and is returned as -1 rather than an error; any other ordinal past
// the end of previousKeys is still invalid.
func readMapOrdinal(it *wire.Iterator, previousKeys []string) (int, error) {
	ordF, err := it.Number()
	if err != nil {
		return 0, err
	}
	ord := int(ordF)
	if ord < 0 {
		return -1, nil
	}
	if ord >= len(previousKeys) {
		return 0, errors.Wrapf(werr.ErrInvalidMapIndex, "ordinal %d against %d previous keys", ord, len(previousKeys))
	}
	return ord, nil
}
