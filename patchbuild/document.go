package patchbuild

// ArrayChange describes one per-slot record inside an array field patch
// (spec §4.3.b step 2-6): the target index, an optional "moved from"
// index, and either a removal or a payload-writing callback.
type ArrayChange struct {
	Index    int
	FromIdx  int // -1 means no INDEX_CHANGE
	Remove   bool
	Encode   func(*Buffer) // writes the payload; ignored when Remove is true
}

// Array appends a full array field record: index byte, new_length,
// num_changes, then each change in order (spec §6 "array record").
func (b *Buffer) Array(fieldIndex uint8, newLength int, changes []ArrayChange) *Buffer {
	b.Field(fieldIndex)
	b.Number(float64(newLength))
	b.Number(float64(len(changes)))
	for _, c := range changes {
		b.Number(float64(c.Index))
		if c.FromIdx >= 0 {
			b.IndexChange()
			b.Number(float64(c.FromIdx))
		}
		if c.Remove {
			b.Nil()
			continue
		}
		c.Encode(b)
	}
	return b
}

// MapChange describes one per-key record inside a map field patch (spec
// §4.3.c): a new key (written as a literal string or a previous-key
// ordinal), an optional rename source ordinal, and either a removal or a
// payload-writing callback.
type MapChange struct {
	// Exactly one of NewKey/NewKeyOrdinal is used: NewKeyOrdinal >= 0
	// means "write the new key as a map-index form against PrevKeys";
	// otherwise NewKey is written as a literal short string.
	NewKey        string
	NewKeyOrdinal int // -1 means "write NewKey as a literal string"

	RenameFromOrdinal int // -1 means no INDEX_CHANGE
	Remove            bool
	Encode            func(*Buffer)
}

// Map appends a full map field record: index byte, length, then each
// change in order (spec §6 "map record").
func (b *Buffer) Map(fieldIndex uint8, length int, changes []MapChange) *Buffer {
	b.Field(fieldIndex)
	b.Number(float64(length))
	for _, c := range changes {
		if c.RenameFromOrdinal >= 0 {
			// A map INDEX_CHANGE is the sentinel alone, with no redundant
			// second byte (unlike the array form IndexChange writes).
			b.Uint8(0xd4)
			b.Number(float64(c.RenameFromOrdinal))
		}
		if c.NewKeyOrdinal >= 0 {
			b.Number(float64(c.NewKeyOrdinal))
		} else {
			b.String(c.NewKey)
		}
		if c.Remove {
			b.Nil()
			continue
		}
		c.Encode(b)
	}
	return b
}

// Ref appends a full ref field record: either NIL, or the nested
// structure written by encode followed by END_OF_STRUCTURE (spec §6
// "ref record").
func (b *Buffer) Ref(fieldIndex uint8, isNil bool, encode func(*Buffer)) *Buffer {
	b.Field(fieldIndex)
	if isNil {
		return b.Nil()
	}
	encode(b)
	return b.EndOfStructure()
}
