package schema

// DataChange names one field that changed during a decode call. The value
// itself is not carried on the record — callers read it back through the
// instance's typed accessor, per spec §3 ("value is read via the typed
// accessor").
type DataChange struct {
	Field string
}
