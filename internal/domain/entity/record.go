package entity

// Record is a stored or submitted document of unknown shape: anything written under an
// earlier schema, a request body, or a raw database document. Only the normalizer reads
// fields out of a Record; everything past it works with the canonical types.
type Record map[string]interface{}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Has reports whether key is present, even with a nil value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}
