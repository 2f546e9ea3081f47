package formenc

// Values is an insertion-ordered string-keyed mapping. Canvas field order
// follows the order parameters were assembled in, and Go's builtin maps
// randomize iteration, so DTOs build their nested payloads out of Values
// when the relative order of emitted fields matters.
type Values struct {
	keys []string
	m    map[string]any
}

// NewValues returns an empty ordered mapping.
func NewValues() *Values {
	return &Values{m: make(map[string]any)}
}

// Set assigns val under key, appending the key to the iteration order if it
// is new. Returns the receiver so assembly can be chained.
func (v *Values) Set(key string, val any) *Values {
	if _, ok := v.m[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.m[key] = val
	return v
}

// Get returns the value stored under key.
func (v *Values) Get(key string) (any, bool) {
	val, ok := v.m[key]
	return val, ok
}

// Delete removes key from the mapping, preserving the order of the rest.
func (v *Values) Delete(key string) {
	if _, ok := v.m[key]; !ok {
		return
	}
	delete(v.m, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.keys)
}

// Keys returns the keys in insertion order.
func (v *Values) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}
