// Package rawmap gives the normalizers typed access to loosely-shaped JSON
// payloads. Upstream feeds vary field names, nest objects inconsistently, and
// switch between scalars and objects for the same key, so games are decoded
// to map[string]any and walked with explicit, ordered lookups instead of
// struct tags.
package rawmap

// Object is one decoded JSON object.
type Object map[string]any

// AsObject converts a decoded JSON value into an Object when it is one.
func AsObject(value any) (Object, bool) {
	switch v := value.(type) {
	case Object:
		return v, true
	case map[string]any:
		return Object(v), true
	default:
		return nil, false
	}
}

// Value returns the raw value for a key when present and non-nil.
func (o Object) Value(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Object returns the nested object stored under key.
func (o Object) Object(key string) (Object, bool) {
	v, ok := o.Value(key)
	if !ok {
		return nil, false
	}
	return AsObject(v)
}

// List returns the value under key as a slice, wrapping a single object in a
// one-element slice. Feeds collapse single-game schedules to a bare object.
func (o Object) List(key string) ([]any, bool) {
	v, ok := o.Value(key)
	if !ok {
		return nil, false
	}
	switch item := v.(type) {
	case []any:
		return item, true
	case map[string]any:
		return []any{item}, true
	default:
		return nil, false
	}
}

// String returns the value under key as a non-empty string.
func (o Object) String(key string) (string, bool) {
	v, ok := o.Value(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// FirstValue walks keys in priority order and returns the first present,
// non-nil value.
func (o Object) FirstValue(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := o.Value(key); ok {
			return v, true
		}
	}
	return nil, false
}

// FirstString walks keys in priority order and returns the first non-empty
// string value.
func (o Object) FirstString(keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := o.String(key); ok {
			return s, true
		}
	}
	return "", false
}
