package serial

import (
	"encoding/json"
	"math"

	"github.com/antihax/optional"
)

// Kind says how the engine maps a field's raw value.
type Kind int

const (
	// KindPlain values are copied as they are.
	KindPlain Kind = iota
	// KindEntity values are decoded recursively as a single nested entity.
	KindEntity
	// KindEntityList values must be lists whose elements are nested entities.
	KindEntityList
	// KindEnum values are looked up in a closed value set.
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindEntity:
		return "entity"
	case KindEntityList:
		return "entity list"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Field describes one named member of an entity and is bound to the storage
// of that member on a specific instance.
type Field struct {
	Name string
	Kind Kind

	required bool
	nullable bool
	decode   func(raw any) error
	encode   func() (raw any, emit bool, err error)
	reset    func()
}

// Required returns a copy of f whose key must be present when decoding. The
// value must also be non-null unless the field is nullable, in which case an
// unset value is encoded as null.
func (f Field) Required() Field {
	f.required = true
	return f
}

func zero[T any](dst *T) func() {
	return func() {
		var v T
		*dst = v
	}
}

func plain[T any](name string, dst *T, want string, from func(any) (T, bool), to func(T) (any, bool)) Field {
	return Field{
		Name: name,
		Kind: KindPlain,
		decode: func(raw any) error {
			v, ok := from(raw)
			if !ok {
				return &TypeMismatchError{Want: want, Got: describe(raw)}
			}
			*dst = v
			return nil
		},
		encode: func() (any, bool, error) {
			raw, emit := to(*dst)
			return raw, emit, nil
		},
		reset: zero(dst),
	}
}

func always[T any](v T) (any, bool) { return v, true }

// String binds a JSON string.
func String(name string, dst *string) Field {
	return plain(name, dst, "string", asString, always[string])
}

// Int binds an integral JSON number.
func Int(name string, dst *int) Field {
	return plain(name, dst, "integer", asInt, always[int])
}

// Bool binds a JSON boolean.
func Bool(name string, dst *bool) Field {
	return plain(name, dst, "boolean", asBool, always[bool])
}

// Strings binds a list of JSON strings. A nil slice is left out when encoding.
func Strings(name string, dst *[]string) Field {
	return plain(name, dst, "list of strings", asStrings, func(v []string) (any, bool) {
		if v == nil {
			return nil, false
		}
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	})
}

// StringMap binds a JSON object whose values are all strings, such as a
// locale-to-text map. A nil map is left out when encoding.
func StringMap[M ~map[string]string](name string, dst *M) Field {
	return plain(name, dst, "object of strings", asStringMap[M], func(m M) (any, bool) {
		if m == nil {
			return nil, false
		}
		return stringMapRaw(m), true
	})
}

// StringMaps binds a list of string-valued JSON objects.
func StringMaps[M ~map[string]string](name string, dst *[]M) Field {
	return plain(name, dst, "list of objects of strings", func(raw any) ([]M, bool) {
		list, ok := raw.([]any)
		if !ok {
			return nil, false
		}
		out := make([]M, len(list))
		for i, item := range list {
			m, ok := asStringMap[M](item)
			if !ok {
				return nil, false
			}
			out[i] = m
		}
		return out, true
	}, func(v []M) (any, bool) {
		if v == nil {
			return nil, false
		}
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = stringMapRaw(m)
		}
		return out, true
	})
}

// OptionalString binds a string that may be null. Unset values are left out
// when encoding, or written as null if the field is required.
func OptionalString(name string, dst *optional.String) Field {
	f := plain(name, dst, "string", func(raw any) (optional.String, bool) {
		s, ok := asString(raw)
		if !ok {
			return optional.EmptyString(), false
		}
		return optional.NewString(s), true
	}, func(v optional.String) (any, bool) {
		if !v.IsSet() {
			return nil, false
		}
		return v.Value(), true
	})
	f.nullable = true
	return f
}

// OptionalInt binds an integer that may be null.
func OptionalInt(name string, dst *optional.Int) Field {
	f := plain(name, dst, "integer", func(raw any) (optional.Int, bool) {
		n, ok := asInt(raw)
		if !ok {
			return optional.EmptyInt(), false
		}
		return optional.NewInt(n), true
	}, func(v optional.Int) (any, bool) {
		if !v.IsSet() {
			return nil, false
		}
		return v.Value(), true
	})
	f.nullable = true
	return f
}

func asString(raw any) (string, bool) {
	s, ok := raw.(string)
	return s, ok
}

func asBool(raw any) (bool, bool) {
	b, ok := raw.(bool)
	return b, ok
}

func asInt(raw any) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int64ToInt(n)
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int64ToInt(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

func int64ToInt(n int64) (int, bool) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

// floatToInt accepts integral values such as 100.0 or 1e2 that fit in an int.
func floatToInt(n float64) (int, bool) {
	if math.IsNaN(n) || n != math.Trunc(n) || n < math.MinInt || n >= math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func asStrings(raw any) ([]string, bool) {
	list, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

func asStringMap[M ~map[string]string](raw any) (M, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(M, len(obj))
	for k, v := range obj {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[k] = s
	}
	return out, true
}

func stringMapRaw[M ~map[string]string](m M) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
