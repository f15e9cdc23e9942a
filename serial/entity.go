package serial

import "strconv"

// Entity is implemented by every type the engine can build from a JSON tree.
//
// Fields returns the type's members in declaration order, bound to the
// receiver. Any member holding another entity, or a list of entities, must be
// declared with One or Many; everything else is plain data.
type Entity interface {
	Fields() []Field
}

// entityPtr lets generic helpers allocate a T and still call Fields on *T.
type entityPtr[T any] interface {
	*T
	Entity
}

// One binds a member that holds a single nested entity.
func One[T any, P entityPtr[T]](name string, dst *T) Field {
	return Field{
		Name: name,
		Kind: KindEntity,
		decode: func(raw any) error {
			var v T
			if err := DecodeInto(raw, P(&v)); err != nil {
				return err
			}
			*dst = v
			return nil
		},
		encode: func() (any, bool, error) {
			raw, err := Encode(P(dst))
			if err != nil {
				return nil, false, err
			}
			return raw, true, nil
		},
		reset: zero(dst),
	}
}

// Many binds a member that holds an ordered list of nested entities. A nil
// slice is left out when encoding.
func Many[T any, P entityPtr[T]](name string, dst *[]T) Field {
	return Field{
		Name: name,
		Kind: KindEntityList,
		decode: func(raw any) error {
			list, ok := raw.([]any)
			if !ok {
				return &TypeMismatchError{Want: "list", Got: describe(raw)}
			}
			out := make([]T, len(list))
			for i, item := range list {
				if err := DecodeInto(item, P(&out[i])); err != nil {
					return atPath(err, index(i))
				}
			}
			*dst = out
			return nil
		},
		encode: func() (any, bool, error) {
			if *dst == nil {
				return nil, false, nil
			}
			out := make([]any, len(*dst))
			for i := range *dst {
				raw, err := Encode(P(&(*dst)[i]))
				if err != nil {
					return nil, false, atPath(err, index(i))
				}
				out[i] = raw
			}
			return out, true, nil
		},
		reset: zero(dst),
	}
}

func index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// Decode builds a T from a JSON tree.
func Decode[T any, P entityPtr[T]](raw any) (T, error) {
	var v T
	err := DecodeInto(raw, P(&v))
	return v, err
}

// DecodeInto fills dst from a JSON object. Keys that dst does not declare are
// ignored. Every declared member is overwritten, so missing and null keys
// reset the member to its zero value. A required key must be present, and
// must be non-null unless the field is nullable.
func DecodeInto(raw any, dst Entity) error {
	obj, ok := raw.(map[string]any)
	if !ok {
		return &TypeMismatchError{Want: "object", Got: describe(raw)}
	}
	for _, f := range dst.Fields() {
		v, present := obj[f.Name]
		if !present || v == nil {
			if f.required && (!present || !f.nullable) {
				return &TypeMismatchError{Path: f.Name, Want: "required " + f.Kind.String() + " value", Got: missing(present)}
			}
			f.reset()
			continue
		}
		if err := f.decode(v); err != nil {
			return atPath(err, f.Name)
		}
	}
	return nil
}

func missing(present bool) string {
	if present {
		return "null"
	}
	return "nothing"
}

// Encode turns src into a JSON tree. Unset optional members and nil lists or
// maps are left out, except that required nullable members are written as
// null. Decoding the result of a decoded value gives back an equal value.
func Encode(src Entity) (map[string]any, error) {
	fields := src.Fields()
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		raw, emit, err := f.encode()
		if err != nil {
			return nil, atPath(err, f.Name)
		}
		switch {
		case emit:
			out[f.Name] = raw
		case f.required && f.nullable:
			out[f.Name] = nil
		}
	}
	return out, nil
}
