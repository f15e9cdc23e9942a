package serial

// EnumSet is the closed set of raw string values an enum type accepts.
type EnumSet[E comparable] struct {
	name  string
	byRaw map[string]E
	toRaw map[E]string
}

// NewEnumSet builds an EnumSet named name from its raw-value table. Each
// variant must appear exactly once.
func NewEnumSet[E comparable](name string, values map[string]E) *EnumSet[E] {
	s := &EnumSet[E]{
		name:  name,
		byRaw: make(map[string]E, len(values)),
		toRaw: make(map[E]string, len(values)),
	}
	for raw, v := range values {
		s.byRaw[raw] = v
		s.toRaw[v] = raw
	}
	return s
}

// Parse looks raw up in the set.
func (s *EnumSet[E]) Parse(raw any) (E, error) {
	if str, ok := raw.(string); ok {
		if v, ok := s.byRaw[str]; ok {
			return v, nil
		}
	}
	var zero E
	return zero, &UnknownEnumValueError{Enum: s.name, Value: raw}
}

// Raw returns the raw string for v.
func (s *EnumSet[E]) Raw(v E) (string, error) {
	raw, ok := s.toRaw[v]
	if !ok {
		return "", &UnknownEnumValueError{Enum: s.name, Value: v}
	}
	return raw, nil
}

// Enum binds a member whose raw value must belong to set.
func Enum[E comparable](name string, dst *E, set *EnumSet[E]) Field {
	return Field{
		Name: name,
		Kind: KindEnum,
		decode: func(raw any) error {
			v, err := set.Parse(raw)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		encode: func() (any, bool, error) {
			raw, err := set.Raw(*dst)
			if err != nil {
				return nil, false, err
			}
			return raw, true, nil
		},
		reset: zero(dst),
	}
}
