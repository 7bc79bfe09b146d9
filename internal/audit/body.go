package audit

import "encoding/json"

// BodyKind discriminates the shapes a dynamic JSON body can take
type BodyKind int

const (
	BodyAbsent BodyKind = iota
	BodyScalar
	BodyMapping
	BodySequence
)

// Body is a tagged view over a request or response JSON body. Accessors
// return zero values for shapes they do not apply to, so callers never need
// to branch on kind for the common lookups.
type Body struct {
	kind     BodyKind
	scalar   any
	mapping  map[string]any
	sequence []any
}

// ParseBody decodes raw JSON into a Body. Empty input yields an absent body;
// invalid JSON is reported as an error with an absent body.
func ParseBody(raw []byte) (Body, error) {
	if len(raw) == 0 {
		return Body{}, nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Body{}, err
	}

	switch value := decoded.(type) {
	case nil:
		return Body{}, nil
	case map[string]any:
		return Body{kind: BodyMapping, mapping: value}, nil
	case []any:
		return Body{kind: BodySequence, sequence: value}, nil
	default:
		return Body{kind: BodyScalar, scalar: value}, nil
	}
}

// Kind reports the body's shape
func (b Body) Kind() BodyKind {
	return b.kind
}

// String returns the named field if the body is a mapping holding a string
// there, else ""
func (b Body) String(key string) string {
	if b.kind != BodyMapping {
		return ""
	}
	value, _ := b.mapping[key].(string)
	return value
}

// StringSlice returns the named field if the body is a mapping holding a
// list of strings there; non-string elements are dropped
func (b Body) StringSlice(key string) []string {
	if b.kind != BodyMapping {
		return nil
	}
	list, ok := b.mapping[key].([]any)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

// Field returns the named raw field of a mapping body
func (b Body) Field(key string) (any, bool) {
	if b.kind != BodyMapping {
		return nil, false
	}
	value, ok := b.mapping[key]
	return value, ok
}
