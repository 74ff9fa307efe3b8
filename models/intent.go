package models

// FunctionCall is a structured operation request extracted from a model
// response or produced by a fast-path matcher. Parameters hold primitive
// values keyed by the schema's parameter names.
type FunctionCall struct {
	Name       string                 `bson:"name" json:"name"`
	Parameters map[string]interface{} `bson:"parameters" json:"parameters"`
}

// String returns a parameter as a string, with ok reporting presence.
func (fc *FunctionCall) String(key string) (string, bool) {
	v, ok := fc.Parameters[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// Int returns a parameter as an int. JSON numbers arrive as float64.
func (fc *FunctionCall) Int(key string) (int, bool) {
	switch v := fc.Parameters[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// Strings returns a parameter as a string slice.
func (fc *FunctionCall) Strings(key string) []string {
	raw, ok := fc.Parameters[key].([]interface{})
	if !ok {
		if ss, ok := fc.Parameters[key].([]string); ok {
			return ss
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
