package entities

// MethodCall is a named operation plus its loosely-typed argument bag, as it
// arrives over the message channel.
type MethodCall struct {
	Method    string         `json:"method"`
	Arguments map[string]any `json:"arguments"`
}

// StringArgument returns the argument stored under key when it is present and
// holds a string. Absent keys and values of any other type report false.
func (c MethodCall) StringArgument(key string) (string, bool) {
	if c.Arguments == nil {
		return "", false
	}
	v, ok := c.Arguments[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
