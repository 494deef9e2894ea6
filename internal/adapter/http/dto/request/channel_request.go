package request

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrArgumentsNotObject = errors.New("channel arguments must be a JSON object")

// ParseArguments decodes the body of a channel call. An empty body means no
// arguments.
func ParseArguments(raw []byte) (map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return map[string]any{}, nil
	}
	if raw[0] != '{' {
		return nil, ErrArgumentsNotObject
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return args, nil
}
