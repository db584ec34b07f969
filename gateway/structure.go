package gateway

import (
	"encoding/json"
	"strconv"

	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
)

// CompareStructure reports whether two decoded JSON values have the same shape.
// Objects must have identical key sets, compared recursively; arrays are
// treated as objects keyed by index. When either side is not an object or
// array the result is true and the values themselves are never compared, so
// {"a":1} and {"a":5} match, as do {"a":1} and {"a":{"b":2}}.
func CompareStructure(a, b any) bool {
	ka, aIsObject := members(a)
	kb, bIsObject := members(b)
	if !aIsObject || !bIsObject {
		return true
	}
	if len(ka) != len(kb) {
		return false
	}
	for k, va := range ka {
		vb, ok := kb[k]
		if !ok || !CompareStructure(va, vb) {
			return false
		}
	}
	return true
}

// CompareJSON decodes both documents and compares their structure
func CompareJSON(a, b []byte) (bool, error) {
	var va, vb any
	if err := json.Unmarshal(a, &va); err != nil {
		return false, simerrors.Wrapf(simerrors.ErrDecode, "first document")
	}
	if err := json.Unmarshal(b, &vb); err != nil {
		return false, simerrors.Wrapf(simerrors.ErrDecode, "second document")
	}
	return CompareStructure(va, vb), nil
}

func members(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case []any:
		m := make(map[string]any, len(t))
		for i, e := range t {
			m[strconv.Itoa(i)] = e
		}
		return m, true
	default:
		return nil, false
	}
}
