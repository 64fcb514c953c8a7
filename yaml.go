package jsonxx

import (
	"gopkg.in/yaml.v3"
)

// FromYAML imports a YAML document into a Value tree. YAML mappings become
// objects, sequences become arrays, and scalars map onto the JSON kinds.
// Mapping keys that are not strings are dropped, matching JSON's model.
func FromYAML(data []byte) (*Value, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "decode yaml", Cause: err, Offset: -1}}
	}
	return fromRaw(yamlNormalize(node))
}

// yamlNormalize converts YAML-decoded values (which may contain map[any]any)
// into the JSON-like shapes fromRaw understands.
func yamlNormalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalize(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalize(t[i])
		}
		return arr
	default:
		return v
	}
}
