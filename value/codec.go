package value

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the value as JSON. Non-finite numbers encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSafe(v.Native()))
}

func jsonSafe(n any) any {
	switch d := n.(type) {
	case float64:
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil
		}
		return d
	case []any:
		for i := range d {
			d[i] = jsonSafe(d[i])
		}
		return d
	case map[string]any:
		for k := range d {
			d[k] = jsonSafe(d[k])
		}
		return d
	default:
		return d
	}
}

// UnmarshalJSON decodes any JSON document into the value.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}

// MarshalYAML encodes the value as plain YAML data.
func (v Value) MarshalYAML() (any, error) {
	return v.Native(), nil
}

// UnmarshalYAML decodes a YAML node into the value, keeping scalar types:
// !!null, !!bool, !!int, !!float and !!str map to the matching kinds.
// Aliases are followed; merge keys are not supported.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := fromYAMLNode(node)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// Values is a list of values that keeps null elements when decoded from
// YAML. yaml.v3 skips unmarshalers for null nodes, so a plain []Value
// drops them.
type Values []Value

// UnmarshalYAML decodes a YAML sequence, or null as an empty list.
func (vs *Values) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := fromYAMLNode(node)
	if err != nil {
		return err
	}
	if decoded.IsNull() {
		*vs = nil
		return nil
	}
	items, ok := decoded.AsSlice()
	if !ok {
		return fmt.Errorf("line %d: expected a sequence, got %s", node.Line, decoded.Kind())
	}
	*vs = items
	return nil
}

func fromYAMLNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(node.Content[0])
	case yaml.AliasNode:
		if node.Alias == nil {
			return Null(), nil
		}
		return fromYAMLNode(node.Alias)
	case yaml.SequenceNode:
		items := make([]Value, len(node.Content))
		for i, child := range node.Content {
			item, err := fromYAMLNode(child)
			if err != nil {
				return Value{}, err
			}
			items[i] = item
		}
		return FromSlice(items), nil
	case yaml.MappingNode:
		m := make(map[string]Value, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			item, err := fromYAMLNode(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			m[key.Value] = item
		}
		return FromMap(m), nil
	case yaml.ScalarNode:
		return fromYAMLScalar(node)
	default:
		return Null(), nil
	}
}

func fromYAMLScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}
		return FromBool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, err
		}
		return FromFloat(f), nil
	default:
		return FromString(node.Value), nil
	}
}
