package dataset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jeepies/leagues/internal/ir"
)

// FromYAML converts a yaml.v3 node tree into a record value, keeping
// mapping keys in document order. Aliases are followed.
func FromYAML(node *yaml.Node) (ir.Value, error) {
	if node == nil {
		return ir.Null{}, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return ir.Null{}, nil
		}
		return FromYAML(node.Content[0])

	case yaml.MappingNode:
		obj := ir.NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
			}
			val, err := FromYAML(valNode)
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, val)
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := make(ir.Array, 0, len(node.Content))
		for _, elem := range node.Content {
			val, err := FromYAML(elem)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil

	case yaml.AliasNode:
		return FromYAML(node.Alias)

	case yaml.ScalarNode:
		return scalarFromYAML(node)

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
}

func scalarFromYAML(node *yaml.Node) (ir.Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return ir.Null{}, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return ir.Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return ir.Number(f), nil
	default:
		return ir.String(node.Value), nil
	}
}
