package linkfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a list of names, each referring to the
// source location of the same name, or a mapping of target to reference.
// Mapping order is preserved.
//
//	targets: [id, name]
//	targets: {first: 0, last: -1}
func (m *TargetMap) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		out := make(TargetMap, 0, len(node.Content))

		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected target name, got %v", item.Line, kindName(item.Kind))
			}

			out = append(out, Target{Name: item.Value, Ref: item.Value})
		}

		*m = out

		return nil

	case yaml.MappingNode:
		out := make(TargetMap, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected target: reference pairs", k.Line)
			}

			ref := v.Value
			if v.Tag == "!!null" {
				ref = k.Value
			}

			out = append(out, Target{Name: k.Value, Ref: ref})
		}

		*m = out

		return nil

	case yaml.ScalarNode:
		if node.Value == "" || node.Tag == "!!null" {
			*m = nil
			return nil
		}

		*m = TargetMap{{Name: node.Value, Ref: node.Value}}

		return nil

	default:
		return fmt.Errorf("line %d: expected list or map of targets, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML writes a plain list when every target refers to its own name,
// and an ordered mapping otherwise.
func (m TargetMap) MarshalYAML() (any, error) {
	if m.Identity() {
		return m.Names(), nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	for _, t := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: t.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: t.Ref},
		)
	}

	return node, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
