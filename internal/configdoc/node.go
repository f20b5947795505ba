package configdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ToNode converts a Go value into a yaml.Node. Nodes are passed through.
// Maps are encoded with sorted keys; use a struct or a node for a fixed order.
func ToNode(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case *yaml.Node:
		return v, nil
	case yaml.Node:
		return &v, nil
	}
	var n yaml.Node
	if err := n.Encode(value); err != nil {
		return nil, err
	}
	return &n, nil
}

// DeepMerge layers values onto the mapping node dst. Values of any map
// type merge key by key into existing nested mappings; any other value
// replaces the key. Nil values are skipped, so a default can be replaced but
// never removed. Replacing an existing mapping with a non-mapping value is
// an ErrNotMapping error.
func DeepMerge(dst *yaml.Node, values map[string]any) error {
	if dst.Kind != yaml.MappingNode {
		return ErrNotMapping
	}
	for _, k := range sortedKeys(values) {
		if values[k] == nil {
			continue
		}
		src, err := ToNode(values[k])
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		if err := mergeKey(dst, k, src); err != nil {
			return err
		}
	}
	return nil
}

func mergeKey(dst *yaml.Node, key string, src *yaml.Node) error {
	if src.Kind == yaml.DocumentNode && len(src.Content) > 0 {
		src = src.Content[0]
	}
	if src.Kind == 0 || (src.Kind == yaml.ScalarNode && src.Tag == "!!null") {
		return nil
	}
	_, existing := lookup(dst, key)
	if existing == nil || existing.Kind != yaml.MappingNode {
		setKey(dst, key, src)
		return nil
	}
	if src.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: replacing a mapping: %w", key, ErrNotMapping)
	}
	for i := 0; i+1 < len(src.Content); i += 2 {
		if err := mergeKey(existing, src.Content[i].Value, src.Content[i+1]); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// writeJSON emits n as indented JSON, keeping mapping key order.
func writeJSON(buf *bytes.Buffer, n *yaml.Node, depth int) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, n.Content[0], depth)
	case yaml.AliasNode:
		return writeJSON(buf, n.Alias, depth)
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i := 0; i+1 < len(n.Content); i += 2 {
			indent(buf, depth+1)
			if err := writeScalar(buf, n.Content[i].Value); err != nil {
				return err
			}
			buf.WriteString(": ")
			if err := writeJSON(buf, n.Content[i+1], depth+1); err != nil {
				return err
			}
			if i+2 < len(n.Content) {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		indent(buf, depth)
		buf.WriteByte('}')
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, item := range n.Content {
			indent(buf, depth+1)
			if err := writeJSON(buf, item, depth+1); err != nil {
				return err
			}
			if i+1 < len(n.Content) {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		indent(buf, depth)
		buf.WriteByte(']')
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return err
		}
		return writeScalar(buf, v)
	default:
		return fmt.Errorf("unsupported node kind %d", n.Kind)
	}
	return nil
}

func writeScalar(buf *bytes.Buffer, v any) error {
	var sb bytes.Buffer
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.WriteString(strings.TrimRight(sb.String(), "\n"))
	return nil
}

func indent(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat("  ", depth))
}
