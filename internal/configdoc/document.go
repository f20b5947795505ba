package configdoc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

var (
	// ErrInvalidPath is returned for empty key paths or paths with empty segments.
	ErrInvalidPath = errors.New("invalid key path")

	// ErrNotMapping is returned when a key path walks through, or merges into,
	// a value that is not a mapping.
	ErrNotMapping = errors.New("value is not a mapping")
)

// Format selects the on-disk encoding of a Document.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFor returns FormatJSON for .json paths and FormatYAML otherwise.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Document is an ordered, nested key/value tree backed by a yaml.Node.
// Writes touch exactly one key path; every other key keeps its value and
// its position.
type Document struct {
	path   string
	format Format
	root   *yaml.Node
}

// New returns an empty document that will be saved to path.
func New(path string) *Document {
	return &Document{
		path:   path,
		format: FormatFor(path),
		root:   &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"},
	}
}

// Load reads the document at path. A missing file yields an empty document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	doc.path = path
	doc.format = FormatFor(path)
	return doc, nil
}

// Parse decodes YAML (or JSON, which parses as YAML) into a Document with
// no backing file.
func Parse(data []byte) (*Document, error) {
	doc := New("")

	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	if n.Kind == 0 || len(n.Content) == 0 {
		return doc, nil
	}

	top := n.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top-level value: %w", ErrNotMapping)
	}
	doc.root = top
	return doc, nil
}

// Path returns the file the document is saved to.
func (d *Document) Path() string { return d.path }

// Empty reports whether the document has no top-level keys.
func (d *Document) Empty() bool { return len(d.root.Content) == 0 }

// Get returns the decoded value at key path, or false if any segment is missing.
func (d *Document) Get(keyPath string) (any, bool) {
	n, ok := d.Node(keyPath)
	if !ok {
		return nil, false
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

// GetString returns the value at key path when it is a string scalar.
func (d *Document) GetString(keyPath string) (string, bool) {
	n, ok := d.Node(keyPath)
	if !ok || n.Kind != yaml.ScalarNode {
		return "", false
	}
	return n.Value, true
}

// Has reports whether a value exists at key path.
func (d *Document) Has(keyPath string) bool {
	_, ok := d.Node(keyPath)
	return ok
}

// Node returns the raw node at key path. Invalid paths are reported as absent.
func (d *Document) Node(keyPath string) (*yaml.Node, bool) {
	segs, err := splitPath(keyPath)
	if err != nil {
		return nil, false
	}
	cur := d.root
	for _, seg := range segs {
		if cur.Kind != yaml.MappingNode {
			return nil, false
		}
		_, val := lookup(cur, seg)
		if val == nil {
			return nil, false
		}
		cur = val
	}
	return cur, true
}

// Keys returns the keys of the mapping at key path in document order.
func (d *Document) Keys(keyPath string) ([]string, error) {
	n, ok := d.Node(keyPath)
	if !ok {
		if _, err := splitPath(keyPath); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: %w", keyPath, ErrNotMapping)
	}
	keys := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
	}
	return keys, nil
}

// Set assigns value at key path, creating intermediate mappings as needed.
// An existing leaf is replaced in place.
func (d *Document) Set(keyPath string, value any) error {
	segs, err := splitPath(keyPath)
	if err != nil {
		return err
	}
	parent, err := d.ensureMapping(segs[:len(segs)-1], keyPath)
	if err != nil {
		return err
	}
	n, err := ToNode(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", keyPath, err)
	}
	setKey(parent, segs[len(segs)-1], n)
	return nil
}

// Merge writes each entry of values into the mapping at key path, one level
// deep. Keys not named in values are left alone. The mapping is created if
// it does not exist.
func (d *Document) Merge(keyPath string, values map[string]any) error {
	segs, err := splitPath(keyPath)
	if err != nil {
		return err
	}
	target, err := d.ensureMapping(segs, keyPath)
	if err != nil {
		return err
	}
	for _, k := range sortedKeys(values) {
		n, err := ToNode(values[k])
		if err != nil {
			return fmt.Errorf("encoding %s.%s: %w", keyPath, k, err)
		}
		setKey(target, k, n)
	}
	return nil
}

// Delete removes the leaf at key path. Deleting an absent key is a no-op.
func (d *Document) Delete(keyPath string) error {
	segs, err := splitPath(keyPath)
	if err != nil {
		return err
	}
	cur := d.root
	for _, seg := range segs[:len(segs)-1] {
		_, val := lookup(cur, seg)
		if val == nil {
			return nil
		}
		if val.Kind != yaml.MappingNode {
			return fmt.Errorf("%s: %w", keyPath, ErrNotMapping)
		}
		cur = val
	}
	idx, _ := lookup(cur, segs[len(segs)-1])
	if idx < 0 {
		return nil
	}
	cur.Content = append(cur.Content[:idx], cur.Content[idx+2:]...)
	return nil
}

// JSON encodes the document as indented JSON in key order, whatever its
// on-disk format.
func (d *Document) JSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, d.root, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Entry returns the value stored under the literal key in the mapping at
// keyPath. Dots in key are part of the key, not path separators.
func (d *Document) Entry(keyPath, key string) (*yaml.Node, bool) {
	m, ok := d.Node(keyPath)
	if !ok || m.Kind != yaml.MappingNode {
		return nil, false
	}
	_, val := lookup(m, key)
	return val, val != nil
}

// DeleteEntry removes the literal key from the mapping at keyPath and
// reports whether it was present.
func (d *Document) DeleteEntry(keyPath, key string) (bool, error) {
	m, ok := d.Node(keyPath)
	if !ok {
		return false, nil
	}
	if m.Kind != yaml.MappingNode {
		return false, fmt.Errorf("%s: %w", keyPath, ErrNotMapping)
	}
	idx, _ := lookup(m, key)
	if idx < 0 {
		return false, nil
	}
	m.Content = append(m.Content[:idx], m.Content[idx+2:]...)
	return true, nil
}

// Bytes encodes the document in its format.
func (d *Document) Bytes() ([]byte, error) {
	if d.format == FormatJSON {
		return d.JSON()
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the document to its path, creating parent directories.
func (d *Document) Save() error {
	if d.path == "" {
		return errors.New("document has no path")
	}
	data, err := d.Bytes()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", d.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", d.path, err)
	}
	if err := os.WriteFile(d.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", d.path, err)
	}
	return nil
}

func (d *Document) ensureMapping(segs []string, keyPath string) (*yaml.Node, error) {
	cur := d.root
	for _, seg := range segs {
		_, val := lookup(cur, seg)
		if val == nil {
			val = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			setKey(cur, seg, val)
		}
		if val.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%s: segment %q: %w", keyPath, seg, ErrNotMapping)
		}
		cur = val
	}
	return cur, nil
}

func splitPath(keyPath string) ([]string, error) {
	if keyPath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	segs := strings.Split(keyPath, ".")
	for _, s := range segs {
		if s == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, keyPath)
		}
	}
	return segs, nil
}

// lookup returns the index of the key node and the value node for key in
// mapping m, or (-1, nil).
func lookup(m *yaml.Node, key string) (int, *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return i, m.Content[i+1]
		}
	}
	return -1, nil
}

func setKey(m *yaml.Node, key string, val *yaml.Node) {
	if idx, _ := lookup(m, key); idx >= 0 {
		m.Content[idx+1] = val
		return
	}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		val,
	)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
