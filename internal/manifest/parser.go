package manifest

import (
	"fmt"

	"github.com/appforge-labs/appforge/internal/configdoc"
)

// Load reads the manifest at path. A missing file yields an empty manifest.
func Load(path string) (*configdoc.Document, error) {
	doc, err := configdoc.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}
	return doc, nil
}

// LoadEntities decodes every registered action in namespacePath, in
// document order.
func LoadEntities(doc *configdoc.Document, namespacePath string) ([]Registered, error) {
	names, err := ListEntities(doc, namespacePath)
	if err != nil {
		return nil, err
	}

	entities := make([]Registered, 0, len(names))
	for _, name := range names {
		d, err := decodeEntity(doc, namespacePath, name)
		if err != nil {
			return nil, err
		}
		entities = append(entities, Registered{Name: name, Descriptor: *d})
	}
	return entities, nil
}

// FindEntity returns the descriptor registered under name.
func FindEntity(doc *configdoc.Document, namespacePath, name string) (*Descriptor, error) {
	if err := checkShape(doc, namespacePath); err != nil {
		return nil, err
	}
	return decodeEntity(doc, namespacePath, name)
}

// decodeEntity looks name up as a literal key of the actions mapping, so
// names containing dots resolve.
func decodeEntity(doc *configdoc.Document, namespacePath, name string) (*Descriptor, error) {
	n, ok := doc.Entry(namespacePath+"."+CollectionKey, name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrEntityNotFound)
	}
	var d Descriptor
	if err := n.Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding action %s: %w", name, err)
	}
	return &d, nil
}
