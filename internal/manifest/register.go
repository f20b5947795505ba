package manifest

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/appforge-labs/appforge/internal/configdoc"
	"go.yaml.in/yaml/v3"
)

var (
	// ErrCorruptNamespace is returned when the namespace or its action
	// collection exists but is not a mapping.
	ErrCorruptNamespace = errors.New("namespace is not a mapping of actions")

	// ErrEntityNotFound is returned when removing an action that is not registered.
	ErrEntityNotFound = errors.New("action not found")
)

// RegisterEntity writes e into the action collection of the namespace at
// namespacePath and returns the name it was registered under. Existing
// actions and sibling keys are left untouched.
func RegisterEntity(doc *configdoc.Document, namespacePath string, e Entity) (string, error) {
	if e.Name == "" {
		return "", errors.New("action name is required")
	}

	names, err := ListEntities(doc, namespacePath)
	if err != nil {
		return "", err
	}

	collectionPath := namespacePath + "." + CollectionKey
	if !doc.Has(collectionPath) && !doc.Has(namespacePath+"."+LicenseKey) {
		if err := doc.Set(namespacePath+"."+LicenseKey, DefaultLicense); err != nil {
			return "", fmt.Errorf("initializing %s: %w", namespacePath, err)
		}
	}

	name := ResolveUniqueName(NameSet(names), e.Name)

	descriptor, err := buildDescriptor(doc, e)
	if err != nil {
		return "", fmt.Errorf("building descriptor for %s: %w", name, err)
	}

	if err := doc.Merge(collectionPath, map[string]any{name: descriptor}); err != nil {
		return "", fmt.Errorf("registering %s: %w", name, err)
	}
	return name, nil
}

// ListEntities returns the registered action names in document order.
func ListEntities(doc *configdoc.Document, namespacePath string) ([]string, error) {
	if err := checkShape(doc, namespacePath); err != nil {
		return nil, err
	}
	names, err := doc.Keys(namespacePath + "." + CollectionKey)
	if err != nil {
		return nil, fmt.Errorf("listing actions: %w", err)
	}
	return names, nil
}

// RemoveEntity deletes the named action from the collection.
func RemoveEntity(doc *configdoc.Document, namespacePath, name string) error {
	if err := checkShape(doc, namespacePath); err != nil {
		return err
	}
	removed, err := doc.DeleteEntry(namespacePath+"."+CollectionKey, name)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%q: %w", name, ErrEntityNotFound)
	}
	return nil
}

func checkShape(doc *configdoc.Document, namespacePath string) error {
	ns, ok := doc.Node(namespacePath)
	if !ok {
		return nil
	}
	if ns.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: %w", namespacePath, ErrCorruptNamespace)
	}
	coll, ok := doc.Node(namespacePath + "." + CollectionKey)
	if ok && coll.Kind != yaml.MappingNode {
		return fmt.Errorf("%s.%s: %w", namespacePath, CollectionKey, ErrCorruptNamespace)
	}
	return nil
}

func buildDescriptor(doc *configdoc.Document, e Entity) (*yaml.Node, error) {
	node, err := configdoc.ToNode(defaultSkeleton{
		Function: functionPath(doc.Path(), e.BuildTarget),
		Web:      "yes",
		Runtime:  DefaultRuntime,
		Inputs:   skeletonInputs{LogLevel: DefaultLogLevel},
		Annotations: skeletonAnnotate{
			RequireAuth: true,
			Final:       true,
		},
	})
	if err != nil {
		return nil, err
	}
	if err := configdoc.DeepMerge(node, e.Overrides); err != nil {
		return nil, err
	}
	return node, nil
}

// functionPath expresses target relative to the manifest's directory with
// forward slashes.
func functionPath(manifestPath, target string) string {
	if filepath.IsAbs(target) && manifestPath != "" {
		base, err := filepath.Abs(filepath.Dir(manifestPath))
		if err == nil {
			if rel, err := filepath.Rel(base, target); err == nil {
				return filepath.ToSlash(rel)
			}
		}
	}
	return filepath.ToSlash(target)
}
