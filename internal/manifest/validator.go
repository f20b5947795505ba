package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/appforge-labs/appforge/internal/configdoc"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/manifest.schema.json
var schemaBytes []byte

const schemaURL = "app.config.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error

	printer = message.NewPrinter(language.English)
)

// ValidationResult is the outcome of checking a manifest against the schema.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation.
type ValidationIssue struct {
	Path    string // JSON pointer into the manifest, e.g. "/application/runtimeManifest/packages/pkg/actions/hello"
	Message string
	Keyword string // failing schema keyword, e.g. "required"
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func getSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			schemaErr = fmt.Errorf("reading manifest schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, raw); err != nil {
			schemaErr = fmt.Errorf("adding manifest schema: %w", err)
			return
		}
		if schema, err = c.Compile(schemaURL); err != nil {
			schemaErr = fmt.Errorf("compiling manifest schema: %w", err)
		}
	})
	return schema, schemaErr
}

// ValidateDocument checks an in-memory manifest. The error return is for
// encoding or schema failures; violations are reported in the result.
func ValidateDocument(doc *configdoc.Document) (*ValidationResult, error) {
	s, err := getSchema()
	if err != nil {
		return nil, err
	}
	data, err := doc.JSON()
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	var ve *jsonschema.ValidationError
	switch err := s.Validate(inst); {
	case err == nil:
		return &ValidationResult{Valid: true}, nil
	case !errors.As(err, &ve):
		return nil, fmt.Errorf("validating manifest: %w", err)
	}

	issues := leafIssues(ve, nil, map[string]bool{})
	if len(issues) == 0 {
		issues = []ValidationIssue{{Message: ve.Error()}}
	}
	return &ValidationResult{Issues: issues}, nil
}

// Validate checks raw manifest YAML. Empty input is a valid manifest.
func Validate(data []byte) (*ValidationResult, error) {
	doc, err := configdoc.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return ValidateDocument(doc)
}

// ValidateFile loads and checks the manifest at path.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Validate(data)
}

// leafIssues flattens the error tree into its leaves, dropping combinator
// keywords that only say a branch failed and duplicates across branches.
func leafIssues(ve *jsonschema.ValidationError, out []ValidationIssue, seen map[string]bool) []ValidationIssue {
	for _, cause := range ve.Causes {
		out = leafIssues(cause, out, seen)
	}
	if len(ve.Causes) > 0 || ve.ErrorKind == nil {
		return out
	}

	kw := ve.ErrorKind.KeywordPath()
	if len(kw) == 0 {
		return out
	}
	issue := ValidationIssue{
		Keyword: kw[len(kw)-1],
		Message: ve.ErrorKind.LocalizedString(printer),
	}
	switch issue.Keyword {
	case "oneOf", "anyOf", "allOf", "$ref":
		return out
	}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
	if seen[key] {
		return out
	}
	seen[key] = true
	return append(out, issue)
}
