package manifest

// DefaultNamespacePath is the key path of the package namespace that holds
// generated actions in app.config.yaml.
const DefaultNamespacePath = "application.runtimeManifest.packages.__APP_PACKAGE__"

// Keys within a namespace.
const (
	CollectionKey = "actions"
	LicenseKey    = "license"
)

// Defaults applied when a descriptor field is not overridden.
const (
	DefaultLicense  = "Apache-2.0"
	DefaultRuntime  = "nodejs:18"
	DefaultLogLevel = "debug"

	AnnotationRequireAuth = "require-adobe-auth"
	AnnotationFinal       = "final"
)

// Entity is a generated action proposed for registration.
type Entity struct {
	// Name is the requested name. The registered name may carry a numeric
	// suffix when the requested one is taken.
	Name string

	// BuildTarget is the path of the generated entry point. An absolute path
	// is stored relative to the manifest's directory; a relative path is
	// stored as given.
	BuildTarget string

	// Overrides are layered onto the default descriptor. Nested maps merge
	// into the defaults; nil values are ignored.
	Overrides map[string]any
}

// Descriptor is the persisted form of a registered action.
type Descriptor struct {
	Function    string         `yaml:"function" json:"function"`
	Web         string         `yaml:"web" json:"web"`
	Runtime     string         `yaml:"runtime" json:"runtime"`
	Inputs      map[string]any `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	Annotations map[string]any `yaml:"annotations,omitempty" json:"annotations,omitempty"`
}

// Registered pairs a registered name with its descriptor.
type Registered struct {
	Name       string
	Descriptor Descriptor
}

// defaultSkeleton holds the fixed key order of a new descriptor.
type defaultSkeleton struct {
	Function    string           `yaml:"function"`
	Web         string           `yaml:"web"`
	Runtime     string           `yaml:"runtime"`
	Inputs      skeletonInputs   `yaml:"inputs"`
	Annotations skeletonAnnotate `yaml:"annotations"`
}

type skeletonInputs struct {
	LogLevel string `yaml:"LOG_LEVEL"`
}

type skeletonAnnotate struct {
	RequireAuth bool `yaml:"require-adobe-auth"`
	Final       bool `yaml:"final"`
}
