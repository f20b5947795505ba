// Package config manages user-level settings stored at ~/.appforge/config.yaml.
// Every key can also be set through the environment, e.g. APPFORGE_RUNTIME
// or APPFORGE_NODE_ENGINE. The settings provide defaults for generated
// projects: the action runtime, the engines.node constraint, the manifest
// namespace and whether to skip the dependency install.
package config
