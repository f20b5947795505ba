package generators

import "github.com/appforge-labs/appforge/internal/generator"

// Generator names.
const (
	App             = "app"
	AddAction       = "add-action"
	AddEvents       = "add-events"
	AddWebAssets    = "add-web-assets"
	AddCI           = "add-ci"
	DeleteAction    = "delete-action"
	DeleteWebAssets = "delete-web-assets"
	DeleteCI        = "delete-ci"
)

// NewRegistry returns a registry with every generator of this package.
func NewRegistry() generator.Registry {
	return generator.Registry{
		App:             NewApp,
		AddAction:       NewAddAction,
		AddEvents:       NewAddEvents,
		AddWebAssets:    NewAddWebAssets,
		AddCI:           NewAddCI,
		DeleteAction:    NewDeleteAction,
		DeleteWebAssets: NewDeleteWebAssets,
		DeleteCI:        NewDeleteCI,
	}
}
