// Package powerwatch holds build metadata of the service. Values are set
// with -ldflags "-X github.com/ferux/powerwatch.Revision=...".
package powerwatch

import "github.com/ferux/powerwatch/internal/model"

var (
	// Revision stores current git revision of the application
	//nolint
	Revision string

	// Branch stores current branch
	//nolint
	Branch string

	// Env stores current environment
	//nolint
	Env = "production"
)

// Info collects build metadata into a single value.
func Info() model.ApplicationInfo {
	return model.ApplicationInfo{
		Revision:    Revision,
		Branch:      Branch,
		Environment: Env,
	}
}
