package repository

import "context"

// HealthGroup is the fx value group collecting backend probes.
const HealthGroup = `group:"health"`

// HealthCheck probes one storage backend.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}
