// Package dimension holds the lookup-table rows referenced by employees:
// departments, positions and education levels. All three share the same
// shape and the same get-or-create-by-name lifecycle; rows are created
// lazily and never deleted by the application.
package dimension

import "context"

type Dimension struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Repository is implemented once per dimension table.
type Repository interface {
	// GetOrCreateByName looks up a row by case-insensitive exact name and
	// inserts one if missing. The insert is an atomic upsert, so two
	// concurrent callers with the same name converge on one row.
	GetOrCreateByName(ctx context.Context, name string) (Dimension, error)
	GetAll(ctx context.Context) ([]Dimension, error)
}

// Resolver turns free-text dimension names into row ids, creating rows
// on first sight. Create, update and both import paths go through it.
type Resolver interface {
	ResolveDepartment(ctx context.Context, name string) (int64, error)
	ResolvePosition(ctx context.Context, name string) (int64, error)
	ResolveEducationLevel(ctx context.Context, name string) (int64, error)
}
