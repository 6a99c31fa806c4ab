package ports

import "context"

// SchemaManager creates the database tables. Exposed through an admin-only
// endpoint as a first-run escape hatch; not a substitute for migrations.
type SchemaManager interface {
	CreateTables(ctx context.Context) error
}
