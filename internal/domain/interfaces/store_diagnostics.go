package interfaces

import "context"

// StoreDiagnostics reports the health of the active storage backend.
type StoreDiagnostics interface {
	// Kind names the backend ("mongo", "sqlite", "file").
	Kind() string
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Collections lists the collection or table names present.
	Collections(ctx context.Context) ([]string, error)
}
