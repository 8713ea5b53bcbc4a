package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreUnavailable is returned when the underlying SQLite connection
	// cannot be opened, pinged, or migrated at construction time. It is
	// distinct from a missing key: once a store is constructed, lookups for
	// unknown hashes return [ErrDefinitionNotFound] instead.
	ErrStoreUnavailable = errors.New("content store unavailable")

	// ErrDefinitionNotFound is returned when a lookup targets a category
	// that has never been imported or a content hash with no row in that
	// category's table.
	ErrDefinitionNotFound = errors.New("definition not found")

	// ErrNoVersion is returned by CurrentVersion when no manifest snapshot
	// has ever been imported into this store.
	ErrNoVersion = errors.New("no manifest version recorded")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
