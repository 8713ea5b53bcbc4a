package manifest

import "errors"

// Sentinel errors of the sync pipeline. Download failures carry
// [api.ErrDownloadFailed]; store-level conditions carry the sentinels from
// the store package. Callers match with [errors.Is].
var (
	// ErrLocaleUnavailable is returned when the manifest descriptor has no
	// content bundle for the requested locale. Another locale is never
	// substituted silently.
	ErrLocaleUnavailable = errors.New("locale unavailable in manifest")

	// ErrNoContentEntry is returned when a downloaded archive contains no
	// extractable database entry.
	ErrNoContentEntry = errors.New("no content entry found in archive")

	// ErrImportFailed is returned when the staging database cannot be read
	// or the import transaction fails. The content store is left exactly as
	// it was before the import started.
	ErrImportFailed = errors.New("manifest import failed")

	// ErrDefinitionDecode is returned by typed lookups when a stored
	// payload exists but cannot be decoded into the requested type.
	// Distinct from store.ErrDefinitionNotFound.
	ErrDefinitionDecode = errors.New("definition payload decode failed")

	// ErrSyncInProgress is returned when a second Sync is attempted while
	// one is already running against the same store.
	ErrSyncInProgress = errors.New("manifest sync already in progress")
)
