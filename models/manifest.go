package models

// ManifestDescriptor is the remotely published description of the current
// Destiny content snapshot, returned by the Destiny2.GetDestinyManifest
// endpoint. It carries an opaque version stamp plus per-locale locations of
// the downloadable content bundles.
//
// The descriptor is consumed per sync attempt and never persisted by the SDK;
// only the version string of a successfully imported snapshot is recorded in
// the local content store.
type ManifestDescriptor struct {
	// Version is the opaque build stamp of the published snapshot
	// (e.g. "229977.25.02.11.1800-1-bnet.58752"). Versions are compared by
	// pure string inequality, never by semantic ordering.
	Version string `json:"version"`

	// MobileWorldContentPaths maps a locale code ("en", "fr", ...) to the
	// location of the zipped SQLite world-content database for that locale.
	// Values are either absolute URLs or paths relative to the web host.
	MobileWorldContentPaths map[string]string `json:"mobileWorldContentPaths"`

	// MobileAssetContentPath locates the mobile asset database. Carried for
	// API completeness; the sync pipeline does not consume it.
	MobileAssetContentPath string `json:"mobileAssetContentPath,omitempty"`

	// JSONWorldContentPaths maps a locale to the aggregated JSON rendition
	// of the world content. Carried for API completeness.
	JSONWorldContentPaths map[string]string `json:"jsonWorldContentPaths,omitempty"`

	// JSONWorldComponentContentPaths maps a locale to per-table JSON paths.
	// Carried for API completeness.
	JSONWorldComponentContentPaths map[string]map[string]string `json:"jsonWorldComponentContentPaths,omitempty"`
}
