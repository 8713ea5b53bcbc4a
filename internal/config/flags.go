package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-api-key Bungie.net application API key
//	-api-base-url platform API root URL
//	-web-base-url host for relative manifest content paths
//	-db path to the local SQLite content store
//	-temp-dir directory for downloaded archives and staging databases
//	-locale manifest content locale (e.g. "en")
//	-request-timeout API request timeout (e.g. "30s", "1m")
//	-download-timeout manifest bundle download timeout
//	-oauth-client-id OAuth client id
//	-oauth-client-secret OAuth client secret
//	-c/-config json file path with configs
func ParseFlags() *ClientConfig {
	var apiKey string
	var apiBaseURL string
	var webBaseURL string
	var dbPath string
	var tempDir string
	var locale string
	var requestTimeout time.Duration
	var downloadTimeout time.Duration
	var oauthClientID string
	var oauthClientSecret string
	var jsonConfigPath string

	flag.StringVar(&apiKey, "api-key", "", "Bungie.net application API key")
	flag.StringVar(&apiBaseURL, "api-base-url", "", "Platform API root URL")
	flag.StringVar(&webBaseURL, "web-base-url", "", "Host for relative manifest content paths")
	flag.StringVar(&dbPath, "db", "", "Path to the local SQLite content store")
	flag.StringVar(&tempDir, "temp-dir", "", "Directory for temporary download files")
	flag.StringVar(&locale, "locale", "", "Manifest content locale")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&downloadTimeout, "download-timeout", 0, "Manifest bundle download timeout")
	flag.StringVar(&oauthClientID, "oauth-client-id", "", "OAuth client id")
	flag.StringVar(&oauthClientSecret, "oauth-client-secret", "", "OAuth client secret")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &ClientConfig{
		API: API{
			BaseURL:         apiBaseURL,
			WebBaseURL:      webBaseURL,
			Key:             apiKey,
			RequestTimeout:  requestTimeout,
			DownloadTimeout: downloadTimeout,
		},
		OAuth: OAuth{
			ClientID:     oauthClientID,
			ClientSecret: oauthClientSecret,
		},
		Storage: Storage{
			DB:      DB{Path: dbPath},
			TempDir: tempDir,
		},
		Manifest: Manifest{
			Locale: locale,
		},
		JSONFilePath: jsonConfigPath,
	}
}
