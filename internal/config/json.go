package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ClientJSONConfig mirrors [ClientConfig] with JSON tags and a
// string-friendly duration type, so config files can spell timeouts as
// "30s" or "1m".
type ClientJSONConfig struct {
	API struct {
		BaseURL         string   `json:"base_url"`
		WebBaseURL      string   `json:"web_base_url"`
		Key             string   `json:"key"`
		RequestTimeout  Duration `json:"request_timeout"`
		DownloadTimeout Duration `json:"download_timeout"`
	} `json:"api,omitempty"`

	OAuth struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
		TokenURL     string `json:"token_url"`
	} `json:"oauth,omitempty"`

	Storage struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`
		TempDir string `json:"temp_dir"`
	} `json:"storage,omitempty"`

	Manifest struct {
		Locale string `json:"locale"`
	} `json:"manifest,omitempty"`
}

func parseJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg ClientJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &ClientConfig{
		API: API{
			BaseURL:         jsonCfg.API.BaseURL,
			WebBaseURL:      jsonCfg.API.WebBaseURL,
			Key:             jsonCfg.API.Key,
			RequestTimeout:  time.Duration(jsonCfg.API.RequestTimeout),
			DownloadTimeout: time.Duration(jsonCfg.API.DownloadTimeout),
		},
		OAuth: OAuth{
			ClientID:     jsonCfg.OAuth.ClientID,
			ClientSecret: jsonCfg.OAuth.ClientSecret,
			TokenURL:     jsonCfg.OAuth.TokenURL,
		},
		Storage: Storage{
			DB:      DB{Path: jsonCfg.Storage.DB.Path},
			TempDir: jsonCfg.Storage.TempDir,
		},
		Manifest: Manifest{
			Locale: jsonCfg.Manifest.Locale,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
