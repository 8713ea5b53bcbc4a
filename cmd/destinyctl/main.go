// Package main provides destinyctl, a command-line front end for the
// destinykit SDK. It keeps a local manifest snapshot in sync and answers
// definition lookups against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osheron/destinykit"
	"github.com/osheron/destinykit/internal/config"
	"github.com/osheron/destinykit/internal/logger"
)

// Global flag values, bound in init.
var (
	flagAPIKey  string
	flagDBPath  string
	flagLocale  string
	flagVerbose bool
)

// client and cfg are shared by all subcommands, initialized by
// PersistentPreRunE.
var (
	client *destinykit.Client
	cfg    *config.ClientConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "destinyctl",
	Short: "destinyctl keeps a local Destiny manifest snapshot in sync",
	Long: `destinyctl is a thin CLI over the destinykit SDK. It downloads the
versioned world-content database published by Bungie.net, imports it into a
local SQLite store, and serves definition lookups against the snapshot.

An API key is required (flag --api-key or env DESTINYKIT_API_KEY); get one at
https://www.bungie.net/en/Application.`,
	SilenceUsage:      true,
	PersistentPreRunE: initClient,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeClient()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Bungie.net API key (default: env DESTINYKIT_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "path of the local content store (default: "+config.DefaultDBPath+")")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "content locale to sync (default: "+config.DefaultLocale+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(versionCmd)
}

// initClient loads config, applies flag overrides, and builds the SDK client.
func initClient(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.GetClientConfigFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagAPIKey != "" {
		cfg.API.Key = flagAPIKey
	}
	if flagDBPath != "" {
		cfg.Storage.DB.Path = flagDBPath
	}
	if flagLocale != "" {
		cfg.Manifest.Locale = flagLocale
	}
	// `version` without --remote only reads the local store, so it works
	// without an API key.
	if cmd.Name() != "version" || flagRemote {
		if cfg.API.Key == "" {
			return fmt.Errorf("no API key: pass --api-key or set DESTINYKIT_API_KEY")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log := logger.Nop()
	if flagVerbose {
		log = logger.NewLoggerTo("destinyctl", os.Stderr)
	}

	client, err = destinykit.New(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}
	return nil
}

// closeClient releases the content store.
func closeClient() error {
	if client != nil {
		return client.Close()
	}
	return nil
}
