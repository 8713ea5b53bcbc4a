package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osheron/destinykit/internal/manifest"
)

var flagForce bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download and import the current manifest snapshot",
	Long: `Sync compares the published manifest version against the local store and,
when they differ, downloads the world-content bundle for the configured
locale and imports it. A failed sync leaves the previous snapshot intact.

Example:
  destinyctl sync
  destinyctl sync --locale fr
  destinyctl sync --force`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&flagForce, "force", false, "re-import even when the local version matches")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	onProgress := func(fraction float64) {
		fmt.Printf("\rdownloading... %3.0f%%", fraction*100)
		if fraction >= 1 {
			fmt.Println()
		}
	}

	if flagForce {
		descriptor, err := client.API().GetDestinyManifest(ctx)
		if err != nil {
			return fmt.Errorf("fetch manifest descriptor: %w", err)
		}
		if err := client.Manifest().Sync(ctx, descriptor, cfg.Manifest.Locale, onProgress); err != nil {
			return fmt.Errorf("sync: %w", err)
		}
		fmt.Printf("imported manifest version %s\n", descriptor.Version)
		return nil
	}

	synced, err := client.SyncManifest(ctx, onProgress)
	if err != nil {
		if errors.Is(err, manifest.ErrLocaleUnavailable) {
			return fmt.Errorf("locale %q has no content bundle: %w", cfg.Manifest.Locale, err)
		}
		return fmt.Errorf("sync: %w", err)
	}

	version, verr := client.Manifest().CurrentVersion(ctx)
	if verr != nil {
		return verr
	}
	if synced {
		fmt.Printf("imported manifest version %s\n", version)
	} else {
		fmt.Printf("already current at version %s\n", version)
	}
	return nil
}
