package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osheron/destinykit/internal/store"
)

var flagRemote bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the locally imported manifest version",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&flagRemote, "remote", false, "also fetch and print the published version")
}

func runVersion(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	local, err := client.Manifest().CurrentVersion(ctx)
	switch {
	case errors.Is(err, store.ErrNoVersion):
		fmt.Println("local:  (none imported)")
	case err != nil:
		return err
	default:
		fmt.Printf("local:  %s\n", local)
	}

	if !flagRemote {
		return nil
	}

	descriptor, err := client.API().GetDestinyManifest(ctx)
	if err != nil {
		return fmt.Errorf("fetch manifest descriptor: %w", err)
	}
	fmt.Printf("remote: %s\n", descriptor.Version)

	needed, err := client.Manifest().NeedsUpdate(ctx, descriptor)
	if err != nil {
		return err
	}
	if needed {
		fmt.Println("status: out of date, run `destinyctl sync`")
	} else {
		fmt.Println("status: current")
	}
	return nil
}
