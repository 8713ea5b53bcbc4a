package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osheron/destinykit/internal/store"
	"github.com/osheron/destinykit/models"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <table> <hash>",
	Short: "Print one definition from the local snapshot",
	Long: `Lookup resolves a definition by category and hash against the local
content store and prints its JSON payload. The table may be the short
category name ("InventoryItem") or the full SQL name
("DestinyInventoryItemDefinition"). The hash accepts unsigned or signed
notation.

Example:
  destinyctl lookup InventoryItem 3159615086
  destinyctl lookup DestinyClassDefinition 671679327`,
	Args: cobra.ExactArgs(2),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	table, err := parseTableArg(args[0])
	if err != nil {
		return err
	}
	hash, err := parseHashArg(args[1])
	if err != nil {
		return err
	}

	payload, err := client.Lookup(cmd.Context(), table, hash)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDefinitionNotFound):
			return fmt.Errorf("no %s definition with hash %d in the local snapshot", table, hash)
		case errors.Is(err, store.ErrNoVersion):
			return fmt.Errorf("local store is empty; run `destinyctl sync` first")
		}
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); err != nil {
		// payload is stored verbatim; print it raw if it will not indent
		fmt.Println(string(payload))
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}

// parseTableArg accepts both the short category name and the full SQL table
// name, case-sensitively.
func parseTableArg(raw string) (models.DefinitionTable, error) {
	if table, ok := models.ParseDefinitionTable(raw); ok {
		return table, nil
	}
	for _, table := range models.AllDefinitionTables() {
		if string(table) == raw {
			return table, nil
		}
	}

	names := make([]string, 0, len(models.AllDefinitionTables()))
	for _, table := range models.AllDefinitionTables() {
		names = append(names, string(table))
	}
	return "", fmt.Errorf("unknown definition table %q; one of: %s", raw, strings.Join(names, ", "))
}

// parseHashArg accepts the unsigned form used by the API (3159615086) and
// the signed form seen inside the content database (-1135352210).
func parseHashArg(raw string) (uint32, error) {
	if unsigned, err := strconv.ParseUint(raw, 10, 32); err == nil {
		return uint32(unsigned), nil
	}
	if signed, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return store.UnsignedHash(signed), nil
	}
	return 0, fmt.Errorf("invalid definition hash %q", raw)
}
