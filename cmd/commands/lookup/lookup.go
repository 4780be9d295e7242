// Package lookup implements the command that queries the local vendor
// lookup table for MAC addresses.
package lookup

import (
	"fmt"
	"text/tabwriter"

	"ouisync/internal/config"
	"ouisync/internal/registry"

	"github.com/spf13/cobra"
)

// NewCommand returns the lookup command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <address>...",
		Short: "Look up vendors for MAC addresses in the local table",
		Long: `Look up the hardware vendor for one or more MAC addresses or OUI
prefixes in the locally synced table.

Addresses may use colon, hyphen, or bare notation; anything past the first
six hex digits is ignored. Run "ouisync update" first to build the table.

Examples:
  ouisync lookup 00:60:94:aa:bb:cc
  ouisync lookup 00-00-0C 006094`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runLookup,
		SilenceUsage: true,
	}

	return cmd
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, err := cfg.DatabasePath()
	if err != nil {
		return err
	}

	table, err := registry.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open lookup table (run \"ouisync update\" first): %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ADDRESS\tVENDOR")
	fmt.Fprintln(w, "-------\t------")

	for _, addr := range args {
		vendor, ok := table.Lookup(addr)
		if !ok {
			vendor = "(unknown)"
		}
		fmt.Fprintf(w, "%s\t%s\n", addr, vendor)
	}

	w.Flush()
	return nil
}
