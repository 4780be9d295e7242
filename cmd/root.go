package cmd

import (
	"errors"
	"os"

	"ouisync/cmd/commands/lookup"
	"ouisync/cmd/commands/update"
	"ouisync/internal/registry"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// Invoked bare, or with a single source argument, it behaves exactly like
// "ouisync update", so the historical one-argument invocation keeps working.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "ouisync [source]",
		Short: "Keep a local OUI vendor lookup table in sync with the IEEE registry",
		Long: `ouisync keeps a local, fast-lookup copy of the IEEE OUI registry in sync
with the upstream source. It downloads the plain-text registry, parses it
into a normalized prefix-to-vendor mapping, and writes a flat
KEY<TAB>VENDOR table next to the executable.

Quick start:
  ouisync                          # Sync from the default upstream URLs
  ouisync path/to/oui.txt          # Sync from a local copy
  ouisync lookup 00:60:94:aa:bb:cc # Query the synced table`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         update.Run,
		SilenceUsage: true,
	}

	cmd.AddCommand(update.NewCommand())
	cmd.AddCommand(lookup.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and runs it. Called
// by main.main(). Exits with status 2 when the registry parsed to an empty
// table and status 1 for any other failure, unreachable sources included.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		if errors.Is(err, registry.ErrEmptyTable) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
