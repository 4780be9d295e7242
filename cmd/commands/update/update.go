// Package update implements the command that syncs the local vendor lookup
// table with the upstream OUI registry.
package update

import (
	"fmt"
	"os"

	"ouisync/internal/config"
	"ouisync/internal/registry"
	"ouisync/internal/source"
	"ouisync/internal/styles"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand returns the update command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [source]",
		Short: "Fetch the OUI registry and rebuild the local lookup table",
		Long: `Fetch the IEEE OUI registry, parse it into a normalized prefix-to-vendor
mapping, and write the flat KEY<TAB>VENDOR lookup table.

The source may be an http(s) URL or a local file path. Without an argument
the default upstream URLs are tried in order; set OUI_URL to override the
primary one.

Examples:
  # Sync from the default upstream URLs
  ouisync update

  # Sync from a previously downloaded copy
  ouisync update path/to/oui.txt`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         Run,
		SilenceUsage: true,
	}

	return cmd
}

// Run executes an update. Exported so the root command can run one when
// invoked without a subcommand.
func Run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var locations []string
	if len(args) == 1 {
		locations = []string{args[0]}
	} else {
		locations = source.Defaults(cfg.SourceURL)
	}

	text, location, err := loadWithProgress(cmd, locations)
	if err != nil {
		if len(args) == 0 {
			return fmt.Errorf("%w (pass a local copy instead: ouisync update path/to/oui.txt)", err)
		}
		return err
	}

	table := registry.Parse(text)
	if table.Len() == 0 {
		return fmt.Errorf("%w: %s yielded no entries", registry.ErrEmptyTable, location)
	}

	outputPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}
	if err := table.WriteFile(outputPath); err != nil {
		return err
	}

	result := fmt.Sprintf("Wrote %d entries to %s", table.Len(), outputPath)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		result = styles.Success.Render(result)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)

	return nil
}

// loadWithProgress loads the first reachable source, with a spinner when
// fetching over the network in a terminal.
func loadWithProgress(cmd *cobra.Command, locations []string) (text, location string, err error) {
	remote := false
	for _, loc := range locations {
		if source.IsURL(loc) {
			remote = true
			break
		}
	}

	if !remote || !term.IsTerminal(int(os.Stderr.Fd())) {
		return source.LoadFirst(cmd.Context(), locations)
	}

	accessible := os.Getenv("ACCESSIBLE") != ""
	var loadErr error
	spinErr := spinner.New().
		Title("Downloading OUI registry...").
		Accessible(accessible).
		Output(cmd.ErrOrStderr()).
		Action(func() {
			text, location, loadErr = source.LoadFirst(cmd.Context(), locations)
		}).
		Run()
	if spinErr != nil {
		return "", "", spinErr
	}
	return text, location, loadErr
}
