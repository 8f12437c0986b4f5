package root

import (
	"github.com/spf13/cobra"

	"github.com/roster-framework/rosty/cmd/export"

	"github.com/roster-framework/rosty/cmd/nurses"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rosty",
		Short: "Rosty enumerates cyclic nurse-shift rosters",
		Long: `Enumerates every schedule satisfying a cyclic nurse-shift roster model.
For more information visit https://github.com/roster-framework/rosty`,
	}

	// add sub-commands
	rootCmd.AddCommand(nurses.NewNursesCommand())
	rootCmd.AddCommand(export.NewExportCommand())

	return rootCmd
}
