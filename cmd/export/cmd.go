package export

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roster-framework/rosty/pkg/roster"
	"github.com/roster-framework/rosty/pkg/roster/nurses"
)

func NewExportCommand() *cobra.Command {
	var output string
	cfg := nurses.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Writes the roster model in OPB pseudo-boolean format",
		Long: `Builds the cyclic nurse-shift roster model and writes it in the OPB
pseudo-boolean format consumed by external PB solvers, so the instance
can be inspected or solved outside this tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := nurses.Build(cfg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("error creating output file (%s): %w", output, err)
				}
				defer f.Close()
				w = f
			}
			return roster.WriteOPB(w, sched.Model())
		},
	}

	cmd.Flags().IntVar(&cfg.Nurses, "nurses", cfg.Nurses, "number of nurses on the roster")
	cmd.Flags().IntVar(&cfg.Shifts, "shifts", cfg.Shifts, "number of shifts per day, the off shift included")
	cmd.Flags().IntVar(&cfg.Days, "days", cfg.Days, "number of days in the cycle")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
