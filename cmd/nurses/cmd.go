package nurses

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/roster-framework/rosty/pkg/roster"
	"github.com/roster-framework/rosty/pkg/roster/nurses"
	"github.com/roster-framework/rosty/pkg/roster/solve"
)

func NewNursesCommand() *cobra.Command {
	var (
		configPath string
		engine     string
		quiet      bool
	)
	cfg := nurses.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "nurses",
		Short: "Enumerates every valid roster and reports search statistics",
		Long: `Builds the cyclic nurse-shift roster model, enumerates every satisfying
schedule with the selected engine, and prints the final search statistics.
Sizing flags override values loaded from --config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileCfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				// sizing flags set on the command line win over the file
				if !cmd.Flags().Changed("nurses") {
					cfg.Nurses = fileCfg.Nurses
				}
				if !cmd.Flags().Changed("shifts") {
					cfg.Shifts = fileCfg.Shifts
				}
				if !cmd.Flags().Changed("days") {
					cfg.Days = fileCfg.Days
				}
				cfg.MinDaysOff = fileCfg.MinDaysOff
				cfg.MaxDaysOff = fileCfg.MaxDaysOff
				cfg.MaxNursesPerShift = fileCfg.MaxNursesPerShift
			}
			return enumerate(cmd, cfg, engine, quiet)
		},
	}

	cmd.Flags().IntVar(&cfg.Nurses, "nurses", cfg.Nurses, "number of nurses on the roster")
	cmd.Flags().IntVar(&cfg.Shifts, "shifts", cfg.Shifts, "number of shifts per day, the off shift included")
	cmd.Flags().IntVar(&cfg.Days, "days", cfg.Days, "number of days in the cycle")
	cmd.Flags().StringVar(&engine, "engine", solve.EngineGopherSAT, "search engine (gophersat or gini)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON roster config")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the per-solution lines")

	return cmd
}

func loadConfig(path string) (nurses.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nurses.Config{}, fmt.Errorf("error reading config file (%s): %w", path, err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nurses.Config{}, fmt.Errorf("error parsing config file (%s): %w", path, err)
	}
	return nurses.ConfigFromMap(raw)
}

func enumerate(cmd *cobra.Command, cfg nurses.Config, engine string, quiet bool) error {
	sched, err := nurses.Build(cfg)
	if err != nil {
		return err
	}

	enumerator, err := solve.NewEnumerator(solve.WithEngine(engine))
	if err != nil {
		return err
	}

	printer := &solutionPrinter{out: cmd.OutOrStdout(), quiet: quiet}
	result, err := enumerator.EnumerateAll(cmd.Context(), sched.Model(), printer)
	if err != nil {
		return err
	}

	report(cmd.OutOrStdout(), result)
	return nil
}

// solutionPrinter prints one line per solution as the engine finds them.
// Handlers may be invoked from whatever goroutine the engine searches
// on, so counting and printing happen under one lock to keep each index
// on exactly one line.
type solutionPrinter struct {
	solve.SolutionCounter
	mu    sync.Mutex
	out   io.Writer
	quiet bool
}

func (p *solutionPrinter) OnSolutionFound(s roster.Solution) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.SolutionCounter.OnSolutionFound(s)
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "Solution %d, time = %.2f s\n", p.SolutionCount(), s.WallTime().Seconds())
}

func report(w io.Writer, r roster.Result) {
	fmt.Fprintln(w, "Statistics")
	fmt.Fprintf(w, "  - status          : %s\n", r.Status)
	fmt.Fprintf(w, "  - conflicts       : %d\n", r.Conflicts)
	fmt.Fprintf(w, "  - branches        : %d\n", r.Branches)
	fmt.Fprintf(w, "  - wall time       : %.2f s\n", r.WallTime.Seconds())
	fmt.Fprintf(w, "  - solutions found : %d\n", r.SolutionCount)
}
