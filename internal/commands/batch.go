package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/payoff/internal/schedule"
)

func newBatchCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "batch <scenarios.csv>",
		Short: "Compute a summary row for every scenario in a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args[0], outPath, time.Now())
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the summary to a file instead of stdout")

	return cmd
}

func runBatch(path, outPath string, now time.Time) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scenarios, err := schedule.ReadScenarios(f)
	if err != nil {
		return err
	}

	results := make([]schedule.NamedResult, 0, len(scenarios))
	for _, sc := range scenarios {
		res := sc.Fields.Compute(now)
		if res.Insufficient() {
			fmt.Fprintf(os.Stderr, "warning: scenario %q has incomplete inputs\n", sc.Name)
		}
		results = append(results, schedule.NamedResult{Name: sc.Name, Result: res})
	}

	if outPath == "" {
		return schedule.WriteSummaries(os.Stdout, results)
	}
	return writeFile(outPath, func(w io.Writer) error {
		return schedule.WriteSummaries(w, results)
	})
}
