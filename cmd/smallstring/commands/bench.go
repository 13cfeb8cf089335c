package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/smallstring/pkg/bench"
	"github.com/haivivi/smallstring/pkg/cli"
)

var (
	benchFile   string
	benchOutput string
	benchFormat string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure append throughput against the standard library",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cli.ParseFormat(benchFormat)
		if err != nil {
			return err
		}

		scenarios := []bench.Scenario{bench.DefaultScenario()}
		if benchFile != "" {
			scenarios, err = bench.LoadScenarios(benchFile)
			if err != nil {
				return err
			}
		}

		var results []bench.Result
		for _, s := range scenarios {
			if verbose {
				fmt.Fprintf(os.Stderr, "running %s...\n", s.Name)
			}
			results = append(results, bench.Run(s)...)
		}

		if format == cli.FormatTable {
			renderResults(results)
			if benchOutput == "" {
				return nil
			}
			// A table on screen plus a structured file on disk.
			format = cli.FormatYAML
		}
		return cli.Export(os.Stdout, benchOutput, format, results)
	},
}

func renderResults(results []bench.Result) {
	styles := cli.NewStyles(cli.DefaultTheme)
	headers := []string{"SCENARIO", "TARGET", "BYTES", "TIME", "PER APPEND", "THROUGHPUT"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Scenario,
			r.Target,
			cli.FormatBytes(r.Bytes),
			cli.FormatDuration(r.Elapsed),
			cli.FormatNsPerOp(r.NsPerOp),
			cli.FormatRate(r.MBPerSec),
		})
	}
	fmt.Print(styles.RenderTable(headers, rows))
	if len(results) > 0 {
		fmt.Println(styles.Note.Render("run " + results[0].RunID))
	}
}

func init() {
	benchCmd.Flags().StringVarP(&benchFile, "file", "f", "", "YAML scenario file")
	benchCmd.Flags().StringVarP(&benchOutput, "output", "o", "", "write results to this file")
	benchCmd.Flags().StringVar(&benchFormat, "format", "table", "output format (table, yaml, json)")
	rootCmd.AddCommand(benchCmd)
}
