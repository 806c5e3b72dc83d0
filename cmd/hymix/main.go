// Package main provides the CLI entry point for hymix-go.
package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ukaji3/hymix-go/pkg/hymix"
	"github.com/ukaji3/hymix-go/pkg/hymix/models"
	"github.com/ukaji3/hymix-go/pkg/hymix/output"
)

var (
	outputPath     string
	jsonPath       string
	pretty         bool
	plotDir        string
	kind           string
	method         string
	tol            float64
	maxIter        int
	excludeMissing bool
	workers        int
	coefSheet      int
	sampleSheet    int
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hymix: ")

	rootCmd := &cobra.Command{
		Use:   "hymix [input.xlsx]",
		Short: "Estimate two-end-member mixing fractions from Excel files",
		Long: `hymix-go fits the fraction of end-member A in every sample of a workbook.
The first sheet holds the end-member coefficient rows, the second the samples.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Result workbook path (default: table on stdout)")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Write the report as JSON to this path (\"-\" for stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&plotDir, "plot-dir", "", "Directory for observed-vs-predicted scatter plots")
	rootCmd.Flags().StringVar(&kind, "type", "oil", "Mixing type: oil, gas")
	rootCmd.Flags().StringVar(&method, "method", "linear", "Fitting method for oil: linear, nonlinear")
	rootCmd.Flags().Float64Var(&tol, "tol", 0, "Search tolerance (default: per type)")
	rootCmd.Flags().IntVar(&maxIter, "max-iter", 0, "Search iteration limit (default: per type)")
	rootCmd.Flags().BoolVar(&excludeMissing, "exclude-missing", false, "Exclude empty sample cells instead of reading them as 0")
	rootCmd.Flags().IntVar(&workers, "workers", 1, "Samples fitted concurrently")
	rootCmd.Flags().IntVar(&coefSheet, "coef-sheet", 1, "Coefficient sheet number (1-based)")
	rootCmd.Flags().IntVar(&sampleSheet, "sample-sheet", 2, "Sample sheet number (1-based)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  listSheets,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts := hymix.Options{
		Kind:             hymix.Kind(kind),
		Method:           hymix.Method(method),
		Tol:              tol,
		MaxIter:          maxIter,
		ExcludeMissing:   excludeMissing,
		Workers:          workers,
		CoefficientSheet: coefSheet - 1,
		SampleSheet:      sampleSheet - 1,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	report, err := hymix.Estimate(inputPath, opts)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}
	log.Printf("calculation complete: %s / %s / %d samples", report.Kind, report.Method, len(report.Results))
	logDiagnostics(report.Diagnostics)

	table := output.ResultTable(report.VarNames, report.Results)

	if outputPath != "" {
		if err := output.SaveXLSX(outputPath, table); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Printf("results exported to %s", outputPath)
	} else if jsonPath != "-" {
		if err := printTable(table); err != nil {
			return err
		}
	}

	if jsonPath != "" {
		if err := writeJSON(report, jsonPath); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	}

	if plotDir != "" {
		yTrue, yPred := output.ScatterData(report.Results)
		paths, err := output.PlotScatter(plotDir, report.VarNames, yTrue, yPred)
		if err != nil {
			return fmt.Errorf("failed to write plots: %w", err)
		}
		log.Printf("wrote %d plots to %s", len(paths), plotDir)
	}

	return nil
}

func listSheets(cmd *cobra.Command, args []string) error {
	infos, err := hymix.ListSheets(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, info := range infos {
		fmt.Fprintf(w, "%d. %s\t%d rows\t%s\n", info.Index+1, info.Name, info.Rows, info.DataRange)
	}
	return w.Flush()
}

func logDiagnostics(d models.Diagnostics) {
	if d.DegenerateSamples > 0 {
		log.Printf("warning: %d samples used a degenerate fallback", d.DegenerateSamples)
	}
	if d.OutOfRange > 0 {
		log.Printf("warning: %d fractions fall outside [0, 1]", d.OutOfRange)
	}
	if d.MissingValues > 0 && !excludeMissing {
		log.Printf("note: %d empty sample cells were read as 0", d.MissingValues)
	}
}

func printTable(rows [][]string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func writeJSON(report *models.Report, path string) error {
	jsonData, err := output.ToJSON(report, pretty)
	if err != nil {
		return err
	}
	if path == "-" {
		fmt.Println(string(jsonData))
		return nil
	}
	return os.WriteFile(path, jsonData, 0644)
}
