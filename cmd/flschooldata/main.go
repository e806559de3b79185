// Package main provides the CLI entry point for flschooldata-go.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/flschooldata/flschooldata-go/pkg/flschooldata"
	"github.com/flschooldata/flschooldata-go/pkg/flschooldata/frame"
	"github.com/flschooldata/flschooldata-go/pkg/flschooldata/output"
)

var (
	outputPath  string
	format      string
	pretty      bool
	tidy        bool
	rscriptPath string
	rOutput     bool
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flschooldata",
		Short: "Fetch Florida school enrollment data",
		Long: `flschooldata-go exposes the flschooldata R package's enrollment
fetching functions from the command line. It requires a working R
installation with the flschooldata and jsonlite packages.`,
		Version:       flschooldata.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&rscriptPath, "rscript", "", "Path to the Rscript executable (default: search PATH)")
	rootCmd.PersistentFlags().BoolVar(&rOutput, "r-output", false, "Show R package startup messages on stderr")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	fetchCmd := &cobra.Command{
		Use:   "fetch [year]...",
		Short: "Fetch enrollment data for one or more school years",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFetch,
	}
	fetchCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	fetchCmd.Flags().StringVar(&format, "format", "json", "Output format: json, csv, xlsx")
	fetchCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	fetchCmd.Flags().BoolVar(&tidy, "tidy", false, "Reshape the result through tidy_enr")

	yearsCmd := &cobra.Command{
		Use:   "years",
		Short: "List the school years available upstream",
		Args:  cobra.NoArgs,
		RunE:  runYears,
	}
	yearsCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(fetchCmd, yearsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildOptions() flschooldata.Options {
	quiet := !rOutput
	if rscriptPath != "" {
		log.Debug("using Rscript override", "path", rscriptPath)
	}
	return flschooldata.Options{
		RscriptPath: rscriptPath,
		Quiet:       &quiet,
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	years := make([]int, len(args))
	for i, arg := range args {
		y, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid year: %s", arg)
		}
		years[i] = y
	}

	switch format {
	case "json", "csv", "xlsx":
	default:
		return fmt.Errorf("invalid format: %s (must be json, csv, or xlsx)", format)
	}
	if format == "xlsx" && outputPath == "" {
		return fmt.Errorf("xlsx format requires --output")
	}

	opts := buildOptions()

	var (
		f     *frame.Frame
		err   error
		start = time.Now()
	)
	if len(years) == 1 {
		f, err = flschooldata.FetchEnr(years[0], opts)
	} else {
		f, err = flschooldata.FetchEnrMulti(years, opts)
	}
	if err != nil {
		return err
	}
	log.Debug("fetched enrollment data", "years", years, "rows", f.NumRows(), "cols", f.NumCols(), "took", time.Since(start))

	if tidy {
		start = time.Now()
		f, err = flschooldata.TidyEnr(f, opts)
		if err != nil {
			return err
		}
		log.Debug("tidied enrollment data", "rows", f.NumRows(), "cols", f.NumCols(), "took", time.Since(start))
	}

	return writeFrame(f)
}

func runYears(cmd *cobra.Command, args []string) error {
	opts := buildOptions()

	years, err := flschooldata.AvailableYears(opts)
	if err != nil {
		return err
	}

	jsonData, err := output.YearsToJSON(years, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}

func writeFrame(f *frame.Frame) error {
	switch format {
	case "json":
		jsonData, err := output.ToJSON(f, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if outputPath != "" {
			return os.WriteFile(outputPath, jsonData, 0644)
		}
		fmt.Println(string(jsonData))
		return nil
	case "csv":
		if outputPath != "" {
			out, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer out.Close()
			return output.WriteCSV(out, f)
		}
		return output.WriteCSV(os.Stdout, f)
	case "xlsx":
		return output.WriteXLSX(outputPath, f)
	}
	return nil
}
