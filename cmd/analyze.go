package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/nkapur/csvdash/internal/api"
	"github.com/nkapur/csvdash/internal/config"
	"github.com/nkapur/csvdash/internal/html"
	"github.com/nkapur/csvdash/internal/report"
	"github.com/nkapur/csvdash/internal/tui"
	"github.com/nkapur/csvdash/utils"
)

var (
	serverURL    string
	outputFormat string
	reportPath   string
	configPath   string
	timeout      time.Duration
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [csv-file]",
	Short: "Upload a CSV file to the analysis service and render the summary",
	Long: `Analyze uploads a CSV file to the configured analysis service and renders
the returned summary: dataset shape, missing-value counts, per-column
statistics, and a row preview.

Examples:
  csvdash analyze                       # Interactive file selection
  csvdash analyze sales.csv             # Open the dashboard for sales.csv
  csvdash analyze sales.csv -o cli      # Print a plain-text report
  csvdash analyze sales.csv -o html     # Write a standalone HTML report
  csvdash analyze -s http://host:8000 sales.csv`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".csv"}),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		validFormats := []string{"tui", "cli", "html"}
		if outputFormat != "" && !slices.Contains(validFormats, outputFormat) {
			return fmt.Errorf("invalid output format: %s. Valid options: %v", outputFormat, validFormats)
		}

		// The .csv filter is advisory only; the server validates content.
		// Just make sure the file is actually there.
		if len(args) > 0 {
			if _, err := os.Stat(args[0]); os.IsNotExist(err) {
				return fmt.Errorf("file does not exist: %s", args[0])
			}
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if serverURL != "" {
			cfg.Server.URL = serverURL
		}
		if outputFormat != "" {
			cfg.Output.DefaultFormat = outputFormat
		}
		if timeout > 0 {
			cfg.Server.Timeout = timeout
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		client, err := api.NewClient(cfg.Server.URL, cfg.Server.Timeout)
		if err != nil {
			return err
		}

		file := ""
		if len(args) > 0 {
			file = args[0]
		}

		switch cfg.Output.DefaultFormat {
		case "cli":
			result, err := analyzeFile(client, file, "cli")
			if err != nil {
				return err
			}
			fmt.Print(report.RenderText(result, cfg.Chart.TopColumns))
			return nil

		case "html":
			result, err := analyzeFile(client, file, "html")
			if err != nil {
				return err
			}
			path, err := html.GenerateReport(result, cfg.Chart.TopColumns, reportPath)
			if err != nil {
				return err
			}
			fmt.Printf("Report written to %s\n", path)
			return nil

		default:
			return tui.StartTUI(cfg, client, file)
		}
	},
}

func analyzeFile(client *api.Client, file, format string) (*api.AnalysisResult, error) {
	if file == "" {
		return nil, fmt.Errorf("a csv file argument is required with -o %s", format)
	}

	result, err := client.AnalyzeFile(context.Background(), file)
	if err != nil {
		return nil, fmt.Errorf("%s", api.DisplayMessage(err))
	}
	return result, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&serverURL, "server", "s", "", "Analysis service base URL")
	analyzeCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (tui, cli, html)")
	analyzeCmd.Flags().StringVar(&reportPath, "report", "", "Output path for the HTML report")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 0, "Request timeout (e.g. 30s)")
	analyzeCmd.Flags().StringVar(&configPath, "config", "", "Config file path")

	// When user types: csvdash analyze file.csv -o <TAB>
	analyzeCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"tui", "cli", "html"}, cobra.ShellCompDirectiveNoFileComp
	})
}
