package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/namematch/cmd/namematch/commands"
	"github.com/teranos/namematch/internal/config"
	"github.com/teranos/namematch/logger"
)

var rootCmd = &cobra.Command{
	Use:   "namematch",
	Short: "namematch - fuzzy human-name comparison and record linkage",
	Long: `namematch decides whether two human names plausibly refer to the
same person, cascading through spelling, nickname, spelling-rule, and
pronunciation comparisons before giving up.

Available commands:
  compare      - Compare two names and print the verdict
  serve-mcp    - Expose compare_names as an MCP tool over stdio
  refdata      - Validate the reference-data directory`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeAtVerbosity(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	if err := logger.Initialize(false); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to initialize logger: %v\n", err)
	}

	rootCmd.PersistentFlags().Bool("json", false, "Emit structured JSON logs instead of human-readable console output")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().String("refdata", config.GetString("refdata.dir"), "Path to the reference-data directory")

	rootCmd.AddCommand(commands.CompareCmd)
	rootCmd.AddCommand(commands.ServeMCPCmd)
	rootCmd.AddCommand(commands.RefDataCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
