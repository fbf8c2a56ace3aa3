package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/namematch/internal/config"
	"github.com/teranos/namematch/refdata"
)

// RefDataCmd groups reference-data maintenance operations.
var RefDataCmd = &cobra.Command{
	Use:   "refdata",
	Short: "Inspect and validate the reference-data directory",
}

var refDataValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the reference-data directory and report table sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := refDataDir(cmd)
		if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
			cfg, err := config.LoadFromFile(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config %s: %w", cfgPath, err)
			}
			dir = cfg.RefData.Dir
		}

		tables, err := refdata.Load(dir)
		if err != nil {
			return fmt.Errorf("reference data invalid: %w", err)
		}

		pterm.Success.Printf("reference data at %s is valid\n", dir)
		pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
			{Level: 0, Text: fmt.Sprintf("names -> IPA: %d entries", len(tables.NamesToIPA))},
			{Level: 0, Text: fmt.Sprintf("syllables -> IPA: %d entries", len(tables.SyllableToIPA))},
			{Level: 0, Text: fmt.Sprintf("top surnames: %d entries", len(tables.TopSurnames))},
			{Level: 0, Text: fmt.Sprintf("IPA rules: %d rules", len(tables.IPARules))},
			{Level: 0, Text: fmt.Sprintf("spelling rules: %d rules", len(tables.SpellingRules))},
			{Level: 0, Text: fmt.Sprintf("nickname sets: %d classes", len(tables.NicknameSets))},
		}).Render()
		return nil
	},
}

func init() {
	refDataValidateCmd.Flags().String("config", "", "Validate the refdata directory named by this TOML config file instead of --refdata")
	RefDataCmd.AddCommand(refDataValidateCmd)
}
