package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/namematch/internal/config"
)

// refDataDir resolves the --refdata flag, walking up to the persistent
// root flag when the subcommand itself doesn't define its own, falling
// back to the configured default.
func refDataDir(cmd *cobra.Command) string {
	if flag := cmd.Flags().Lookup("refdata"); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	if flag := cmd.Flags().Lookup("refdata"); flag != nil {
		return flag.Value.String()
	}
	return config.GetString("refdata.dir")
}
