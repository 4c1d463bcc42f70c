package nimbus

import (
	"github.com/spf13/cobra"
)

// showCmd groups the read-only inspection subcommands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show server settings and registered tools",
}

func init() {
	rootCmd.AddCommand(showCmd)
}
