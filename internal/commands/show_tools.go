package nimbus

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/nimbus/internal/tools"
)

// showToolsCmd prints the registered tool table with the input schema each
// tool publishes to MCP clients.
var showToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Show registered MCP tools and their input schemas",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, def := range tools.Definitions() {
			schema, err := tools.SchemaJSON(def)
			if err != nil {
				return fmt.Errorf("schema for %s: %w", def.Name, err)
			}
			fmt.Fprintf(out, "%s: %s\n", def.Name, def.Description)
			fmt.Fprintf(out, "  schema: %s\n", schema)
		}
		return nil
	},
}

func init() {
	showCmd.AddCommand(showToolsCmd)
}
