package nimbus

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/nimbus/internal/appconfig"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON config is loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Debug:     viper.GetBool("debug"),
			APIBase:   viper.GetString("apiBase"),
			UserAgent: viper.GetString("userAgent"),
			Timeout:   viper.GetInt("timeout"),
			LogFile:   viper.GetString("logFile"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
