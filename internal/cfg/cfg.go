// Package cfg provides configuration and command-line interface setup for chanarr.
package cfg

import (
	"fmt"
	"os"
	"strings"

	"chanarr/internal/domain/keys"
	"chanarr/internal/utils/logging"
	"chanarr/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "chanarr <source-url>",
	Short: "chanarr bulk-downloads a channel's content and extracts audio.",
	Long: `chanarr wraps yt-dlp and FFmpeg to download a channel's videos,
shorts, or streams (or a single video), extract audio into a chosen
format, and organize the results under the output directory.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.IsSet(keys.ConfigFile) {
			configFile := viper.GetString(keys.ConfigFile)
			if configFile != "" {
				if err := loadConfigFile(configFile); err != nil {
					fmt.Fprintf(os.Stderr, "failed loading config file: %v\n", err)
					os.Exit(1)
				}
			}
		}

		logging.Level = validation.ValidateLoggingLevel(viper.GetInt(keys.DebugLevel))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil
		}
		viper.Set(keys.Source, args[0])
		viper.Set(keys.Execute, true)
		return nil
	},
}

// InitCommands initializes the root command and its flags.
func InitCommands() error {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("chanarr")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return initProgramFlags(rootCmd)
}

// Execute runs the root command and parses flags.
func Execute() error {
	return rootCmd.Execute()
}
