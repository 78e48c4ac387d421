package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start the generator",
	Long:  `Switch to the specified profile and immediately start the name generator.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileName := args[0]

		cfg, logger, closer, err := loadRuntime()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		defer closer.Close()

		if err := cfg.UseProfile(profileName); err != nil {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}
		cfg.OverrideModel(modelFlag)

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		runApp(cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
