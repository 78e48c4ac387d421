package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Rorical/storenamer/internal/app"
	"github.com/Rorical/storenamer/internal/config"
	"github.com/Rorical/storenamer/internal/logging"
)

var (
	profileFlag string
	modelFlag   string
	logFileFlag string
	debugFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "storenamer",
	Short: "AI store name generator",
	Long:  `StoreNamer turns a short description of your store into catchy, brandable name ideas.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, closer, err := loadRuntime()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		defer closer.Close()

		runApp(cfg, logger)
	},
}

func runApp(cfg *config.Config, logger *logrus.Logger) {
	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		logger.WithError(err).Error("Application error")
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
	}
}

// loadRuntime loads the config, applies the global flags and opens the log.
func loadRuntime() (*config.Config, *logrus.Logger, io.Closer, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	if profileFlag != "" {
		if err := cfg.UseProfile(profileFlag); err != nil {
			return nil, nil, nil, err
		}
	}
	cfg.OverrideModel(modelFlag)
	if logFileFlag != "" {
		cfg.SetLogPath(logFileFlag)
	}

	logger, closer, err := logging.New(cfg.LogPath(), debugFlag)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, closer, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "profile to use for this run")
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "model override for this run")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "log file path (default ~/.storenamer/storenamer.log)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	rootCmd.AddCommand(profileCmd)
}
