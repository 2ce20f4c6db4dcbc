package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codebird/internal/config"
	"codebird/internal/dlog"
	"codebird/internal/repo"
	"codebird/internal/ui"
	"codebird/pkg/errors"
)

var (
	chdirFlag    string
	logLevelFlag string
	noColorFlag  bool

	// appLogger is resolved from flags and config before any command runs
	appLogger = zap.NewNop()

	rootCmd = &cobra.Command{
		Use:   "codebird",
		Short: "A simple version control system",
		Long: "CodeBird - A simple version control system with branch management\n" +
			"and conflict-aware merging. Repository state lives in a .cbird\n" +
			"directory and survives between invocations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			mode := viper.GetString("color")
			if noColorFlag {
				mode = "never"
			}
			ui.SetColorMode(mode)

			level := logLevelFlag
			if level == "" {
				level = viper.GetString("log_level")
			}
			logger, err := dlog.GetLogger(level)
			if err != nil {
				return errors.ValidationError("log-level", "must be one of none, info, debug")
			}
			appLogger = logger
			return nil
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.ShowError(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&chdirFlag, "chdir", "C", "",
		"run as if codebird was started in this directory")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"diagnostic log level (none, info, debug)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false,
		"disable colored output")
}

func initConfig() {
	if configFile := os.Getenv("CODEBIRD_CONFIG"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(config.GetConfigPath())
	}

	viper.SetDefault("color", "auto")
	viper.SetDefault("log_level", "none")
	viper.SetDefault("log_limit", 0)

	viper.SetEnvPrefix("CODEBIRD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found is okay for now
	}
}

// repoDir is the directory the command operates on, honoring --chdir
func repoDir() string {
	if chdirFlag != "" {
		return chdirFlag
	}
	return "."
}

// openRepo opens the repository in the working directory
func openRepo() (*repo.Repository, error) {
	return repo.Open(repoDir(), repo.WithLogger(appLogger))
}
