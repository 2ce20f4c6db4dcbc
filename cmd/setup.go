package cmd

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"codebird/internal/config"
	"codebird/internal/ui"
)

var setupForceFlag bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Initial configuration setup",
	Long:  "Interactively create the user configuration file with display and logging preferences.",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	ui.ShowHeader("CodeBird Setup")
	fmt.Println()

	// Check if config already exists
	if config.Exists() && !setupForceFlag {
		overwrite, err := ui.Confirm("Configuration already exists. Do you want to overwrite it?", false)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	settings := config.Default()

	qs := []*survey.Question{
		{
			Name: "color",
			Prompt: &survey.Select{
				Message: "Terminal colors:",
				Options: []string{"auto", "always", "never"},
				Default: settings.Color,
			},
		},
		{
			Name: "loglevel",
			Prompt: &survey.Select{
				Message: "Diagnostic log level:",
				Options: []string{"none", "info", "debug"},
				Default: settings.LogLevel,
			},
		},
		{
			Name: "loglimit",
			Prompt: &survey.Input{
				Message: "Default number of commits shown by 'codebird log' (0 shows all):",
				Default: strconv.Itoa(settings.LogLimit),
			},
			Validate: validateLogLimit,
		},
	}

	answers := struct {
		Color    string
		LogLevel string `survey:"loglevel"`
		LogLimit string `survey:"loglimit"`
	}{}

	if err := survey.Ask(qs, &answers); err != nil {
		return err
	}

	settings.Color = answers.Color
	settings.LogLevel = answers.LogLevel
	settings.LogLimit, _ = strconv.Atoi(answers.LogLimit)

	if err := config.Save(settings); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Configuration saved to:", config.GetConfigFile())
	fmt.Println()
	fmt.Println("Create a repository with: codebird init")
	return nil
}

func validateLogLimit(val interface{}) error {
	s, ok := val.(string)
	if !ok {
		return fmt.Errorf("a number is required")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}

func init() {
	setupCmd.Flags().BoolVar(&setupForceFlag, "force", false, "overwrite an existing configuration without asking")
	rootCmd.AddCommand(setupCmd)
}
