package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"codebird/internal/repo"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new CodeBird repository",
	Long:  "Create the .cbird directory and the repository database with a single empty main branch.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := repo.Init(repoDir(), repo.WithLogger(appLogger))
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		fmt.Fprintln(cmd.OutOrStdout(), "Repository initialized! .cbird directory created.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
