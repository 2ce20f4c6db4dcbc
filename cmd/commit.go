package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit <file>...",
	Short: "Commit changes made to the repository",
	Long:  "Append a commit covering the named files to the current branch's history.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		commit, err := r.Commit(cmd.Context(), args)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Commit made on branch %s with message: %s\n",
			commit.Branch, commit.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
}
