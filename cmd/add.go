package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Add a file to the repository",
	Long:  "Register a file path in the tracked set. Re-adding a tracked file is not an error.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		added, err := r.AddFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if added {
			fmt.Fprintf(cmd.OutOrStdout(), "File added: %s\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "File already tracked: %s\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
