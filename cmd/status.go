package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusFilesFlag bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current status of the repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		status, err := r.Status(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Currently on branch: %s\n", status.Branch)

		if statusFilesFlag {
			if len(status.TrackedFiles) == 0 {
				fmt.Fprintln(out, "Tracked files: (none)")
				return nil
			}
			fmt.Fprintln(out, "Tracked files:")
			for _, path := range status.TrackedFiles {
				fmt.Fprintf(out, "  %s\n", path)
			}
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusFilesFlag, "files", false, "also list tracked files")
	rootCmd.AddCommand(statusCmd)
}
