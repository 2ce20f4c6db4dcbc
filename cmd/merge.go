package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"codebird/pkg/errors"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <branch_name>",
	Short: "Merge a branch into the current branch",
	Long: "Merge the named branch into the current branch. When overlapping changes\n" +
		"are detected the merge is aborted and the files needing manual resolution\n" +
		"are listed.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		result, err := r.Merge(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Merging branch %s into %s\n", result.Source, result.Target)

		if result.Conflict {
			fmt.Fprintln(out, "Conflict detected! Merge cannot be completed automatically.")
			fmt.Fprintf(out, "Please resolve conflicts manually in the following files: %s\n",
				strings.Join(result.ConflictFiles, " "))
			fmt.Fprintln(out, "Merge aborted.")
			return errors.MergeConflictError(result.Source, result.Target, result.ConflictFiles)
		}

		fmt.Fprintln(out, "Merge completed successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
