package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"codebird/internal/ui"
)

var createCmd = &cobra.Command{
	Use:   "create <branch_name>",
	Short: "Create a new branch",
	Long:  "Create a new empty branch. The current branch is not changed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		if err := r.CreateBranch(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Branch %s created.\n", args[0])
		return nil
	},
}

var switchCmd = &cobra.Command{
	Use:   "switch <branch_name>",
	Short: "Switch to an existing branch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		if err := r.SwitchBranch(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Switched to branch %s\n", args[0])
		return nil
	},
}

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List all branches",
	Long:  "Print every branch with its commit count and last commit, marking the current one.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		summaries, err := r.Branches(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([]ui.BranchRow, 0, len(summaries))
		for _, summary := range summaries {
			row := ui.BranchRow{
				Name:    summary.Name,
				Commits: summary.Commits,
				Current: summary.Current,
			}
			if summary.LastCommit != nil {
				row.LastCommit = summary.LastCommit.ShortID()
				row.LastTime = summary.LastCommit.Timestamp
			}
			rows = append(rows, row)
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.BranchTable(rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(branchesCmd)
}
