package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	logLimitFlag int
	logShortFlag bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the commit history of the current branch",
	Long:  "Print the current branch's commits in chronological order.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		// An explicit --limit (including 0, meaning all) wins over the
		// configured log_limit
		limit := logLimitFlag
		if !cmd.Flags().Changed("limit") {
			limit = viper.GetInt("log_limit")
		}

		branch, commits, err := r.Log(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if logShortFlag {
			for _, commit := range commits {
				fmt.Fprintf(out, "%s %s\n", commit.ShortID(), commit.Message)
			}
			return nil
		}

		fmt.Fprintf(out, "Commit History for branch %s:\n", branch)
		for _, commit := range commits {
			fmt.Fprintf(out, "Commit Hash: %s\n", commit.ID)
			fmt.Fprintf(out, "Message: %s\n", commit.Message)
			fmt.Fprintf(out, "Timestamp: %s\n", commit.Timestamp)
			fmt.Fprintf(out, "Changes: %s\n\n", commit.Changes)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().IntVar(&logLimitFlag, "limit", 0, "show only the most recent commits (0 shows all)")
	logCmd.Flags().BoolVar(&logShortFlag, "short", false, "one line per commit")
	rootCmd.AddCommand(logCmd)
}
