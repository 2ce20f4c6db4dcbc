package ui

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// BranchRow is one row of the branch listing table.
type BranchRow struct {
	Name       string
	Commits    int
	LastCommit string
	LastTime   string
	Current    bool
}

// BranchTable renders the branch listing as a table. The current branch is
// marked and highlighted when colors are enabled.
func BranchTable(rows []BranchRow) string {
	var buf strings.Builder

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"", "Branch", "Commits", "Last Commit", "When"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range rows {
		marker := ""
		name := row.Name
		if row.Current {
			marker = "*"
			if supportsColor {
				marker = color.GreenString("*")
				name = color.GreenString(name)
			}
		}

		last := row.LastCommit
		if last == "" {
			last = "-"
		}
		when := row.LastTime
		if when == "" {
			when = "-"
		}

		table.Append([]string{
			marker,
			name,
			strconv.Itoa(row.Commits),
			last,
			when,
		})
	}

	table.Render()
	return buf.String()
}
