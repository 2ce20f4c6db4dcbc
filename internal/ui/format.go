package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

var (
	// Check if output supports colors
	supportsColor = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	// Color functions
	ColorSuccess = colorFunc(ansi.Green)
	ColorError   = colorFunc(ansi.Red)
	ColorWarning = colorFunc(ansi.Yellow)
	ColorInfo    = colorFunc(ansi.Cyan)
	ColorBold    = colorFunc("default+b")
	ColorDim     = colorFunc("default+h")
)

// SetColorMode applies the user's color preference: always, never, or auto
func SetColorMode(mode string) {
	switch mode {
	case "always":
		supportsColor = true
	case "never":
		supportsColor = false
	default:
		supportsColor = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	color.NoColor = !supportsColor
}

// colorFunc returns a function that colors text if supported
func colorFunc(c string) func(string) string {
	return func(text string) string {
		if supportsColor {
			return ansi.Color(text, c)
		}
		return text
	}
}

// ShowHeader displays a formatted header
func ShowHeader(title string) {
	width := 50
	padding := (width - len(title) - 2) / 2

	fmt.Println("\n+" + strings.Repeat("-", width-2) + "+")
	fmt.Printf("|%s%s%s|\n",
		strings.Repeat(" ", padding),
		ColorBold(title),
		strings.Repeat(" ", width-2-padding-len(title)),
	)
	fmt.Println("+" + strings.Repeat("-", width-2) + "+")
}

// ShowError displays a formatted error message on stderr
func ShowError(err error) {
	fmt.Fprintf(os.Stderr, "\n%s\n", ColorError("ERROR:"))

	message := err.Error()
	lines := strings.Split(message, "\n")

	for i, line := range lines {
		if i == 0 {
			fmt.Fprintf(os.Stderr, "  %s\n", line)
		} else {
			fmt.Fprintf(os.Stderr, "  %s\n", ColorDim(line))
		}
	}

	// Add helpful suggestions if applicable
	if suggestion := getSuggestion(message); suggestion != "" {
		fmt.Fprintf(os.Stderr, "\n  %s %s\n", ColorInfo("TIP:"), ColorInfo(suggestion))
	}
}

// ShowSuccess displays a success message
func ShowSuccess(message string) {
	fmt.Printf("%s %s\n", ColorSuccess("SUCCESS:"), message)
}

// ShowWarning displays a warning message
func ShowWarning(message string) {
	fmt.Printf("%s %s\n", ColorWarning("WARNING:"), ColorWarning(message))
}

// ShowInfo displays an info message
func ShowInfo(message string) {
	fmt.Printf("%s %s\n", ColorInfo("INFO:"), message)
}

// getSuggestion returns helpful suggestions based on error messages
func getSuggestion(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "not a codebird repository"):
		return "Run 'codebird init' to create a repository in this directory"
	case strings.Contains(lower, "already initialized"):
		return "This directory already has a repository; remove .cbird to start over"
	case strings.Contains(lower, "does not exist") && strings.Contains(lower, "branch"):
		return "Run 'codebird branches' to list the branches that exist"
	case strings.Contains(lower, "no files modified"):
		return "Name the files the commit covers, e.g. 'codebird commit main.go'"
	case strings.Contains(lower, "permission denied"):
		return "Check the ownership and permissions of the .cbird directory"
	default:
		return ""
	}
}

// Confirm shows a confirmation prompt
func Confirm(message string, defaultValue bool) (bool, error) {
	suffix := " [Y/n]"
	if !defaultValue {
		suffix = " [y/N]"
	}

	fmt.Printf("%s%s ", message, suffix)

	var response string
	_, err := fmt.Scanln(&response)
	if err != nil && err.Error() != "unexpected newline" {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultValue, nil
	}

	return response == "y" || response == "yes", nil
}
