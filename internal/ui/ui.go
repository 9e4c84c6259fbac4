package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

// Out is where status lines are printed. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

// DisableColor clears the escape sequences, for non-terminal output.
func DisableColor() {
	ColorReset, ColorRed, ColorGreen, ColorYellow, ColorCyan, ColorBold = "", "", "", "", "", ""
}

func PrintHeader(msg string) {
	fmt.Fprintf(Out, "\n%s%s%s\n", ColorBold, msg, ColorReset)
}

func PrintSuccess(label, detail string) {
	fmt.Fprintf(Out, "  %s✔%s %-15s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

func PrintError(label, detail string) {
	fmt.Fprintf(Out, "  %s✘%s %-15s %s%s\n", ColorRed, ColorReset, label, ColorRed, detail+ColorReset)
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(Out, "  %s!%s %-15s %s%s\n", ColorYellow, ColorReset, label, ColorYellow, detail+ColorReset)
}

// PrintRow prints an aligned two-column line in cyan, used for symbol listings.
func PrintRow(left, right string) {
	fmt.Fprintf(Out, "  %s%-40s%s %s\n", ColorCyan, left, ColorReset, right)
}
