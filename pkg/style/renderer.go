package style

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/luavend/pkg/errors"
	"github.com/arthur-debert/luavend/pkg/materialize"
)

// ColorEnabled reports whether styled output should be emitted on
// stdout.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// RenderError renders an error message with its code highlighted.
func RenderError(err error) string {
	if err == nil {
		return ""
	}
	if !ColorEnabled() {
		return fmt.Sprintf("Error: %v", err)
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s Error [%s]: %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(code)),
			err.Error())
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// RenderSummary renders the end-of-run summary line.
func RenderSummary(report *materialize.Report) string {
	line := fmt.Sprintf("%d files scanned, %d copied, %d skipped, %d substitutions",
		report.FilesScanned, report.FilesCopied, report.FilesSkipped, report.Substitutions())
	if !ColorEnabled() {
		return line
	}
	return fmt.Sprintf("%s %s", pterm.Success.Prefix.Text, SuccessStyle.Render(line))
}
