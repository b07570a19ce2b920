// Package report renders the user-facing run output: banner, per-file change
// confirmations, removed import names, and the final summary. Everything
// goes to a single writer (stdout in the CLI); diagnostics stay on the
// zerolog side.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/EhssanAtassi/tsfix/pkg/style"
	"github.com/EhssanAtassi/tsfix/pkg/types"
)

// Reporter receives pipeline events as they happen and the summary at the
// end of the run.
type Reporter interface {
	Banner()
	FilesFound(count int)
	FileFixed(path string, dryRun bool)
	ImportsRemoved(path string, names []string)
	FileError(path string, err error)
	Summary(s *types.Summary, verifyCommand string, dryRun bool)
}

// New returns a reporter for the given format.
func New(out io.Writer, format style.Format) Reporter {
	if format == style.FormatTerminal {
		return &terminalReporter{out: out}
	}
	return &plainReporter{out: out}
}

// plainReporter prints unstyled text, matching what the tool emits when
// piped or when NO_COLOR is set.
type plainReporter struct {
	out io.Writer
}

func (r *plainReporter) Banner() {
	fmt.Fprintf(r.out, "Starting TypeScript error fixes...\n\n")
}

func (r *plainReporter) FilesFound(count int) {
	fmt.Fprintf(r.out, "Found %d TypeScript files\n\n", count)
}

func (r *plainReporter) FileFixed(path string, dryRun bool) {
	if dryRun {
		fmt.Fprintf(r.out, "~ Would fix: %s\n", path)
		return
	}
	fmt.Fprintf(r.out, "✓ Fixed: %s\n", path)
}

func (r *plainReporter) ImportsRemoved(path string, names []string) {
	fmt.Fprintf(r.out, "  Removed unused imports in %s: %s\n", filepath.Base(path), strings.Join(names, ", "))
}

func (r *plainReporter) FileError(path string, err error) {
	fmt.Fprintf(r.out, "✗ Error processing %s: %v\n", path, err)
}

func (r *plainReporter) Summary(s *types.Summary, verifyCommand string, dryRun bool) {
	if dryRun {
		fmt.Fprintf(r.out, "\n~ Would fix %d of %d files\n", s.FilesChanged, s.FilesScanned)
		return
	}
	fmt.Fprintf(r.out, "\n✓ Fixed %d files\n", s.FilesChanged)
	if verifyCommand != "" {
		fmt.Fprintf(r.out, "\nRun %q to verify the fixes\n", verifyCommand)
	}
}

// terminalReporter prints styled output for interactive terminals.
type terminalReporter struct {
	out io.Writer
}

func (r *terminalReporter) Banner() {
	fmt.Fprintln(r.out, style.TitleStyle.Render("Starting TypeScript error fixes..."))
	fmt.Fprintln(r.out)
}

func (r *terminalReporter) FilesFound(count int) {
	fmt.Fprintf(r.out, "%s Found %d TypeScript files\n\n", pterm.Info.Prefix.Text, count)
}

func (r *terminalReporter) FileFixed(path string, dryRun bool) {
	if dryRun {
		fmt.Fprintf(r.out, "%s Would fix: %s\n", style.WarningStyle.Render("~"), style.PathStyle.Render(path))
		return
	}
	fmt.Fprintf(r.out, "%s Fixed: %s\n", style.SuccessIndicator, style.PathStyle.Render(path))
}

func (r *terminalReporter) ImportsRemoved(path string, names []string) {
	line := fmt.Sprintf("Removed unused imports in %s: %s", filepath.Base(path), strings.Join(names, ", "))
	fmt.Fprintln(r.out, style.Indent(style.MutedStyle.Render(line), 1))
}

func (r *terminalReporter) FileError(path string, err error) {
	fmt.Fprintf(r.out, "%s Error processing %s: %v\n", style.ErrorIndicator, style.PathStyle.Render(path), err)
}

func (r *terminalReporter) Summary(s *types.Summary, verifyCommand string, dryRun bool) {
	fmt.Fprintln(r.out)
	if dryRun {
		fmt.Fprintf(r.out, "%s Would fix %d of %d files\n",
			style.WarningStyle.Render("~"), s.FilesChanged, s.FilesScanned)
		return
	}
	fmt.Fprintf(r.out, "%s Fixed %d files\n", style.SuccessIndicator, s.FilesChanged)
	if s.FilesFailed > 0 {
		fmt.Fprintf(r.out, "%s %d files failed\n", style.ErrorIndicator, s.FilesFailed)
	}
	if verifyCommand != "" {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "%s Run %s to verify the fixes\n", style.InfoIndicator, style.Bold(fmt.Sprintf("%q", verifyCommand)))
	}
}
