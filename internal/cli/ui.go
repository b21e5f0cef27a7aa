package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// uiOut receives status lines. Command data goes to cmd.OutOrStdout().
var uiOut io.Writer = os.Stdout

// Palette shared by status lines, zone tables and the preview browser.
var (
	colorAccent = lipgloss.Color("36")  // teal
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorFail   = lipgloss.Color("167") // soft red
	colorLink   = lipgloss.Color("75")
	colorBright = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
)

// Exported styles are used by the parse tree and the preview browser.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(colorFaint)
	StyleValue     = lipgloss.NewStyle().Foreground(colorBright)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorAccent)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorWarn)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCommand     = lipgloss.NewStyle().Foreground(colorLink)
)

// statusMark is the leading glyph of a status line.
type statusMark struct {
	glyph string
	style lipgloss.Style
}

var (
	markOK   = statusMark{"✓", lipgloss.NewStyle().Foreground(colorOK)}
	markFail = statusMark{"✗", lipgloss.NewStyle().Foreground(colorFail)}
	markWarn = statusMark{"!", lipgloss.NewStyle().Foreground(colorWarn)}
	markInfo = statusMark{"›", lipgloss.NewStyle().Foreground(colorMuted)}
)

func printStatus(m statusMark, msg string) {
	fmt.Fprintln(uiOut, m.style.Render(m.glyph)+" "+msg)
}

func printSuccess(format string, args ...any) {
	printStatus(markOK, fmt.Sprintf(format, args...))
}

// printError reports a failure that does not abort the command, such as
// one bad layout during check.
func printError(format string, args ...any) {
	printStatus(markFail, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(markWarn, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(markInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line under the previous status.
func printDetail(format string, args ...any) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile lists a written artifact.
func printFile(path string) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

// printStats summarizes a generate run: "3 layouts · 11 zones · cached".
func printStats(layouts, zones int, cached bool) {
	var parts []string
	if layouts > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d layouts", layouts)))
	}
	if zones > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d zones", zones)))
	}
	if cached {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorOK).Render("cached"))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorMuted).Render("fresh"))
	}
	fmt.Fprintln(uiOut, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(uiOut, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
