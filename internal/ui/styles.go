package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - pigments from the paint box
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Ochre     = lipgloss.Color("#E0A526") // Yellow ochre
	Vermilion = lipgloss.Color("#E34234") // Vermilion red
	Viridian  = lipgloss.Color("#40826D") // Viridian green
	Sap       = lipgloss.Color("#7CB342") // Sap green
	Cerulean  = lipgloss.Color("#2A9DF4") // Cerulean
	Umber     = lipgloss.Color("#8A6642") // Burnt umber

	// Neutrals
	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
	Black    = lipgloss.Color("#1C2833")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// Title for headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Ochre)

	// Success messages
	Success = lipgloss.NewStyle().
		Foreground(Sap)

	// Error messages
	Error = lipgloss.NewStyle().
		Foreground(Vermilion).
		Bold(true)

	// Warning messages
	Warning = lipgloss.NewStyle().
		Foreground(Umber)

	// Info messages
	Info = lipgloss.NewStyle().
		Foreground(Cerulean)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Dim - even more subtle
	Dim = lipgloss.NewStyle().
		Foreground(DarkGray)

	// Highlight for important items
	Highlight = lipgloss.NewStyle().
		Foreground(Ochre).
		Bold(true)

	// Link style
	Link = lipgloss.NewStyle().
		Foreground(Cerulean).
		Underline(true)

	// Selected list row
	Selected = lipgloss.NewStyle().
		Foreground(Black).
		Background(Ochre).
		Bold(true)
)

// Panel is the rounded box the interactive panel draws in.
var Panel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(DarkGray).
	Padding(0, 1)

// ═══════════════════════════════════════════════════════════════════════════════
// BADGES - folder state on disk
// ═══════════════════════════════════════════════════════════════════════════════

var baseBadge = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true)

// PresentBadge marks a folder that exists on disk
func PresentBadge() string {
	if !IsTTY {
		return "[OK]"
	}
	return baseBadge.Background(Viridian).Foreground(White).Render("✓")
}

// MissingBadge marks a listed folder that is not on disk yet
func MissingBadge() string {
	if !IsTTY {
		return "[NEW]"
	}
	return baseBadge.Background(Cerulean).Foreground(White).Render("NEW")
}

// ExtraBadge marks an entry on disk that is not in the list
func ExtraBadge() string {
	if !IsTTY {
		return "[DEL]"
	}
	return baseBadge.Background(Vermilion).Foreground(White).Render("DEL")
}

// ═══════════════════════════════════════════════════════════════════════════════
// DECORATIVE ELEMENTS
// ═══════════════════════════════════════════════════════════════════════════════

// Logo returns the one-line atelier banner
func Logo() string {
	if !IsTTY {
		return "ATELIER"
	}
	easel := lipgloss.NewStyle().Foreground(Umber).Render("🎨")
	name := lipgloss.NewStyle().Foreground(Ochre).Bold(true).Render("ATELIER")
	return fmt.Sprintf(" %s %s ", easel, name)
}

// Divider returns a horizontal divider
func Divider(width int) string {
	return Render(lipgloss.NewStyle().Foreground(DarkGray), strings.Repeat("─", width))
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := lipgloss.NewStyle().
		Foreground(Ochre).
		Bold(true).
		Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft
	if padLeft < 0 {
		padLeft = 0
	}
	if padRight < 0 {
		padRight = 0
	}

	left := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(DarkGray).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// PageFooter closes a page of output
func PageFooter() string {
	if !IsTTY {
		return "\n"
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}
	padSide := (width - 5) / 2
	left := strings.Repeat("─", padSide)
	right := strings.Repeat("─", width-padSide-5)
	line := lipgloss.NewStyle().Foreground(DarkGray).Render(left + " ✦ " + right)
	return "\n" + line + "\n"
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINE COMPONENTS
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Sap)
}

// ErrorLine creates an error status line
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return StatusLine("✗", message, Vermilion)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return StatusLine("!", message, Umber)
}

// InfoLine creates an info status line
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return StatusLine("→", message, Cerulean)
}

// ═══════════════════════════════════════════════════════════════════════════════
// EMPTY STATES
// ═══════════════════════════════════════════════════════════════════════════════

// EmptyFolderList returns a friendly empty state
func EmptyFolderList() string {
	if !IsTTY {
		return "\n  (no folders)\n\n  Use `atelier folders defaults` or `atelier folders add <name>`.\n"
	}

	message := lipgloss.NewStyle().Foreground(Gray).Render("The canvas is blank.")
	hint := lipgloss.NewStyle().Foreground(Cerulean).Render("atelier folders defaults")

	return fmt.Sprintf("\n  %s\n  Use %s to start from the default set.\n", message, hint)
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// Truncate truncates text to max length with ellipsis
func Truncate(text string, max int) string {
	if max < 4 || len(text) <= max {
		return text
	}
	return text[:max-3] + "..."
}

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// RenderMuted renders text in muted style (TTY-aware)
func RenderMuted(text string) string {
	return Render(Muted, text)
}

// RenderHighlight renders text in highlight style (TTY-aware)
func RenderHighlight(text string) string {
	return Render(Highlight, text)
}

// RenderError renders text in error style (TTY-aware)
func RenderError(text string) string {
	return Render(Error, text)
}

// RenderLink renders text in link style (TTY-aware)
func RenderLink(text string) string {
	return Render(Link, text)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
