package marker

import "strings"

// Severity ranks a marker. The numeric values follow the LSP
// DiagnosticSeverity convention: lower is more severe.
type Severity int

const (
	SeverityError   Severity = 1
	SeverityWarning Severity = 2
	SeverityInfo    Severity = 3
	SeverityHint    Severity = 4
)

// SeverityFromString parses a severity name. Unknown names and the
// empty string give SeverityInfo.
func SeverityFromString(s string) Severity {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError
	case "warning", "warn":
		return SeverityWarning
	case "hint":
		return SeverityHint
	default:
		return SeverityInfo
	}
}

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "hint"
	}
}

// AtLeast reports whether s is at least as severe as other.
func (s Severity) AtLeast(other Severity) bool {
	return s <= other
}

// Underline is the decoration a severity draws under its range.
type Underline int

const (
	UnderlineNone Underline = iota
	UnderlineDotted
	UnderlineWavy
)

// Style is the presentation class set for a severity. Values are
// stable class names; the embedder maps them to actual colors.
type Style struct {
	Background string
	Foreground string
	Border     string
	Underline  Underline
}

// StyleFor maps a severity to its presentation style. It is a pure
// function: style is derived at render time, never stored per marker.
func StyleFor(s Severity) Style {
	switch s {
	case SeverityError:
		return Style{
			Background: "marker-error-bg",
			Foreground: "marker-error-fg",
			Border:     "marker-error-border",
			Underline:  UnderlineWavy,
		}
	case SeverityWarning:
		return Style{
			Background: "marker-warning-bg",
			Foreground: "marker-warning-fg",
			Border:     "marker-warning-border",
			Underline:  UnderlineWavy,
		}
	case SeverityInfo:
		return Style{
			Background: "marker-info-bg",
			Foreground: "marker-info-fg",
			Border:     "marker-info-border",
			Underline:  UnderlineDotted,
		}
	default:
		return Style{
			Background: "marker-hint-bg",
			Foreground: "marker-hint-fg",
			Border:     "marker-hint-border",
			Underline:  UnderlineDotted,
		}
	}
}
