package tagvalue

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// ErrorContext indicates the environment where parser errors will be displayed
type ErrorContext string

const (
	// ErrorContextTerminal indicates errors will be displayed in terminal with ANSI colors
	ErrorContextTerminal ErrorContext = "terminal"
	// ErrorContextPlain indicates errors will be displayed without ANSI codes (web UI, logs, etc)
	ErrorContextPlain ErrorContext = "plain"
)

// ErrorSeverity indicates the severity level of a parser error
type ErrorSeverity string

const (
	SeverityError   ErrorSeverity = "error"   // Errors that abort the parse
	SeverityWarning ErrorSeverity = "warning" // Recoverable oddities
)

// ErrorKind categorizes parser errors for programmatic handling
type ErrorKind string

const (
	ErrorKindSyntax     ErrorKind = "syntax"      // Malformed tag-value line
	ErrorKindUnknownTag ErrorKind = "unknown-tag" // Tag name not in the recognized table
	ErrorKindSubGrammar ErrorKind = "sub-grammar" // Malformed value for a recognized tag
	ErrorKindTimestamp  ErrorKind = "timestamp"   // Timestamp not in the expected wire format
	ErrorKindExpression ErrorKind = "expression"  // Malformed license expression
)

// ParseError represents a structured parser error with metadata. The
// offending tag and value are always carried so messages stay
// actionable without byte offsets.
type ParseError struct {
	Err         error         // Underlying error
	Kind        ErrorKind     // Error category
	Severity    ErrorSeverity // Error severity
	Message     string        // Human-readable message
	Line        int           // 1-based input line where the error occurred, 0 if unknown
	Tag         string        // Tag of the offending atom (optional)
	Value       string        // Offending value (optional)
	Suggestions []string      // Possible fixes
	Timestamp   time.Time     // When the error occurred
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.FormatError(ErrorContextPlain)
}

// Unwrap exposes the underlying error for errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatError generates a context-appropriate error message
func (e *ParseError) FormatError(ctx ErrorContext) string {
	if ctx == ErrorContextTerminal {
		return e.formatTerminalError()
	}
	return e.formatPlainError()
}

// formatPlainError creates a concise error for logs and non-terminal UIs
func (e *ParseError) formatPlainError() string {
	msg := e.Message
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Tag != "" {
		msg += fmt.Sprintf(": %s: %s", e.Tag, e.Value)
	} else if e.Value != "" {
		msg += fmt.Sprintf(": %s", e.Value)
	}
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(". Suggestions: %s", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// formatTerminalError creates a rich colored error for terminals
func (e *ParseError) formatTerminalError() string {
	var baseMsg string
	switch e.Severity {
	case SeverityWarning:
		baseMsg = pterm.Yellow(e.Message)
	default:
		baseMsg = pterm.Red(e.Message)
	}

	var parts []string
	parts = append(parts, baseMsg)
	if e.Line > 0 {
		parts = append(parts, pterm.Gray(fmt.Sprintf("line %d", e.Line)))
	}
	if e.Tag != "" {
		parts = append(parts, pterm.Cyan(e.Tag)+": "+e.Value)
	} else if e.Value != "" {
		parts = append(parts, e.Value)
	}
	msg := strings.Join(parts, " ")

	if len(e.Suggestions) > 0 {
		msg += "\n" + pterm.Gray("suggestions: "+strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// newParseError builds a ParseError around an underlying error.
func newParseError(err error, kind ErrorKind, message string, line int, tag, value string) *ParseError {
	return &ParseError{
		Err:       err,
		Kind:      kind,
		Severity:  SeverityError,
		Message:   message,
		Line:      line,
		Tag:       tag,
		Value:     value,
		Timestamp: time.Now(),
	}
}
