package command

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Kind identifies why a command line was rejected.
type Kind int

const (
	// Validator
	EmptyCommand Kind = iota + 1
	NoSeparation
	UnclosedQuote
	InvalidSeparator
	UnexpectedSymbol

	// Processor
	InvalidToken
	NotACommand
	CommandNotFound
	PhantomCommand

	// Resolution
	CustomError
	MissingRequiredArgument
	FurtherSubcommandsExpected
	UnknownSubcommand
	InvalidSubcommand
)

// outOfBoundsWidth is how far past the end of the line a span reaches when
// it points at something the user did not type.
const outOfBoundsWidth = 10

var kindNames = map[Kind]string{
	EmptyCommand:               "EMPTY_COMMAND",
	NoSeparation:               "NO_SEPARATION",
	UnclosedQuote:              "UNCLOSED_QUOTE",
	InvalidSeparator:           "INVALID_SEPARATOR",
	UnexpectedSymbol:           "UNEXPECTED_SYMBOL",
	InvalidToken:               "INVALID_TOKEN",
	NotACommand:                "NOT_A_COMMAND",
	CommandNotFound:            "COMMAND_NOT_FOUND",
	PhantomCommand:             "PHANTOM_COMMAND",
	CustomError:                "CUSTOM_ERROR",
	MissingRequiredArgument:    "MISSING_REQUIRED_ARGUMENT",
	FurtherSubcommandsExpected: "FURTHER_SUBCOMMANDS_EXPECTED",
	UnknownSubcommand:          "UNKNOWN_SUBCOMMAND",
	InvalidSubcommand:          "INVALID_SUBCOMMAND",
}

var kindMessages = map[Kind]string{
	EmptyCommand:               "Command is empty.",
	NoSeparation:               "No separation found.",
	UnclosedQuote:              "Unclosed quoted argument.",
	InvalidSeparator:           "Invalid symbol.",
	UnexpectedSymbol:           "Unexpected symbol or symbols.",
	InvalidToken:               "Invalid token.",
	NotACommand:                "Not a command.",
	CommandNotFound:            "Command not found.",
	PhantomCommand:             "%s",
	CustomError:                "%s",
	MissingRequiredArgument:    "Missing required argument <%s>.",
	FurtherSubcommandsExpected: "Further subcommands expected.",
	UnknownSubcommand:          "Unknown subcommand.",
	InvalidSubcommand:          "Invalid subcommand.",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the typed result of a rejected command line. It is always
// terminal.
type Error struct {
	Kind Kind

	// Message is the one-line, human readable description.
	Message string

	// Detail carries the guard message for CustomError and PhantomCommand,
	// and the argument name for MissingRequiredArgument.
	Detail string

	// Line is the offending command line; empty for errors that do not
	// point into it (guards, phantom commands).
	Line  string
	Start int
	End   int

	spanned bool
}

func newError(kind Kind, detail string) *Error {
	return &Error{
		Kind:    kind,
		Message: formatMessage(kind, detail),
		Detail:  detail,
	}
}

func newSpanError(kind Kind, line string, start, end int, detail ...string) *Error {
	var d string
	if len(detail) > 0 {
		d = detail[0]
	}
	return &Error{
		Kind:    kind,
		Message: formatMessage(kind, d),
		Detail:  d,
		Line:    line,
		Start:   start,
		End:     max(start, end),
		spanned: true,
	}
}

func newTokenError(kind Kind, line string, tok Token) *Error {
	return newSpanError(kind, line, tok.Start, tok.End)
}

func formatMessage(kind Kind, detail string) string {
	tmpl, ok := kindMessages[kind]
	if !ok {
		return detail
	}
	if strings.Contains(tmpl, "%s") {
		return fmt.Sprintf(tmpl, detail)
	}
	return tmpl
}

// HasSpan reports whether the error points into its command line.
func (e *Error) HasSpan() bool {
	return e != nil && e.spanned
}

// Is lets errors.Is match on kind: errors.Is(err, &command.Error{Kind: command.CommandNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Error returns the message followed by the caret diagram, if any.
func (e *Error) Error() string {
	if !e.spanned {
		return e.Message
	}
	text, carets := e.Diagram()
	return e.Message + "\n" + text + "\n" + carets
}

// Diagram returns the two lines that highlight the span: the command line
// (padded with spaces when the span runs past its end) and a line of
// carets under the span. Columns are measured in terminal cells.
func (e *Error) Diagram() (text, carets string) {
	if !e.spanned {
		return e.Line, ""
	}

	line := e.Line
	start := min(e.Start, len(line))
	end := min(e.End, len(line))

	text = line
	if e.End > len(line) {
		text = line + strings.Repeat(" ", e.End-len(line))
	}

	lead := runewidth.StringWidth(line[:start]) + max(0, e.Start-len(line))
	width := runewidth.StringWidth(line[start:end]) + max(0, e.End-max(e.Start, len(line)))

	return text, strings.Repeat(" ", lead) + strings.Repeat("^", width)
}
