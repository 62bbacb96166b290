package usage

import (
	"fmt"
	"strings"

	"github.com/fsbteam/chat/internal/command"
)

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidCommand
	ErrInvalidConfigKey
	ErrInvalidConfigValue
	ErrNotConnected
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Invalid config key
//	  - Server unreachable
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Malformed command line
//	  - Config value of the wrong form
var exitCodes = map[ErrorKind]int{
	ErrUnknown:            1,
	ErrInvalidFlag:        2,
	ErrMissingArgument:    2,
	ErrUnknownCommand:     1,
	ErrInvalidCommand:     2,
	ErrInvalidConfigKey:   1,
	ErrInvalidConfigValue: 2,
	ErrNotConnected:       1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ExitCode returns the process exit code for this error.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// InvalidFlag is returned when a flag is not recognised.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("fsb: invalid flag '%s'", flag),
	}
}

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("fsb: missing required argument '%s'", arg),
	}
}

// UnknownCommand is returned for a command name no root matches. Similar
// names, if any, are listed after the message.
func UnknownCommand(name string, suggestions ...string) *Error {
	msg := fmt.Sprintf("fsb: '%s' is not a fsb command. See 'fsb help'.", name)
	if len(suggestions) > 0 {
		var b strings.Builder
		b.WriteString(msg)
		b.WriteString("\n\nThe most similar commands are:")
		for _, s := range suggestions {
			b.WriteString("\n\t")
			b.WriteString(s)
		}
		msg = b.String()
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// InvalidConfigKey is returned for keys outside the known configuration.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("fsb: unknown config key '%s'. See 'fsb config list'.", key),
	}
}

// InvalidConfigValue is returned when a value does not fit its key.
func InvalidConfigValue(key, value, hint string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigValue,
		Message: fmt.Sprintf("fsb: invalid value '%s' for %s: expected %s", value, key, hint),
	}
}

// NotConnected is returned when the chat server cannot be reached.
func NotConnected(addr string, err error) *Error {
	return &Error{
		Kind:    ErrNotConnected,
		Message: fmt.Sprintf("fsb: cannot connect to %s: %v", addr, err),
	}
}

// FromCommand converts an interpreter error on the command line into a
// usage error. The message keeps the caret diagram.
func FromCommand(err *command.Error) *Error {
	if err == nil {
		return nil
	}
	switch err.Kind {
	case command.CommandNotFound:
		name := err.Detail
		if name == "" && err.HasSpan() && err.End <= len(err.Line) {
			name = err.Line[err.Start:err.End]
		}
		return UnknownCommand(name)
	case command.MissingRequiredArgument:
		return &Error{Kind: ErrMissingArgument, Message: "fsb: " + err.Error()}
	default:
		return &Error{Kind: ErrInvalidCommand, Message: "fsb: " + err.Error()}
	}
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
