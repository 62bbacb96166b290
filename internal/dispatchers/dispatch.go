package dispatchers

import (
	"strings"

	"github.com/fsbteam/chat/internal/command"
	"github.com/fsbteam/chat/internal/usage"
)

const defaultSuggestionsCount = 3

// CommandFunc is the signature of every fsb action.
type CommandFunc func(args []string, flags *ParsedFlags) error

// Invocation is the payload the fsb processor runs commands with. Actions
// are called through Run so their error reaches Dispatch.
type Invocation struct {
	Flags *ParsedFlags

	err error
}

// Run calls fn with the invocation flags and keeps its error.
func (inv *Invocation) Run(fn CommandFunc, args ...string) {
	inv.err = fn(args, inv.Flags)
}

// Exec adapts fn to a command action. Declared arguments are passed to
// fn in order, array arguments flattened.
func Exec(fn CommandFunc, names ...string) command.Action[*Invocation] {
	return func(ctx *command.Context[*Invocation]) {
		var args []string
		for _, name := range names {
			args = append(args, ctx.Strings(name)...)
		}
		ctx.Payload.Run(fn, args...)
	}
}

// Result is what Dispatch leaves for main to print.
type Result struct {
	Output   string
	ExitCode int
}

// Dispatch runs the command named by words. Help output is rendered with
// the program name in place of the slash.
func Dispatch(p *command.Processor[*Invocation], words []string, flags *ParsedFlags) (Result, error) {
	if len(words) == 0 && hasVersionFlag(flags) {
		words = []string{"version"}
	}
	// No command specified: show help but exit with code 1 (like git)
	if len(words) == 0 {
		out, _ := run(p, []string{command.HelpCommand}, flags)
		return Result{Output: out, ExitCode: 1}, nil
	}
	if hasHelpFlag(flags) && words[0] != command.HelpCommand {
		words = append([]string{command.HelpCommand}, words...)
	}

	out, inv := run(p, words, flags)
	if err := p.LastError(); err != nil {
		switch err.Kind {
		case command.FurtherSubcommandsExpected:
			out, _ = run(p, append([]string{command.HelpCommand}, words...), flags)
			return Result{Output: out}, nil
		case command.CommandNotFound:
			suggestions := p.Suggest(words[0], defaultSuggestionsCount)
			return Result{}, usage.UnknownCommand(words[0], suggestions...)
		}
		return Result{}, usage.FromCommand(err)
	}
	return Result{Output: out}, inv.err
}

func run(p *command.Processor[*Invocation], words []string, flags *ParsedFlags) (string, *Invocation) {
	inv := &Invocation{Flags: flags}
	p.Execute(command.Line(words...), inv)
	return programHelp(p.Output()), inv
}

// programHelp swaps the leading slash of help lines for "fsb ".
func programHelp(out string) string {
	if out == "" {
		return ""
	}
	lines := strings.SplitAfter(out, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, command.Marker) {
			lines[i] = "fsb " + strings.TrimPrefix(line, command.Marker)
		}
	}
	return strings.Join(lines, "")
}

func hasHelpFlag(flags *ParsedFlags) bool {
	return flags.Has("--help", "-h")
}

func hasVersionFlag(flags *ParsedFlags) bool {
	return flags.Has("--version", "-v")
}
