package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/fsbteam/chat/internal/app"
	"github.com/fsbteam/chat/internal/cli"
	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/ui/style"
	"github.com/fsbteam/chat/internal/usage"
)

// pagerMinLines is how tall output must be before it goes through the pager.
const pagerMinLines = 40

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	words, rawFlags := dispatchers.SplitArgs(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	if err := dispatchers.ValidateFlags(flags, cli.FlagsFor(words)...); err != nil {
		return report(stderr, style.NewPlainStyler(), err)
	}

	opts := app.DefaultOptions()
	// Enable styling if stdout is a terminal and --no-color is not set
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	opts.PagerDisabled = flags.Has("--no-pager")

	application := app.New(opts)
	defer func() { _ = app.Close(application) }()

	application.Logger.Debug("fsb %s", strings.Join(args, " "))

	res, err := dispatchers.Dispatch(cli.BuildProcessor(), words, flags)
	if err != nil {
		application.Logger.Debug("command failed: %v", err)
		return report(stderr, application.Styler, err)
	}

	if res.Output != "" {
		out := res.Output
		if showsHelp(words, flags) {
			out += cli.FlagHelp(words)
		}
		application.Output.Pager(out, pagerMinLines)
	}

	// Non-zero when help was shown in place of a command (fsb with no args)
	return res.ExitCode
}

func showsHelp(words []string, flags *dispatchers.ParsedFlags) bool {
	if len(words) == 0 {
		return !flags.Has("--version") && !flags.Has("-v")
	}
	return words[0] == "help" || flags.Has("--help") || flags.Has("-h")
}

func report(stderr io.Writer, styler domain.Styler, err error) int {
	fmt.Fprintln(stderr, styler.Error(err.Error()))

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.ExitCode()
	}
	return 1
}
