package completions

import (
	"fmt"
	"io"
	"os"

	"github.com/fsbteam/chat/internal/completions"
	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/ui/style"
)

type Deps struct {
	Out         io.Writer
	Commands    func() []completions.CommandInfo
	DetectShell func() (completions.Shell, error)
	Install     func(completions.Shell, []completions.CommandInfo) (string, error)
}

func DefaultDeps() Deps {
	return Deps{
		Out:         os.Stdout,
		Commands:    completions.Commands,
		DetectShell: completions.DetectShell,
		Install:     completions.Install,
	}
}

// Completions prints the completion script (--script), installs it
// (--install), or explains how to load it.
func Completions(args []string, flags *dispatchers.ParsedFlags) error {
	return run(args, flags, DefaultDeps())
}

func run(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	shell, err := resolveShell(args, deps)
	if err != nil {
		return err
	}

	commands := deps.Commands()

	switch {
	case flags.Has("--script"):
		return completions.PrintCompletions(deps.Out, shell, commands)

	case flags.Has("--install"):
		path, err := deps.Install(shell, commands)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Out, "%s completions written to %s\n", shell, style.Success(path))
		fmt.Fprintln(deps.Out, "Open a new shell to use them.")
		return nil
	}

	fmt.Fprintf(deps.Out, "Add this line to %s:\n\n", shell.RcFile())
	fmt.Fprintf(deps.Out, "  %s\n\n", shell.SourceLine())
	if shell.AutoInstallPath() != "" {
		fmt.Fprintf(deps.Out, "%s\n", style.Muted("Or run 'fsb completions "+string(shell)+" --install'."))
	}
	return nil
}

func resolveShell(args []string, deps Deps) (completions.Shell, error) {
	if len(args) > 0 && args[0] != "" {
		return completions.ParseShell(args[0])
	}
	return deps.DetectShell()
}
