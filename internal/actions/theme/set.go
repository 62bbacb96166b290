package theme

import (
	"fmt"
	"slices"

	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/ui/style"
	"github.com/fsbteam/chat/internal/usage"
)

// Set stores a theme. A base name such as "ocean" is stored as is and
// picks its dark or light variant each time fsb starts.
func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return setTheme(args, flags, DefaultDeps())
}

func setTheme(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) == 0 {
		return usage.MissingArgument("name")
	}
	name := args[0]

	if _, ok := deps.Themes[name]; !ok && !slices.Contains(style.BaseThemeNames, name) {
		fmt.Fprintf(deps.Out, "%s unknown theme: %s\n\navailable themes:\n", style.Error("error:"), name)
		for _, known := range deps.Names {
			fmt.Fprintf(deps.Out, "  %s\n", known)
		}
		return fmt.Errorf("unknown theme: %s", name)
	}

	if err := saveTheme(deps, name); err != nil {
		return err
	}
	fmt.Fprintf(deps.Out, "theme set to %s\n", style.Success(name))
	return nil
}
