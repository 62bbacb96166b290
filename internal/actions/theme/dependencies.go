package theme

import (
	"io"
	"os"

	"github.com/fsbteam/chat/internal/config"
	"github.com/fsbteam/chat/internal/ui/style"
)

const themeKey = "theme"

type Deps struct {
	Out  io.Writer
	Edit func(func([]string) ([]string, error)) error
	Get  func(string) (string, bool)
	// Names lists the selectable variants in display order.
	Names  []string
	Themes map[string]style.ColorConfig
}

func DefaultDeps() Deps {
	return Deps{
		Out:    os.Stdout,
		Edit:   config.Edit,
		Get:    config.Get,
		Names:  style.ThemeNames,
		Themes: style.Themes,
	}
}

// currentTheme is the configured theme as an explicit -dark/-light variant.
func currentTheme(deps Deps) string {
	name, _ := deps.Get(themeKey)
	if name == "" {
		name = "default"
	}
	return style.ResolveThemeName(name)
}

func saveTheme(deps Deps, name string) error {
	return deps.Edit(func(lines []string) ([]string, error) {
		updated, _ := config.Set(lines, themeKey, name)
		return updated, nil
	})
}
