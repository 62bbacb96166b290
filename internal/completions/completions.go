package completions

import (
	"slices"

	"github.com/fsbteam/chat/internal/command"
	"github.com/fsbteam/chat/internal/dispatchers"
)

// CommandInfo represents a command extracted from a command processor
type CommandInfo struct {
	Name        string
	Path        []string // Full path from the program name (e.g., ["fsb", "config", "set"])
	Summary     string
	Subcommands []string
	Flags       []FlagInfo
}

// FlagInfo represents a flag for a command
type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
}

// FlagSource returns the flags a command accepts. It is called with a nil
// path for the program itself.
type FlagSource func(path []string) []dispatchers.FlagDescriptor

// ExtractCommands walks the visible commands of p. The first entry is the
// program itself, named program.
func ExtractCommands[T any](program string, p *command.Processor[T], flags FlagSource) []CommandInfo {
	root := CommandInfo{
		Name:  program,
		Path:  []string{program},
		Flags: flagInfos(flags, nil),
	}

	var children []CommandInfo
	for _, cmd := range p.Roots() {
		if cmd.IsInvisible() {
			continue
		}
		root.Subcommands = append(root.Subcommands, cmd.Base())
		extractNode(cmd, root.Path, flags, &children)
	}
	return append([]CommandInfo{root}, children...)
}

func extractNode[T any](cmd *command.Command[T], parent []string, flags FlagSource, commands *[]CommandInfo) {
	path := append(slices.Clip(parent), cmd.Base())

	info := CommandInfo{
		Name:    cmd.Base(),
		Path:    path,
		Summary: cmd.Description(),
		Flags:   flagInfos(flags, path[1:]),
	}
	for _, child := range cmd.Children() {
		info.Subcommands = append(info.Subcommands, child.Base())
	}
	*commands = append(*commands, info)

	for _, child := range cmd.Children() {
		extractNode(child, path, flags, commands)
	}
}

func flagInfos(flags FlagSource, path []string) []FlagInfo {
	if flags == nil {
		return nil
	}
	var infos []FlagInfo
	for _, f := range flags(path) {
		infos = append(infos, FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.ValueHint != "",
		})
	}
	return infos
}

// FindCommand finds a command by its path
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if slices.Equal(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}
