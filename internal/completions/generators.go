package completions

import (
	"fmt"
	"strings"
)

func programName(commands []CommandInfo) string {
	if len(commands) == 0 || len(commands[0].Path) == 0 {
		return defaultBinary
	}
	return commands[0].Path[0]
}

func funcName(program string) string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(program)
}

// subPath is the path below the program name, joined by spaces.
func subPath(cmd CommandInfo) string {
	if len(cmd.Path) < 2 {
		return ""
	}
	return strings.Join(cmd.Path[1:], " ")
}

func flagWords(cmd CommandInfo) []string {
	var words []string
	for _, f := range cmd.Flags {
		for _, name := range f.Names {
			if f.HasValue {
				name += "="
			}
			words = append(words, name)
		}
	}
	return words
}

// GenerateBash completes subcommands and flags by the words typed so far.
func GenerateBash(commands []CommandInfo) string {
	program := programName(commands)
	fn := funcName(program)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n\n", program)
	fmt.Fprintf(&b, "_%s_completions() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    local cmdpath=\"\"\n")
	b.WriteString("    local i\n")
	b.WriteString("    for ((i = 1; i < COMP_CWORD; i++)); do\n")
	b.WriteString("        [[ ${COMP_WORDS[i]} == -* ]] && continue\n")
	b.WriteString("        cmdpath=\"${cmdpath:+$cmdpath }${COMP_WORDS[i]}\"\n")
	b.WriteString("    done\n\n")
	b.WriteString("    local opts\n")
	b.WriteString("    case \"$cmdpath\" in\n")

	var root []string
	for _, cmd := range commands {
		words := append(append([]string(nil), cmd.Subcommands...), flagWords(cmd)...)
		if len(cmd.Path) < 2 {
			root = words
			continue
		}
		fmt.Fprintf(&b, "        %q) opts=%q ;;\n", subPath(cmd), strings.Join(words, " "))
	}
	fmt.Fprintf(&b, "        *) opts=%q ;;\n", strings.Join(root, " "))
	b.WriteString("    esac\n\n")
	b.WriteString("    COMPREPLY=($(compgen -W \"$opts\" -- \"$cur\"))\n")
	b.WriteString("    [[ ${COMPREPLY[0]} == *= ]] && compopt -o nospace\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", fn, program)

	return b.String()
}

// GenerateZsh describes subcommands and flags with their summaries.
func GenerateZsh(commands []CommandInfo) string {
	program := programName(commands)
	fn := funcName(program)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", program)
	fmt.Fprintf(&b, "_%s_commands() {\n", fn)
	b.WriteString("    local -a opts\n")
	b.WriteString("    case \"$1\" in\n")

	var root []string
	for _, cmd := range commands {
		entries := zshEntries(cmd, commands)
		if len(cmd.Path) < 2 {
			root = entries
			continue
		}
		fmt.Fprintf(&b, "        %s) opts=(%s) ;;\n", zshQuote(subPath(cmd)), strings.Join(entries, " "))
	}
	fmt.Fprintf(&b, "        *) opts=(%s) ;;\n", strings.Join(root, " "))
	b.WriteString("    esac\n")
	b.WriteString("    _describe 'command' opts\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", fn)
	b.WriteString("    local -a typed\n")
	b.WriteString("    local w\n")
	b.WriteString("    for w in \"${(@)words[2,CURRENT-1]}\"; do\n")
	b.WriteString("        [[ $w == -* ]] || typed+=(\"$w\")\n")
	b.WriteString("    done\n")
	fmt.Fprintf(&b, "    _%s_commands \"${(j: :)typed}\"\n", fn)
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef _%s %s\n", fn, program)

	return b.String()
}

func zshEntries(cmd CommandInfo, commands []CommandInfo) []string {
	var entries []string
	for _, sub := range cmd.Subcommands {
		summary := ""
		if info := FindCommand(commands, append(cmd.Path[:len(cmd.Path):len(cmd.Path)], sub)); info != nil {
			summary = info.Summary
		}
		entries = append(entries, zshQuote(sub+":"+strings.ReplaceAll(summary, ":", `\:`)))
	}
	for _, f := range cmd.Flags {
		for _, name := range f.Names {
			entries = append(entries, zshQuote(name+":"+strings.ReplaceAll(f.Description, ":", `\:`)))
		}
	}
	return entries
}

func zshQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// GenerateFish registers one complete line per subcommand and flag.
func GenerateFish(commands []CommandInfo) string {
	program := programName(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n\n", program)
	fmt.Fprintf(&b, "complete -c %s -f\n", program)

	for _, cmd := range commands {
		cond := fishCondition(cmd)
		for _, sub := range cmd.Subcommands {
			summary := ""
			if info := FindCommand(commands, append(cmd.Path[:len(cmd.Path):len(cmd.Path)], sub)); info != nil {
				summary = info.Summary
			}
			fmt.Fprintf(&b, "complete -c %s -n %s -a %s -d %s\n",
				program, zshQuote(cond), zshQuote(sub), zshQuote(summary))
		}
		for _, f := range cmd.Flags {
			fmt.Fprintf(&b, "complete -c %s", program)
			if len(cmd.Path) > 1 {
				fmt.Fprintf(&b, " -n %s", zshQuote("__fish_seen_subcommand_from "+cmd.Name))
			}
			for _, name := range f.Names {
				switch {
				case strings.HasPrefix(name, "--"):
					fmt.Fprintf(&b, " -l %s", strings.TrimPrefix(name, "--"))
				case strings.HasPrefix(name, "-"):
					fmt.Fprintf(&b, " -s %s", strings.TrimPrefix(name, "-"))
				}
			}
			if f.HasValue {
				b.WriteString(" -r")
			}
			fmt.Fprintf(&b, " -d %s\n", zshQuote(f.Description))
		}
	}

	return b.String()
}

// fishCondition matches when cmd is the last subcommand typed.
func fishCondition(cmd CommandInfo) string {
	if len(cmd.Path) < 2 {
		return "__fish_use_subcommand"
	}
	cond := "__fish_seen_subcommand_from " + cmd.Name
	if len(cmd.Subcommands) > 0 {
		cond += "; and not __fish_seen_subcommand_from " + strings.Join(cmd.Subcommands, " ")
	}
	return cond
}
