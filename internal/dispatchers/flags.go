package dispatchers

import (
	"strings"

	"github.com/fsbteam/chat/internal/usage"
)

type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

// FlagDescriptor documents one flag, possibly under several names.
type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Scope       FlagScope
}

// Usage renders the flag names and value hint, e.g. "--db=<path>".
func (d FlagDescriptor) Usage() string {
	names := strings.Join(d.Names, ", ")
	if d.ValueHint != "" {
		return names + "=" + d.ValueHint
	}
	return names
}

// ValidateFlags rejects any flag not named by one of the descriptors, and
// flags given with a value they don't take or without the one they need.
func ValidateFlags(flags *ParsedFlags, descriptors ...[]FlagDescriptor) error {
	// name -> whether it takes a value
	valid := make(map[string]bool)
	for _, set := range descriptors {
		for _, d := range set {
			for _, name := range d.Names {
				valid[name] = d.ValueHint != ""
			}
		}
	}

	for i, fl := range flags.flags {
		takesValue, ok := valid[fl.name]
		if !ok || takesValue != fl.hasValue {
			return usage.InvalidFlag(flags.raw[i])
		}
	}
	return nil
}

// SplitArgs separates flags from command words. Anything after a bare
// "--" is a word.
func SplitArgs(args []string) (words []string, flags []string) {
	for i, a := range args {
		if a == "--" {
			words = append(words, args[i+1:]...)
			break
		}
		if len(a) > 1 && a[0] == '-' {
			flags = append(flags, a)
			continue
		}
		words = append(words, a)
	}
	return words, flags
}
