package dispatchers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fsbteam/chat/internal/usage"
)

// flag is one parsed "--name" or "--name=value" argument.
type flag struct {
	name     string
	value    string
	hasValue bool
}

// ParsedFlags gives typed access to the flags of one fsb invocation.
// When a flag repeats, the last occurrence wins.
type ParsedFlags struct {
	raw   []string
	flags []flag
}

// NewParsedFlags parses flag strings as returned by SplitArgs.
func NewParsedFlags(raw []string) *ParsedFlags {
	pf := &ParsedFlags{raw: raw}
	for _, r := range raw {
		name, value, ok := strings.Cut(r, "=")
		pf.flags = append(pf.flags, flag{name: name, value: value, hasValue: ok})
	}
	return pf
}

// Raw returns the flag strings as given.
func (f *ParsedFlags) Raw() []string {
	return f.raw
}

// Names returns the flag names without values, in order.
func (f *ParsedFlags) Names() []string {
	names := make([]string, len(f.flags))
	for i, fl := range f.flags {
		names[i] = fl.name
	}
	return names
}

// Has reports whether any of names was given as a switch. "--json=x" is
// not the switch "--json".
func (f *ParsedFlags) Has(names ...string) bool {
	for _, fl := range f.flags {
		if fl.hasValue {
			continue
		}
		for _, name := range names {
			if fl.name == name {
				return true
			}
		}
	}
	return false
}

// Lookup returns the value of the last "name=value" flag.
func (f *ParsedFlags) Lookup(name string) (string, bool) {
	for i := len(f.flags) - 1; i >= 0; i-- {
		if fl := f.flags[i]; fl.name == name && fl.hasValue {
			return fl.value, true
		}
	}
	return "", false
}

// String returns the value of name, or fallback when it was not given.
// An explicit empty value ("--db=") counts as given.
func (f *ParsedFlags) String(name, fallback string) string {
	if v, ok := f.Lookup(name); ok {
		return v
	}
	return fallback
}

// Int returns the integer value of name, or fallback when it was not
// given. A value that is not an integer is an invalid flag.
func (f *ParsedFlags) Int(name string, fallback int) (int, error) {
	v, ok := f.Lookup(name)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, usage.InvalidFlag(fmt.Sprintf("%s=%s", name, v))
	}
	return n, nil
}
