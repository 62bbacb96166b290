package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fsbteam/chat/internal/usage"
)

func TestParsedFlags_Has(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		check []string
		want  bool
	}{
		{"present", []string{"--json", "--all"}, []string{"--all"}, true},
		{"absent", []string{"--json"}, []string{"--all"}, false},
		{"empty", nil, []string{"--json"}, false},
		{"alias", []string{"-h"}, []string{"--help", "-h"}, true},
		{"value is not a switch", []string{"--json=yes"}, []string{"--json"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewParsedFlags(tt.flags).Has(tt.check...))
		})
	}
}

func TestParsedFlags_String(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		fallback string
		want     string
	}{
		{"value", []string{"--db=/tmp/chat.db"}, "", "/tmp/chat.db"},
		{"fallback", []string{"--json"}, "chat.db", "chat.db"},
		{"switch without value", []string{"--db"}, "chat.db", "chat.db"},
		{"last wins", []string{"--db=a.db", "--db=b.db"}, "", "b.db"},
		{"explicit empty", []string{"--db="}, "chat.db", ""},
		{"value with equals", []string{"--db=file:chat.db?mode=ro"}, "", "file:chat.db?mode=ro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewParsedFlags(tt.flags).String("--db", tt.fallback))
		})
	}
}

func TestParsedFlags_Int(t *testing.T) {
	n, err := NewParsedFlags([]string{"--limit=20"}).Int("--limit", 50)
	require.NoError(t, err)
	require.Equal(t, 20, n)

	n, err = NewParsedFlags(nil).Int("--limit", 50)
	require.NoError(t, err)
	require.Equal(t, 50, n)

	_, err = NewParsedFlags([]string{"--limit=many"}).Int("--limit", 50)
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrInvalidFlag, ue.Kind)
	require.Contains(t, ue.Error(), "--limit=many")
}

func TestParsedFlags_NamesAndRaw(t *testing.T) {
	raw := []string{"--no-color", "--addr=:7777"}
	pf := NewParsedFlags(raw)

	require.Equal(t, raw, pf.Raw())
	require.Equal(t, []string{"--no-color", "--addr"}, pf.Names())
}
