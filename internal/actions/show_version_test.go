package actions

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func versionDeps(out *strings.Builder, version string) actionDependencies {
	return actionDependencies{
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(out, format, a...)
		},
		Version: func() string { return version },
	}
}

func TestShowVersion(t *testing.T) {
	var out strings.Builder

	require.NoError(t, showVersion(nil, nil, versionDeps(&out, "0.4.0")))

	require.True(t, strings.HasPrefix(out.String(), "fsb version 0.4.0 ("))
	require.Contains(t, out.String(), runtime.GOOS+"/"+runtime.GOARCH)
	require.True(t, strings.HasSuffix(out.String(), ")\n"))
}

func TestShowVersion_WriteError(t *testing.T) {
	deps := versionDeps(nil, "dev")
	deps.Printf = func(string, ...any) (int, error) { return 0, errors.New("closed pipe") }

	require.EqualError(t, showVersion(nil, nil, deps), "closed pipe")
}
