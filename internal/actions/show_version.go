package actions

import (
	"runtime"

	"github.com/fsbteam/chat/internal/dispatchers"
)

// ShowVersion prints the fsb release and the toolchain it was built with.
func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	_, err := deps.Printf("fsb version %s (%s)\n", deps.Version(), platform())
	return err
}

func platform() string {
	return runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH
}
