package logs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/log"
	"github.com/fsbteam/chat/internal/ui/style"
)

// Tail prints lines as they are appended to the log until interrupted.
// --level applies as in View.
func Tail(args []string, flags *dispatchers.ParsedFlags) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tail(ctx, args, flags, DefaultDeps())
}

func tail(ctx context.Context, _ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	floor, _ := levelFlag(flags)
	path := deps.LogFilePath()

	f, err := deps.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	fmt.Fprintf(deps.Out, "%s\n\n", style.Muted("Following logs at "+path+" (Ctrl+C to stop)"))
	return follow(ctx, bufio.NewReader(f), floor, deps)
}

// follow prints complete lines from r that pass floor until ctx is done.
// A trailing line without a newline is held back until it is finished.
func follow(ctx context.Context, r *bufio.Reader, floor log.Level, deps Deps) error {
	var ticker *time.Ticker
	var pending strings.Builder
	for {
		chunk, err := r.ReadString('\n')
		pending.WriteString(chunk)
		if err == nil {
			line := strings.TrimSuffix(pending.String(), "\n")
			pending.Reset()
			if parseEntry(line).passes(floor) {
				fmt.Fprintln(deps.Out, colorize(line))
			}
			continue
		}
		if err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}

		if ticker == nil {
			ticker = time.NewTicker(deps.pollInterval())
			defer ticker.Stop()
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
