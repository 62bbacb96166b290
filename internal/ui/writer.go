// Package ui holds terminal output helpers shared by the fsb commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"

	"github.com/fsbteam/chat/internal/domain"
)

const defaultPager = "less -FRSX"

// Writer is the domain.OutputWriter used by the CLI.
type Writer struct {
	out     io.Writer
	noPager bool
	getenv  func(string) string
}

type WriterOption func(*Writer)

// WithPagerDisabled prints everything directly.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) { w.noPager = true }
}

// WithEnvGetter replaces os.Getenv when looking up the pager.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) { w.getenv = fn }
}

// NewWriter writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{out: out, getenv: os.Getenv}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// pagerArgs returns the pager command line: FSB_PAGER, then PAGER, then
// less. It is empty when paging is off or the pager is cat.
func (w *Writer) pagerArgs() []string {
	if w.noPager {
		return nil
	}
	pager := defaultPager
	if w.getenv != nil {
		for _, name := range []string{"FSB_PAGER", "PAGER"} {
			if v := w.getenv(name); v != "" {
				pager = v
				break
			}
		}
	}
	args := strings.Fields(pager)
	if len(args) == 0 || args[0] == "cat" {
		return nil
	}
	return args
}

// Pager pipes content through the pager when stdout is a terminal and
// content has at least minLines lines. If the pager fails to run the
// content is printed as is.
func (w *Writer) Pager(content string, minLines int) {
	if strings.Count(content, "\n") >= minLines {
		if f, ok := w.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			if args := w.pagerArgs(); args != nil && page(f, args, content) == nil {
				return
			}
		}
	}
	_, _ = io.WriteString(w.out, content)
}

func page(tty *os.File, args []string, content string) error {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = tty
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

var _ domain.OutputWriter = (*Writer)(nil)
