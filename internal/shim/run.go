package shim

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
	"github.com/creack/pty"
	"github.com/muesli/termenv"
	"github.com/rlr-github/rory-themes/internal/logging"
	"github.com/rlr-github/rory-themes/internal/runner"
	"golang.org/x/term"
)

// ErrNoCommand is returned when Run is given an empty argv.
var ErrNoCommand = errors.New("no command given")

// Options configures RunWith.
type Options struct {
	Argv   []string
	Stdin  io.Reader
	Stdout io.Writer
	// Colorizer defaults to the default rules for the environment's
	// colour support.
	Colorizer *Colorizer
	Logger    *log.Logger
}

// Run executes argv under a pseudo-terminal, forwarding stdin to it and its
// colorized output to stdout. It returns the command's exit code.
func Run(ctx context.Context, argv []string, stdin io.Reader, stdout io.Writer) (int, error) {
	return RunWith(ctx, Options{Argv: argv, Stdin: stdin, Stdout: stdout})
}

// DefaultProfile is ANSI unless NO_COLOR is set.
func DefaultProfile() termenv.Profile {
	if termenv.EnvNoColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// RunWith is Run with explicit options.
func RunWith(ctx context.Context, opts Options) (int, error) {
	if len(opts.Argv) == 0 {
		return 1, ErrNoCommand
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Colorizer == nil {
		opts.Colorizer = NewColorizer(DefaultProfile(), nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	cmd := exec.CommandContext(ctx, opts.Argv[0], opts.Argv[1:]...)

	in, isTTY := terminalInput(opts.Stdin)
	var (
		ptmx *os.File
		err  error
	)
	if isTTY {
		if size, sizeErr := pty.GetsizeFull(in); sizeErr == nil {
			ptmx, err = pty.StartWithSize(cmd, size)
		} else {
			ptmx, err = pty.Start(cmd)
		}
	} else {
		ptmx, err = pty.Start(cmd)
	}
	if err != nil {
		return 1, &runner.SpawnError{Path: opts.Argv[0], Err: err}
	}
	defer func() { _ = ptmx.Close() }()
	logger.Debug("shim started", "cmd", opts.Argv[0], "pid", cmd.Process.Pid, "tty", isTTY)

	if isTTY {
		stopResize := watchResize(in, ptmx)
		defer stopResize()

		fd := int(in.Fd())
		if state, rawErr := term.MakeRaw(fd); rawErr == nil {
			defer func() { _ = term.Restore(fd, state) }()
		} else {
			logger.Warn("could not enter raw mode", "err", rawErr)
		}
	}

	if opts.Stdin != nil {
		go func() { _, _ = io.Copy(ptmx, opts.Stdin) }()
	}

	// Reading the master fails with EIO once the child side closes.
	_, _ = io.Copy(opts.Colorizer.Writer(opts.Stdout), ptmx)

	code := exitCode(cmd.Wait())
	logger.Debug("shim finished", "cmd", opts.Argv[0], "code", code)
	return code, nil
}

func terminalInput(r io.Reader) (*os.File, bool) {
	f, ok := r.(*os.File)
	if !ok || f == nil {
		return nil, false
	}
	return f, term.IsTerminal(int(f.Fd()))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
	}
	return 1
}
