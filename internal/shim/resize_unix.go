//go:build !windows

package shim

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
)

// watchResize copies the size of in to ptmx now and on every SIGWINCH
// until the returned stop function is called.
func watchResize(in, ptmx *os.File) func() {
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	done := make(chan struct{})

	_ = pty.InheritSize(in, ptmx)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-winch:
				_ = pty.InheritSize(in, ptmx)
			}
		}
	}()

	return func() {
		signal.Stop(winch)
		close(done)
	}
}
