//go:build windows

package shim

import "os"

// Windows has no SIGWINCH; the pseudo-terminal keeps its initial size.
func watchResize(in, ptmx *os.File) func() {
	return func() {}
}
