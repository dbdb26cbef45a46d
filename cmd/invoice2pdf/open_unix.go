//go:build !windows

package main

import (
	"os/exec"
	"runtime"
)

// openFile opens a file in the system viewer. Start (not Run) so a slow
// viewer never blocks the CLI.
func openFile(path string) error {
	viewer := "xdg-open"
	if runtime.GOOS == "darwin" {
		viewer = "open"
	}
	return exec.Command(viewer, path).Start()
}
