//go:build windows

package main

import "os/exec"

// openFile opens a file in the system viewer via the shell handler.
func openFile(path string) error {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
}
