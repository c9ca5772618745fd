//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillGroup terminates pid and its children with taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillGroup(pid int) {
	if !valid(pid) {
		return
	}
	// Best-effort; launcher.Kill runs afterwards as a fallback.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is numeric
}
