//go:build !windows

package process

import "syscall"

// KillGroup sends SIGKILL to the process group led by pid.
func KillGroup(pid int) {
	if !valid(pid) {
		return
	}
	// Best-effort; launcher.Kill runs afterwards as a fallback.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
