// Package process stops the browser started for sidebar checks, including
// the helper processes Chrome spawns.
package process

// valid rejects pids that would address the caller's own process group
// (0) or every process the caller may signal (negative).
func valid(pid int) bool {
	return pid > 0
}
