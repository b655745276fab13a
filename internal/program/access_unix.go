//go:build unix

package program

import "golang.org/x/sys/unix"

// isExecutable asks the kernel whether the current user may execute path.
func isExecutable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
