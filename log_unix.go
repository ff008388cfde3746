// +build !windows
// +build !plan9
// +build !js

package knuckleball

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockLogFile takes an advisory exclusive lock on f, blocking until it
// is available; unlockLogFile releases it.
func lockLogFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX)
}

func unlockLogFile(f *os.File) {
	unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
