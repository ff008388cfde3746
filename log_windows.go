package knuckleball

import "os"

// lockLogFile is a no-op on Windows: os.OpenFile with O_APPEND already
// gives atomic append semantics per write, which is what the sink
// relies on for interleave-safety on this platform.
func lockLogFile(f *os.File) error {
	return nil
}

func unlockLogFile(f *os.File) {}
