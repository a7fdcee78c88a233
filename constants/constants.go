package constants

import "os"

var inTerm = func() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}()

var stdinUsed = func() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	return fi.Mode()&os.ModeNamedPipe != 0
}()

// InTerm reports whether stdout is attached to a terminal.
func InTerm() bool {
	return inTerm
}

// StdinUsed reports whether stdin is a pipe.
func StdinUsed() bool {
	return stdinUsed
}
