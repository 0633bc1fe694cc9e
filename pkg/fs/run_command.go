package fs

import (
	"fmt"
	"os/exec"
)

// RunCommand executes a command with arguments and waits for it to complete.
func (f *realFS) RunCommand(command string, args ...string) error {
	cmd := exec.Command(command, args...)

	// Capture combined output so failures carry the tool's diagnostics
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrCommandFailed, command, string(output))
	}

	return nil
}
