package launcher

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open hands a path to the operating system's default handler. The spawned
// process is not waited on; a launch failure is reported to the caller and
// is never fatal to the application.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	// Reap the child in the background so it doesn't linger as a zombie.
	go func() { _ = cmd.Wait() }()

	return nil
}
