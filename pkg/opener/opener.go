// Package opener shells out to the platform's file opener and the user's
// editor. Both are collaborators for the close workflow; the runners accept
// them as functions so tests can substitute fakes.
package opener

import (
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Open launches the OS-level handler for target with output suppressed.
func Open(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

// Edit opens path in $EDITOR (falling back to vi) attached to the terminal
// and blocks until the editor exits.
func Edit(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
