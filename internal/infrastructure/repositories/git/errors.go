package git

import (
	"fmt"
	"strings"
)

// CommandError carries the diagnostics of a failed git invocation.
type CommandError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf(
		"git %s failed (exit %d): %s",
		strings.Join(redactArgs(e.Args), " "),
		e.ExitCode,
		strings.TrimSpace(e.Stderr),
	)
}
