package domain

import "fmt"

// CommandRunError reports that the backend command process could not be
// started at all (e.g. the executable was not found on PATH).
type CommandRunError struct {
	Err error
}

func (e *CommandRunError) Error() string {
	return fmt.Sprintf("%v: cannot run command", e.Err)
}

func (e *CommandRunError) Unwrap() error { return e.Err }

// CommandExitError reports that the backend command ran but exited with a
// non-zero status. Stderr carries the trimmed standard-error output and
// Args the argument list used, so the message is useful without context.
type CommandExitError struct {
	Command string
	Args    []string
	Stderr  string
}

func (e *CommandExitError) Error() string {
	msg := ""
	if e.Stderr != "" {
		msg = e.Stderr + ": "
	}
	msg += "`" + e.Command
	for _, arg := range e.Args {
		msg += fmt.Sprintf(" '%s'", arg)
	}
	return msg + "` exited with non-zero status"
}

// BrokenURLError reports that a remote URL string is not parseable as an
// absolute URL or lacks a host entirely.
type BrokenURLError struct {
	URL string
	Msg string
}

func (e *BrokenURLError) Error() string {
	return fmt.Sprintf("Git URL %s is broken: %s", e.URL, e.Msg)
}

// DetectionError reports that a remote URL is syntactically valid but does
// not identify a supported hosting service.
type DetectionError struct {
	Reason string
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("Cannot detect service: %s", e.Reason)
}
