package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrCSVRequired is returned when no CSV path is configured.
	ErrCSVRequired = errors.New("luckymail: csv path is required")

	// ErrTemplateRequired is returned when no template path is configured.
	ErrTemplateRequired = errors.New("luckymail: template path is required")

	// ErrInvalidSchedule is returned for a cron expression that does not parse.
	ErrInvalidSchedule = errors.New("luckymail: invalid schedule")
)

// Stages of a send run, as reported by StageError.
const (
	StageSelect   = "select"
	StageRender   = "render"
	StageDispatch = "dispatch"
)

// StageError records which stage of a send run failed.
// The underlying error stays reachable through errors.Is and errors.As.
type StageError struct {
	Err   error
	Stage string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageError(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// ErrorStage returns the stage err failed in, or "" when err carries none.
func ErrorStage(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
