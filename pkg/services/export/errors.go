package export

import (
	"errors"
	"fmt"
)

var ErrInProgress = errors.New("an export is already in progress")

// FailureNotice is the only failure message shown to users, whatever the stage.
const FailureNotice = "Failed to generate PDF. Please try again."

type Stage string

const (
	StageCapture Stage = "capture"
	StageCompose Stage = "compose"
	StageSave    Stage = "save"
)

// Error is an export aborted at one pipeline stage. Nothing is saved when it occurs.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export failed during %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func stageError(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Stage: stage, Err: err}
}
