package domain

import "errors"

// ErrAlreadyHalted is returned when a step is requested on a halted machine.
// The machine state is left untouched; callers should reset or undo instead.
var ErrAlreadyHalted = errors.New("machine already halted")

// ErrNothingToUndo is returned when the undo stack is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// ErrNothingToRedo is returned when the redo stack is empty.
var ErrNothingToRedo = errors.New("nothing to redo")

// ErrNoProgram is returned when an operation requires a loaded program.
var ErrNoProgram = errors.New("no program loaded")

// ErrSessionNotFound is returned when a session ID cannot be found in the manager.
var ErrSessionNotFound = errors.New("session not found")
