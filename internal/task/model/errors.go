package model

import "errors"

var (
	// ErrTaskNotFound indicates that the requested task does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidTaskID indicates that the provided task ID is not a well-formed identifier.
	ErrInvalidTaskID = errors.New("invalid task ID")
	// ErrTaskNameRequired indicates that the task name is empty.
	ErrTaskNameRequired = errors.New("task name is required")
	// ErrTeamNotFound indicates that the referenced team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamID indicates that the provided team ID is not a well-formed identifier.
	ErrInvalidTeamID = errors.New("invalid team ID")
	// ErrInvalidStatus indicates an unknown task status value.
	ErrInvalidStatus = errors.New("invalid task status")
)
