package server

import "github.com/morphic-dev/morphic/internal/errors"

// ErrSessionNotFound is returned when a session ID does not resolve.
func ErrSessionNotFound(id string) error {
	return errors.New("E150").WithDetail("session " + id + " is not live")
}

// ErrUnknownTarget is returned when an event's target does not resolve to
// a node in the session's document.
func ErrUnknownTarget(target string) error {
	return errors.New("E151").WithDetail("no node at " + target)
}
