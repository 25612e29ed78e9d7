package model

import (
	"errors"
	"fmt"
)

type ExitCode int

func (e ExitCode) String() string {
	return fmt.Sprintf("Exit code %d", e)
}

func (e ExitCode) Error() string {
	return e.String()
}

const (
	NoError ExitCode = iota
	UnknownError
	UserCanceled
	// LookupFailed is returned when the weather service could not answer.
	LookupFailed
)

var (
	// ErrNoHistory is returned by pickers when there is nothing to choose from.
	ErrNoHistory = errors.New("no recent searches")
	// ErrUnknownUnit is returned for temperature unit names we do not recognize.
	ErrUnknownUnit = errors.New("unknown temperature unit")
)
