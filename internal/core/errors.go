package core

import "errors"

var (
	// ErrInvalidMask is returned when a stencil does not divide evenly into rows.
	ErrInvalidMask = errors.New("invalid mask")
	// ErrUnknownMask is returned when a mask name is not registered.
	ErrUnknownMask = errors.New("unknown mask")
	// ErrUnknownKind is returned when a kind name cannot be parsed.
	ErrUnknownKind = errors.New("unknown kind")
)
