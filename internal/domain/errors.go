package domain

import "errors"

var (
	ErrUnknownView      = errors.New("unknown view")
	ErrUnknownEventType = errors.New("unknown event type")
)
