package service

import "errors"

var (
	ErrUnknownView = errors.New("unknown button view")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoConfigProvider      = errors.New("no config provider given")
)
