package scene

import "github.com/pkg/errors"

var (
	ErrRegistryFull    = errors.New("scene registry is full")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidCapacity = errors.New("registry capacity must be at least 2")
)
