package model

import (
	"errors"
	"fmt"
)

// ErrConfig matches every configuration error via errors.Is
var ErrConfig = errors.New("configuration error")

// ConfigError reports invalid or conflicting settings. It is raised
// before any input is read.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ConfigErrorf formats a ConfigError
func ConfigErrorf(format string, a ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, a...)}
}
