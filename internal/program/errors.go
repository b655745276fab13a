package program

import "fmt"

// ConfigError reports a failed installation precondition. Option names the
// settings option involved, if any.
type ConfigError struct {
	Option string
	Msg    string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

func configErrorf(option, format string, args ...interface{}) error {
	return &ConfigError{Option: option, Msg: fmt.Sprintf(format, args...)}
}
