package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrUnknownLevel is returned when Log.LogLevel is not a zerolog level name.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrAppNameIsEmpty means Log.AppName is missing; every line carries it as "app".
	ErrAppNameIsEmpty = errors.New("log: AppName must be set")

	// ErrServiceNameIsEmpty means Log.ServiceName is missing; the metrics label needs it.
	ErrServiceNameIsEmpty = errors.New("log: ServiceName must be set")
)

// ErrorHandler is installed as zerolog.ErrorHandler. A failing writer must not log through itself.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "webfolio: dropped log event: %v\n", err)
}
