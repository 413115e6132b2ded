package handler

import "errors"

// ErrNilDependency is returned by Init when a required dependency is missing.
var ErrNilDependency = errors.New("handler dependency is nil")
