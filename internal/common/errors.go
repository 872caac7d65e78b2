package common

import "errors"

// ErrorEmptyInput is returned when a required prompt was left blank.
var ErrorEmptyInput = errors.New("empty input")
