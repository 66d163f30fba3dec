package messages

import "errors"

var (
	ErrValidation    = errors.New("invalid request")
	ErrNotConfigured = errors.New("completion service not configured")
	ErrStore         = errors.New("store read failed")
)

const (
	ErrorCodeValidation    = "validation_error"
	ErrorCodeConfiguration = "configuration_error"
	ErrorCodeUpstream      = "upstream_error"
	ErrorCodeStore         = "store_error"
	ErrorCodeInternal      = "internal_error"
)
