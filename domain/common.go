package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetDeviceID    = "missing or invalid device id"

	ErrParseUUID       = errors.New("failed to parse UUID")
	ErrDeviceIDMissing = errors.New("X-Device-ID header is required")
	ErrDeviceIDInvalid = errors.New("X-Device-ID header must be a valid UUID")
)
