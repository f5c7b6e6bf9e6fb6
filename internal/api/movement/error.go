package movement

import "errors"

var (
	ErrInvalidFrame           = errors.New("invalid frame data")
	ErrPoseServiceUnavailable = errors.New("pose estimation service unavailable")
	ErrInternalServerError    = errors.New("internal server error")
)
