package assessment

import "errors"

var (
	ErrSessionNotFound         = errors.New("assessment session not found")
	ErrTestNotRecommended      = errors.New("test is not part of the recommended plan")
	ErrRoutineNotReady         = errors.New("routine is not ready yet")
	ErrInvalidShareChannel     = errors.New("invalid share channel")
	ErrShareChannelUnavailable = errors.New("share channel unavailable")
)
