package performance

import "errors"

var (
	ErrReviewNotFound = errors.New("performance review not found")
	ErrInvalidScore   = errors.New("score must be between 1 and 100")
)
