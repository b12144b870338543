// errors/api_errors.go
package errors

import "errors"

var (
	ErrInvalidGroupTypeID = errors.New("groupTypeId must be a positive integer")
	ErrInvalidPage        = errors.New("page must be a non-negative integer")
	ErrInvalidUpcoming    = errors.New("upcoming must be a boolean-like value (true/false)")
	ErrUpstreamFailure    = errors.New("upstream request failed")
	ErrInternalServer     = errors.New("internal server error")
)
