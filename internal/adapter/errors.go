package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamStatus signals a non-200 response from an upstream service.
	ErrUpstreamStatus = errors.New("upstream returned non-200 status")

	// ErrUnreachable signals that an upstream could not be reached after
	// retry exhaustion.
	ErrUnreachable = errors.New("cannot reach upstream")

	// ErrPaginationLimit signals that the continuation loop hit its bound
	// before the upstream reported batch completion. The summaries
	// returned alongside it are a partial result.
	ErrPaginationLimit = errors.New("pagination limit reached before batch completion")
)

// APIError is an application-level error reported in the body of an
// otherwise successful encyclopedia API response.
type APIError struct {
	Info string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("error parsing Wikipedia API: %s", e.Info)
}
