package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the route, suggestion and station paths.
// Callers match them with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidMode         = errors.New("invalid mode")
	ErrResolutionFailed    = errors.New("location could not be resolved")
	ErrLocationUnresolved  = errors.New("location unresolved")
	ErrRoutingFailed       = errors.New("routing failed")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Endpoint names which side of a route a location belongs to.
type Endpoint string

const (
	EndpointStart Endpoint = "start"
	EndpointEnd   Endpoint = "end"
)

// LocationUnresolvedError reports which route endpoint could not be resolved.
type LocationUnresolvedError struct {
	Side Endpoint
	Err  error
}

func (e *LocationUnresolvedError) Error() string {
	return fmt.Sprintf("%s location unresolved: %v", e.Side, e.Err)
}

func (e *LocationUnresolvedError) Unwrap() error { return e.Err }

func (e *LocationUnresolvedError) Is(target error) bool {
	return target == ErrLocationUnresolved
}

// RoutingFailedError carries the upstream HTTP status of a failed routing call.
// Status is 0 when the call never produced a response (timeout, network error)
// or when the response held no usable route.
type RoutingFailedError struct {
	Status int
	Err    error
}

func (e *RoutingFailedError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("routing failed (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("routing failed: %v", e.Err)
}

func (e *RoutingFailedError) Unwrap() error { return e.Err }

func (e *RoutingFailedError) Is(target error) bool {
	return target == ErrRoutingFailed
}

// UpstreamError is a soft collaborator failure on the supplementary paths
// (suggestions). Status is the upstream HTTP status, or 0 if unknown.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream unavailable (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("upstream unavailable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}
