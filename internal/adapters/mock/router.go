package mock

import (
	"context"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/ports"
	"sync"
)

// DirectionsCall records the arguments of one Router.Directions call.
type DirectionsCall struct {
	Start, End domain.Coordinates
	Profile    domain.Profile
}

// Router is an in-memory ports.Router returning a fixed route.
type Router struct {
	Route ports.RouteFeature
	Err   error

	mu    sync.Mutex
	calls []DirectionsCall
}

func NewRouter(route ports.RouteFeature) *Router {
	return &Router{Route: route}
}

func (r *Router) Directions(
	ctx context.Context,
	start, end domain.Coordinates,
	profile domain.Profile,
) (ports.RouteFeature, error) {
	r.mu.Lock()
	r.calls = append(r.calls, DirectionsCall{Start: start, End: end, Profile: profile})
	r.mu.Unlock()

	if r.Err != nil {
		return ports.RouteFeature{}, r.Err
	}
	return r.Route, nil
}

func (r *Router) Calls() []DirectionsCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DirectionsCall(nil), r.calls...)
}
