package core

import (
	"fmt"
	"maps"
	"net/http"
)

// Route binds an exact request path to a canned JSON payload.
type Route struct {
	Path    string
	Payload map[string]string
}

// Response is what the dispatcher produces for a single path.
type Response struct {
	Status int
	Body   map[string]string
}

// DefaultRoutes returns the service's route table. Keys and values are
// served byte for byte, spelling and trailing whitespace included.
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/", Payload: map[string]string{"messag": "this is cicd"}},
		{Path: "/shahryar", Payload: map[string]string{"this is greate": "thinker "}},
	}
}

var notFoundBody = map[string]string{"detail": "Not Found"}

// Dispatcher matches a path against a fixed set of routes. It is safe for
// concurrent use: the table is copied on construction and never mutated.
type Dispatcher struct {
	routes map[string]Route
	order  []string
}

func NewDispatcher(routes []Route) (*Dispatcher, error) {
	d := &Dispatcher{routes: make(map[string]Route, len(routes))}
	for _, route := range routes {
		if len(route.Path) == 0 || route.Path[0] != '/' {
			return nil, fmt.Errorf("route %q: path must start with /", route.Path)
		}
		if _, exists := d.routes[route.Path]; exists {
			return nil, fmt.Errorf("route %q: registered twice", route.Path)
		}
		d.routes[route.Path] = Route{Path: route.Path, Payload: maps.Clone(route.Payload)}
		d.order = append(d.order, route.Path)
	}
	return d, nil
}

func (d *Dispatcher) Handle(path string) Response {
	route, err := d.Lookup(path)
	if IsNotFoundError(err) {
		return Response{Status: http.StatusNotFound, Body: maps.Clone(notFoundBody)}
	}
	return Response{Status: http.StatusOK, Body: route.Payload}
}

// Lookup returns a copy of the route registered for path, or ErrNotFound.
func (d *Dispatcher) Lookup(path string) (Route, error) {
	route, ok := d.routes[path]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return Route{Path: route.Path, Payload: maps.Clone(route.Payload)}, nil
}

// Routes lists the registered routes in registration order.
func (d *Dispatcher) Routes() []Route {
	out := make([]Route, 0, len(d.order))
	for _, path := range d.order {
		route := d.routes[path]
		out = append(out, Route{Path: route.Path, Payload: maps.Clone(route.Payload)})
	}
	return out
}
