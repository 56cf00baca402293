package router

import (
	"strings"

	"github.com/pkg/errors"

	"scolarium/core"
)

type (
	// RenderFunc renders one view. Parameter validation is the render
	// function's responsibility, not the router's.
	RenderFunc func(params []string) error

	// Container is the view sink the router renders into.
	Container interface {
		ShowLoading()
		ShowError(msg string)
		ShowNotFound()
	}
)

// Router maps a URL fragment's base route to a render function: a flat,
// one-level dispatch table with a failure boundary around every render.
type Router struct {
	routes    map[string]RenderFunc
	container Container
	log       core.Logger
}

func New(container Container, log core.Logger) *Router {
	return &Router{
		routes:    make(map[string]RenderFunc),
		container: container,
		log:       log,
	}
}

// Handle registers the render function for a base route token (eg. "#students").
func (r *Router) Handle(base string, fn RenderFunc) {
	r.routes[base] = fn
}

// ParseFragment splits a fragment into its base route token and remaining
// path parameters: "#students/view/XYZ" -> ("#students", ["view", "XYZ"]).
// Empty segments are discarded; an empty fragment has no base route.
func ParseFragment(fragment string) (string, []string) {
	parts := make([]string, 0, 4)
	for _, p := range strings.Split(strings.TrimPrefix(fragment, "#"), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "#" + parts[0], parts[1:]
}

// Navigate dispatches a fragment: show the loading placeholder, look up the
// base route, render. A failed or panicking render is logged and replaced
// with an error panel; an unknown route gets the not-found panel. The
// process never crashes on a bad view.
func (r *Router) Navigate(fragment string) {
	base, params := ParseFragment(fragment)

	r.container.ShowLoading()

	fn, ok := r.routes[base]
	if !ok {
		r.container.ShowNotFound()
		return
	}
	if err := r.render(fn, params); err != nil {
		r.log.Error("rendering route "+base, err)
		r.container.ShowError(err.Error())
	}
}

func (r *Router) render(fn RenderFunc, params []string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("render panic: %v", rec)
		}
	}()
	return fn(params)
}
