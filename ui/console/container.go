package console

import (
	"fmt"
	"io"

	"scolarium/ui/router"
)

// Container renders the router's panels as plain text; the console stand-in
// for the main view element.
type Container struct {
	out io.Writer
}

var _ router.Container = (*Container)(nil)

func NewContainer(out io.Writer) *Container {
	return &Container{out: out}
}

func (c *Container) ShowLoading() {
	_, _ = fmt.Fprintln(c.out, "Loading view...")
}

func (c *Container) ShowError(msg string) {
	_, _ = fmt.Fprintf(c.out, "\n*** Render error ***\nSomething went wrong while loading this page. Details: %s\n\n", msg)
}

func (c *Container) ShowNotFound() {
	_, _ = fmt.Fprint(c.out, "\n*** 404: page not found ***\nThe requested resource does not exist. Go back with #dashboard.\n\n")
}
