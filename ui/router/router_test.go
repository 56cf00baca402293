package router

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	logsvc "scolarium/services/logger"
)

// fakeContainer records every container call in order.
type fakeContainer struct {
	calls  []string
	errMsg string
}

func (c *fakeContainer) ShowLoading()         { c.calls = append(c.calls, "loading") }
func (c *fakeContainer) ShowError(msg string) { c.calls = append(c.calls, "error"); c.errMsg = msg }
func (c *fakeContainer) ShowNotFound()        { c.calls = append(c.calls, "not-found") }

func TestParseFragment(t *testing.T) {
	tests := []struct {
		fragment string
		base     string
		params   []string
	}{
		{"#dashboard", "#dashboard", []string{}},
		{"#students/view/XYZ", "#students", []string{"view", "XYZ"}},
		{"#students//view//XYZ", "#students", []string{"view", "XYZ"}},
		{"#students/", "#students", []string{}},
		{"students/view/XYZ", "#students", []string{"view", "XYZ"}},
		{"", "", nil},
		{"#", "", nil},
		{"#/", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			base, params := ParseFragment(tt.fragment)
			assert.Equal(t, tt.base, base)
			if tt.params == nil {
				assert.Nil(t, params)
			} else {
				assert.Equal(t, tt.params, append([]string{}, params...))
			}
		})
	}
}

func TestNavigate(t *testing.T) {
	container := &fakeContainer{}
	rtr := New(container, logsvc.NewNopLogger())

	var gotParams []string
	rtr.Handle("#students", func(params []string) error {
		gotParams = params
		container.calls = append(container.calls, "rendered")
		return nil
	})

	rtr.Navigate("#students/view/XYZ")

	assert.Equal(t, []string{"loading", "rendered"}, container.calls)
	assert.Equal(t, []string{"view", "XYZ"}, gotParams)
}

func TestNavigateUnknownRoute(t *testing.T) {
	container := &fakeContainer{}
	rtr := New(container, logsvc.NewNopLogger())
	rtr.Handle("#dashboard", func([]string) error { return nil })

	rtr.Navigate("#unknownroute")

	assert.Equal(t, []string{"loading", "not-found"}, container.calls)
}

func TestNavigateRenderError(t *testing.T) {
	container := &fakeContainer{}
	rtr := New(container, logsvc.NewNopLogger())
	rtr.Handle("#broken", func([]string) error { return errors.New("boom") })

	rtr.Navigate("#broken")

	assert.Equal(t, []string{"loading", "error"}, container.calls)
	assert.Equal(t, "boom", container.errMsg)
}

// A panicking view must not crash the process; it degrades to the error panel.
func TestNavigateRenderPanic(t *testing.T) {
	container := &fakeContainer{}
	rtr := New(container, logsvc.NewNopLogger())
	rtr.Handle("#broken", func([]string) error { panic("kaboom") })

	rtr.Navigate("#broken")

	assert.Equal(t, []string{"loading", "error"}, container.calls)
	assert.Contains(t, container.errMsg, "kaboom")
}

func TestNavigateEmptyFragment(t *testing.T) {
	container := &fakeContainer{}
	rtr := New(container, logsvc.NewNopLogger())
	rtr.Handle("#dashboard", func([]string) error { return nil })

	rtr.Navigate("")

	assert.Equal(t, []string{"loading", "not-found"}, container.calls)
}
