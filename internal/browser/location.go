//go:build js && wasm

package browser

import (
	"errors"
	"net/url"
	"syscall/js"

	"github.com/amterp/shades/internal/session"
)

var errNoParent = errors.New("no parent frame")

// Location adapts window.location and window.history.
type Location struct{}

func (Location) Href() string {
	return window.Get("location").Get("href").String()
}

func (Location) PushState(href string) error {
	return try(func() {
		window.Get("history").Call("pushState", js.Null(), "", href)
	})
}

func (Location) ReplaceState(href string) error {
	return try(func() {
		window.Get("history").Call("replaceState", js.Null(), "", href)
	})
}

func (Location) SetFragment(fragment string) {
	_ = try(func() {
		window.Get("location").Set("hash", fragment)
	})
}

// Query returns the page's query parameters.
func (l Location) Query() url.Values {
	u, err := url.Parse(l.Href())
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}

// Parent posts messages to window.parent.
type Parent struct{}

func (Parent) PostMessage(msg session.Message) error {
	parent := window.Get("parent")
	if !parent.Truthy() || parent.Equal(window) {
		return errNoParent
	}
	return try(func() {
		parent.Call("postMessage", js.ValueOf(msg.Map()), "*")
	})
}
