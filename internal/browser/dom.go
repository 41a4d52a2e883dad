//go:build js && wasm

// Package browser binds the palette engine to the page through syscall/js:
// the column surface, location and history, the parent frame, the clipboard
// and the page's event listeners.
package browser

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/charmbracelet/log"
)

var (
	window   = js.Global()
	document = window.Get("document")
)

func byID(id string) js.Value {
	return document.Call("getElementById", id)
}

func createElement(tag, class string) js.Value {
	el := document.Call("createElement", tag)
	if class != "" {
		el.Set("className", class)
	}
	return el
}

func setText(el js.Value, text string) {
	el.Set("textContent", text)
}

func applyStyle(el js.Value, style inlineStyle) {
	s := el.Get("style")
	for prop, value := range style {
		if value == "" {
			s.Call("removeProperty", prop)
			continue
		}
		s.Call("setProperty", prop, value)
	}
}

// try runs f and turns a thrown JS exception into an error.
func try(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	f()
	return nil
}

// framed reports whether the page runs inside another page's frame. A
// cross-origin top that can't be compared counts as framed.
func framed() (inFrame bool) {
	defer func() {
		if recover() != nil {
			inFrame = true
		}
	}()
	return !window.Get("self").Equal(window.Get("top"))
}

// coarsePointer reports a touch-first device.
func coarsePointer() bool {
	mm := window.Get("matchMedia")
	if mm.Type() != js.TypeFunction {
		return false
	}
	return window.Call("matchMedia", "(pointer: coarse)").Get("matches").Bool()
}

// consoleWriter sends log lines to the browser console.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	window.Get("console").Call("log", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(consoleWriter{}, log.Options{
		Prefix: "shades",
		Level:  level,
	})
}
