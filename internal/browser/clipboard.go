//go:build js && wasm

package browser

import (
	"errors"
	"fmt"
	"syscall/js"

	shaderr "github.com/amterp/shades/internal/errors"
)

// Clipboard writes through the async clipboard API, falling back to a
// hidden textarea and execCommand("copy") where that API is missing or
// refuses. WriteText blocks until the browser settles, so it must not run
// on the event callback itself.
type Clipboard struct{}

func (Clipboard) WriteText(text string) error {
	cb := window.Get("navigator").Get("clipboard")
	if cb.Truthy() && cb.Get("writeText").Type() == js.TypeFunction {
		err := await(cb.Call("writeText", text))
		if err == nil {
			return nil
		}
		if fallbackErr := execCommandCopy(text); fallbackErr != nil {
			return errors.Join(err, fallbackErr)
		}
		return nil
	}
	return execCommandCopy(text)
}

// await blocks until promise settles.
func await(promise js.Value) error {
	done := make(chan error, 1)

	onResolve := js.FuncOf(func(this js.Value, args []js.Value) any {
		done <- nil
		return nil
	})
	onReject := js.FuncOf(func(this js.Value, args []js.Value) any {
		reason := "rejected"
		if len(args) > 0 {
			reason = args[0].Call("toString").String()
		}
		done <- fmt.Errorf("clipboard write: %s", reason)
		return nil
	})
	defer onResolve.Release()
	defer onReject.Release()

	promise.Call("then", onResolve, onReject)
	return <-done
}

func execCommandCopy(text string) error {
	body := document.Get("body")
	if !body.Truthy() {
		return shaderr.Unsupported("clipboard")
	}

	area := createElement("textarea", "")
	area.Set("value", text)
	area.Call("setAttribute", "readonly", "")
	applyStyle(area, inlineStyle{"position": "fixed", "top": "-1000px", "opacity": "0"})
	body.Call("appendChild", area)
	defer area.Call("remove")

	var copied bool
	err := try(func() {
		area.Call("select")
		copied = document.Call("execCommand", "copy").Bool()
	})
	if err != nil || !copied {
		return shaderr.Unsupported("clipboard")
	}
	return nil
}
