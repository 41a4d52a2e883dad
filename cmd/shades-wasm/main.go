//go:build js && wasm

package main

import "github.com/amterp/shades/internal/browser"

func main() {
	browser.Run()

	// Keep the runtime alive for the page's event listeners.
	select {}
}
