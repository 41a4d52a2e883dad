//go:build js && wasm

package browser

import (
	"strconv"
	"syscall/js"

	"github.com/amterp/shades/internal/model"
)

type columnView struct {
	el   js.Value
	lock js.Value
	name js.Value
	hex  js.Value
	hint js.Value
}

// Page is the column surface: it renders palette state and shows copy
// feedback. Column elements are built once and updated in place.
type Page struct {
	columns  []columnView
	embedded bool
}

// NewPage builds n columns inside container.
func NewPage(container js.Value, n int, embedded bool) *Page {
	setText(container, "")

	p := &Page{columns: make([]columnView, n), embedded: embedded}
	for i := range p.columns {
		el := createElement("div", "column")
		el.Call("setAttribute", "data-index", strconv.Itoa(i))
		el.Call("setAttribute", "role", "button")
		el.Set("tabIndex", 0)

		lock := createElement("button", "lock-btn")
		lock.Set("type", "button")

		info := createElement("div", "info")
		name := createElement("div", "name")
		hex := createElement("div", "hex")
		hint := createElement("div", "copied-hint")
		hint.Call("setAttribute", "aria-live", "polite")
		info.Call("append", name, hex, hint)

		el.Call("append", lock, info)
		container.Call("appendChild", el)

		p.columns[i] = columnView{el: el, lock: lock, name: name, hex: hex, hint: hint}
	}
	return p
}

// Len returns the number of column elements.
func (p *Page) Len() int {
	return len(p.columns)
}

// Render updates every column from cols.
func (p *Page) Render(cols []model.Column) {
	for _, col := range cols {
		if col.Index < 0 || col.Index >= len(p.columns) {
			continue
		}
		v := p.columns[col.Index]
		hex := col.Shade.String()

		applyStyle(v.el, columnStyle(col.Shade))
		v.el.Call("setAttribute", "data-shade", hex)
		v.el.Call("setAttribute", "data-locked", strconv.FormatBool(col.Locked))
		if p.embedded {
			v.el.Call("removeAttribute", "title")
		} else {
			v.el.Set("title", "Click to copy "+hex)
		}

		setText(v.name, col.Name)
		setText(v.hex, hex)

		setText(v.lock, lockLabel(col.Locked))
		v.lock.Call("setAttribute", "aria-pressed", strconv.FormatBool(col.Locked))
		applyStyle(v.lock, lockStyle(col.Shade, col.Locked))
	}
}

func (p *Page) ShowName(col int, text string) {
	if col >= 0 && col < len(p.columns) {
		setText(p.columns[col].name, text)
	}
}

func (p *Page) ShowHint(col int, text string) {
	if col >= 0 && col < len(p.columns) {
		setText(p.columns[col].hint, text)
	}
}

func (p *Page) ClearHint(col int) {
	p.ShowHint(col, "")
}
