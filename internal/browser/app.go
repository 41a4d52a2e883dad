//go:build js && wasm

package browser

import (
	"math/rand"
	"strconv"
	"strings"
	"syscall/js"
	"time"

	"github.com/amterp/shades/internal/interaction"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
	"github.com/amterp/shades/internal/selector"
	"github.com/amterp/shades/internal/service"
	"github.com/amterp/shades/internal/session"
	"github.com/charmbracelet/log"
)

// Element ids and query parameters the page relies on.
const (
	paletteID  = "palette"
	generateID = "generateBtn"
	paramDebug = "debug"
)

// App is the running page: engine, controller and the bound listeners.
type App struct {
	palette    *service.PaletteService
	controller *session.Controller
	dispatcher *interaction.Dispatcher
	page       *Page
	logger     *log.Logger

	// Held for the page's lifetime; never released.
	funcs []js.Func
}

// Run wires the engine to the page and loads the palette from the fragment.
func Run() *App {
	loc := Location{}
	query := loc.Query()

	level := log.InfoLevel
	if query.Get(paramDebug) == "1" {
		level = log.DebugLevel
	}
	logger := newLogger(level)

	opts := session.ParseOptions(query, framed())
	logger.Debug("options", "embed", opts.Embed, "history", opts.History, "keys", opts.AllowKeyboard, "ctx", opts.Context)

	controller := session.NewController(opts, loc, Parent{}, logger)

	pool := namepool.Builtin(nil)
	sel := selector.New(pool, rand.New(rand.NewSource(time.Now().UnixNano())))
	container := byID(paletteID)
	palette := service.NewPaletteService(columnCount(container), pool, sel, model.DefaultBias, controller)

	page := NewPage(container, palette.Len(), opts.IsEmbedded())

	a := &App{
		palette:    palette,
		controller: controller,
		page:       page,
		logger:     logger,
	}
	a.dispatcher = interaction.NewDispatcher(interaction.Config{
		Palette:       palette,
		Renderer:      page,
		Clipboard:     Clipboard{},
		Presenter:     page,
		Clock:         interaction.SystemClock,
		Runner:        interaction.GoRunner,
		AllowKeyboard: opts.AllowKeyboard,
		CoarsePointer: coarsePointer,
		Logger:        logger,
	})

	generate := byID(generateID)
	if opts.IsEmbedded() {
		document.Get("documentElement").Get("classList").Call("add", "embedded")
		if generate.Truthy() {
			generate.Call("removeAttribute", "autofocus")
		}
	}

	a.bindEvents(generate)
	a.exposeLinkManager()

	if err := a.dispatcher.Start(controller.CurrentFragment()); err != nil {
		logger.Error("palette init failed", "err", err)
	}

	if !opts.IsEmbedded() {
		a.ensureFocus(generate)
	}
	return a
}

// columnCount reads data-columns from the container, clamped to 1-9.
func columnCount(container js.Value) int {
	if !container.Truthy() {
		return model.DefaultColumnCount
	}
	n, err := strconv.Atoi(container.Call("getAttribute", "data-columns").String())
	if err != nil || n < 1 {
		return model.DefaultColumnCount
	}
	return min(n, model.MaxColumnCount)
}

func (a *App) listen(target js.Value, event string, capture bool, f func(e js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			f(args[0])
		}
		return nil
	})
	a.funcs = append(a.funcs, fn)
	target.Call("addEventListener", event, fn, capture)
}

func (a *App) bindEvents(generate js.Value) {
	if generate.Truthy() {
		a.listen(generate, "click", false, func(js.Value) {
			a.dispatcher.OnGenerate()
		})
	}

	a.listen(window, "keydown", true, func(e js.Value) {
		if a.dispatcher.OnKeyDown(keyEvent(e)) {
			e.Call("preventDefault")
		}
	})
	a.listen(window, "keyup", true, func(e js.Value) {
		if a.dispatcher.OnKeyUp(keyEvent(e)) {
			e.Call("preventDefault")
		}
	})

	navigate := func(js.Value) {
		a.dispatcher.OnNavigate(a.controller.CurrentFragment())
	}
	a.listen(window, "hashchange", false, navigate)
	a.listen(window, "popstate", false, navigate)

	for i, col := range a.page.columns {
		a.listen(col.lock, "click", false, func(e js.Value) {
			e.Call("stopPropagation")
			a.dispatcher.OnLockToggle(i)
		})
		a.listen(col.el, "click", false, func(e js.Value) {
			if isLockControl(e.Get("target")) {
				return
			}
			a.dispatcher.OnColumnActivate(i)
		})
	}
}

func isLockControl(target js.Value) bool {
	if !target.Truthy() || target.Get("closest").Type() != js.TypeFunction {
		return false
	}
	return target.Call("closest", ".lock-btn").Truthy()
}

func keyEvent(e js.Value) interaction.KeyEvent {
	tag := ""
	if target := e.Get("target"); target.Truthy() {
		if t := target.Get("tagName"); t.Type() == js.TypeString {
			tag = t.String()
		}
	}
	return interaction.KeyEvent{
		Key:       stringProp(e, "key"),
		Code:      stringProp(e, "code"),
		TargetTag: tag,
		Composing: e.Get("isComposing").Truthy(),
	}
}

func stringProp(v js.Value, name string) string {
	p := v.Get(name)
	if p.Type() != js.TypeString {
		return ""
	}
	return p.String()
}

// ensureFocus puts focus on the generate button so Space works right away,
// and again whenever the page comes back with nothing focused. When the
// button won't take focus the body gets it on the next frame instead.
func (a *App) ensureFocus(generate js.Value) {
	if !generate.Truthy() {
		return
	}
	body := document.Get("body")
	focus := func(js.Value) {
		active := document.Get("activeElement")
		if active.Truthy() && !active.Equal(body) {
			return
		}
		generate.Call("focus")
		a.nextFrame(func() {
			if !document.Get("activeElement").Equal(generate) && body.Truthy() {
				body.Call("setAttribute", "tabindex", "-1")
				body.Call("focus")
			}
		})
	}
	focus(js.Undefined())
	onEvent := func(ev js.Value) {
		if wantsRefocus(stringProp(ev, "type"), stringProp(document, "visibilityState")) {
			focus(ev)
		}
	}
	for _, event := range windowFocusEvents {
		a.listen(window, event, false, onEvent)
	}
	for _, event := range documentFocusEvents {
		a.listen(document, event, false, onEvent)
	}
}

// nextFrame runs f once on the next animation frame.
func (a *App) nextFrame(f func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		defer cb.Release()
		f()
		return nil
	})
	window.Call("requestAnimationFrame", cb)
}

// exposeLinkManager publishes window.PaletteLinkManager for host pages:
// buildOpenUrlWithState(base?) returns base carrying the current palette.
func (a *App) exposeLinkManager() {
	build := js.FuncOf(func(this js.Value, args []js.Value) any {
		base := session.AppPath
		if len(args) > 0 && args[0].Type() == js.TypeString && strings.TrimSpace(args[0].String()) != "" {
			base = args[0].String()
		}
		return a.controller.OpenURL(base, a.palette.State())
	})
	a.funcs = append(a.funcs, build)

	window.Set("PaletteLinkManager", js.ValueOf(map[string]any{
		"buildOpenUrlWithState": build,
	}))
}
