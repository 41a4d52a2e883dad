// Package interaction turns page events into palette operations and drives
// the transient copy feedback on columns.
package interaction

import (
	"github.com/amterp/shades/internal/fragment"
	"github.com/amterp/shades/internal/model"
	"github.com/charmbracelet/log"
)

// Palette is the column state the dispatcher mutates.
type Palette interface {
	Len() int
	Columns() []model.Column
	Column(i int) (model.Column, error)
	NameFor(i int) string
	Generate(respectLocks bool) error
	ToggleLock(i int) (bool, error)
	ApplyShades(shades []model.Shade, overwriteLocked bool) int
	Init(frag string) error
}

// Renderer draws columns after every mutation.
type Renderer interface {
	Render(cols []model.Column)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Runner runs f off the event path. Clipboard writes go through it.
type Runner func(f func())

// GoRunner runs f on a new goroutine.
func GoRunner(f func()) { go f() }

// Dispatcher routes events to the palette and re-renders.
type Dispatcher struct {
	palette       Palette
	renderer      Renderer
	clipboard     Clipboard
	feedback      *Feedback
	run           Runner
	allowKeyboard bool
	coarse        func() bool
	logger        *log.Logger
}

// Config wires a Dispatcher.
type Config struct {
	Palette       Palette
	Renderer      Renderer
	Clipboard     Clipboard
	Presenter     Presenter
	Clock         Clock
	Runner        Runner
	AllowKeyboard bool
	// CoarsePointer reports whether feedback should use the hint style.
	// Evaluated at each copy.
	CoarsePointer func() bool
	Logger        *log.Logger
}

// NewDispatcher creates a dispatcher from cfg.
func NewDispatcher(cfg Config) *Dispatcher {
	d := &Dispatcher{
		palette:       cfg.Palette,
		renderer:      cfg.Renderer,
		clipboard:     cfg.Clipboard,
		run:           cfg.Runner,
		allowKeyboard: cfg.AllowKeyboard,
		coarse:        cfg.CoarsePointer,
		logger:        cfg.Logger,
	}
	if d.run == nil {
		d.run = GoRunner
	}
	if d.coarse == nil {
		d.coarse = func() bool { return false }
	}
	if d.logger == nil {
		d.logger = log.Default()
	}
	if cfg.Presenter != nil {
		d.feedback = NewFeedback(cfg.Presenter, cfg.Clock, d.palette.NameFor)
	}
	return d
}

// Feedback returns the copy feedback tracker, nil without a presenter.
func (d *Dispatcher) Feedback() *Feedback {
	return d.feedback
}

// Start loads the palette from the page fragment and renders it.
func (d *Dispatcher) Start(frag string) error {
	if err := d.palette.Init(frag); err != nil {
		return err
	}
	d.render()
	return nil
}

// OnGenerate handles the generate button.
func (d *Dispatcher) OnGenerate() {
	if err := d.palette.Generate(true); err != nil {
		d.logger.Warn("generate failed", "err", err)
		return
	}
	d.render()
}

// OnLockToggle handles the lock control of column i.
func (d *Dispatcher) OnLockToggle(i int) {
	if _, err := d.palette.ToggleLock(i); err != nil {
		d.logger.Debug("lock toggle ignored", "col", i, "err", err)
		return
	}
	d.render()
}

// OnKeyDown handles a keydown. Returns true when the event was consumed and
// its default action should be prevented.
func (d *Dispatcher) OnKeyDown(e KeyEvent) bool {
	if !d.allowKeyboard {
		return false
	}
	action, col := MapKey(e, d.palette.Len())
	switch action {
	case ActionGenerate:
		d.OnGenerate()
		return true
	case ActionToggleLock:
		d.OnLockToggle(col)
	}
	return false
}

// OnKeyUp reports whether a keyup should have its default prevented, so a
// focused button isn't also activated by the shortcut.
func (d *Dispatcher) OnKeyUp(e KeyEvent) bool {
	if !d.allowKeyboard {
		return false
	}
	return e.isSpace() || e.isEnter()
}

// OnNavigate handles hashchange and popstate. Locked columns keep their
// shade; an undecodable fragment changes nothing.
func (d *Dispatcher) OnNavigate(frag string) {
	shades := fragment.Decode(frag)
	if shades == nil {
		return
	}
	d.palette.ApplyShades(shades, false)
	d.render()
}

// OnColumnActivate copies column i's hex and shows feedback once the
// write settles.
func (d *Dispatcher) OnColumnActivate(i int) {
	col, err := d.palette.Column(i)
	if err != nil {
		d.logger.Debug("activate ignored", "col", i, "err", err)
		return
	}
	if d.feedback != nil {
		d.feedback.Begin(i)
	}
	coarse := d.coarse()
	hex := col.Shade.String()

	d.run(func() {
		ok := d.copy(hex)
		if d.feedback != nil {
			d.feedback.Show(i, ok, coarse)
		}
	})
}

func (d *Dispatcher) copy(text string) bool {
	if d.clipboard == nil {
		return false
	}
	if err := d.clipboard.WriteText(text); err != nil {
		d.logger.Debug("clipboard write failed", "err", err)
		return false
	}
	return true
}

func (d *Dispatcher) render() {
	if d.renderer != nil {
		d.renderer.Render(d.palette.Columns())
	}
}
