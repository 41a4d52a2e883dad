// Package session decides how palette changes reach the outside world: the
// URL fragment (pushed or replaced in history) and, when embedded, the parent
// frame.
package session

import (
	"net/url"
	"strings"

	"github.com/amterp/shades/internal/fragment"
	"github.com/amterp/shades/internal/model"
	"github.com/charmbracelet/log"
)

// Navigator is the page's location and history surface.
type Navigator interface {
	// Href returns the current document URL.
	Href() string
	PushState(href string) error
	ReplaceState(href string) error
	// SetFragment assigns the fragment directly. Used when the history API
	// refuses, e.g. under a restrictive sandbox.
	SetFragment(fragment string)
}

// Parent delivers messages to the embedding page. Delivery is best effort.
type Parent interface {
	PostMessage(msg Message) error
}

// Controller commits palette state to the URL and the parent frame.
type Controller struct {
	opts   Options
	nav    Navigator
	parent Parent
	logger *log.Logger
}

// NewController creates a controller. parent may be nil when standalone.
func NewController(opts Options, nav Navigator, parent Parent, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		opts:   opts,
		nav:    nav,
		parent: parent,
		logger: logger,
	}
}

// Options returns the startup options.
func (c *Controller) Options() Options {
	return c.opts
}

// CurrentFragment returns the page's fragment without the leading '#'.
func (c *Controller) CurrentFragment() string {
	href := c.nav.Href()
	if u, err := url.Parse(href); err == nil {
		return u.Fragment
	}
	if i := strings.IndexByte(href, '#'); i >= 0 {
		return href[i+1:]
	}
	return ""
}

// Commit writes state into the fragment. Nothing happens when the fragment
// already matches, so repeated commits never stack duplicate history entries.
// Returns true if the URL changed.
func (c *Controller) Commit(state model.PaletteState) bool {
	next := fragment.Encode(state)
	if c.CurrentFragment() == next {
		return false
	}

	u, err := url.Parse(c.nav.Href())
	if err != nil {
		c.logger.Debug("unparseable location, assigning fragment", "err", err)
		c.nav.SetFragment(next)
		return true
	}
	u.Fragment = next
	u.RawFragment = ""

	if c.opts.History == HistoryReplace {
		err = c.nav.ReplaceState(u.String())
	} else {
		err = c.nav.PushState(u.String())
	}
	if err != nil {
		c.logger.Debug("history update refused, assigning fragment", "mode", c.opts.History, "err", err)
		c.nav.SetFragment(next)
	}
	return true
}

// Broadcast tells the parent frame about state. Only sent when embedded;
// failures are logged and dropped. Returns true if a message was handed off.
func (c *Controller) Broadcast(state model.PaletteState) bool {
	if !c.opts.IsEmbedded() || c.parent == nil {
		return false
	}

	msg := NewMessage(c.opts, state)
	if err := c.parent.PostMessage(msg); err != nil {
		c.logger.Debug("parent message dropped", "err", err)
		return false
	}
	return true
}

// Sync commits then broadcasts. Called after every palette mutation.
func (c *Controller) Sync(state model.PaletteState) {
	c.Commit(state)
	c.Broadcast(state)
}

// OpenURL returns base carrying the current palette, for deep links into a
// standalone view that won't add to the host's back stack.
func (c *Controller) OpenURL(base string, state model.PaletteState) string {
	origin := ""
	if u, err := url.Parse(c.nav.Href()); err == nil {
		origin = u.Scheme + "://" + u.Host
	}
	return BuildOpenURL(base, origin, fragment.Encode(state), true)
}
