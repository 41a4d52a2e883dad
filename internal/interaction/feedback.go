package interaction

import (
	"sync"
	"time"
)

// Feedback texts and how long they stay up. Desktop replaces the name;
// touch devices show a hint under it instead.
const (
	TextCopied     = "Copied!"
	TextCopyFailed = "Copy failed"

	NameCopiedDuration = 800 * time.Millisecond
	NameFailedDuration = 1000 * time.Millisecond
	HintCopiedDuration = 1000 * time.Millisecond
	HintFailedDuration = 1200 * time.Millisecond
)

// Presenter shows transient copy feedback on a column.
type Presenter interface {
	ShowName(col int, text string)
	ShowHint(col int, text string)
	ClearHint(col int)
}

// Timer is the part of *time.Timer that feedback needs.
type Timer interface {
	Stop() bool
}

// Clock schedules revert callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock schedules on real timers.
var SystemClock Clock = realClock{}

// Feedback tracks at most one pending revert per column per slot (name or
// hint). Starting new feedback on a column cancels whatever is pending there
// so only the latest message is ever shown or reverted.
type Feedback struct {
	presenter Presenter
	clock     Clock
	nameFor   func(col int) string

	mu         sync.Mutex
	nameTimers map[int]Timer
	hintTimers map[int]Timer
}

// NewFeedback creates feedback state. nameFor supplies the text a column's
// name reverts to.
func NewFeedback(presenter Presenter, clock Clock, nameFor func(col int) string) *Feedback {
	if clock == nil {
		clock = SystemClock
	}
	return &Feedback{
		presenter:  presenter,
		clock:      clock,
		nameFor:    nameFor,
		nameTimers: make(map[int]Timer),
		hintTimers: make(map[int]Timer),
	}
}

// Begin clears any hint left on col from an earlier copy. Called before the
// clipboard write starts.
func (f *Feedback) Begin(col int) {
	f.mu.Lock()
	if t, ok := f.hintTimers[col]; ok {
		t.Stop()
		delete(f.hintTimers, col)
	}
	f.mu.Unlock()
	f.presenter.ClearHint(col)
}

// Show displays the outcome of a copy on col.
func (f *Feedback) Show(col int, ok bool, coarse bool) {
	if coarse {
		text, d := TextCopied, HintCopiedDuration
		if !ok {
			text, d = TextCopyFailed, HintFailedDuration
		}
		f.showHint(col, text, d)
		return
	}

	text, d := TextCopied, NameCopiedDuration
	if !ok {
		text, d = TextCopyFailed, NameFailedDuration
	}
	f.showName(col, text, d)
}

// pending reports how many reverts are scheduled.
func (f *Feedback) pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.nameTimers) + len(f.hintTimers)
}

func (f *Feedback) showName(col int, text string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.nameTimers[col]; ok {
		t.Stop()
		delete(f.nameTimers, col)
	}
	f.presenter.ShowName(col, text)

	var timer Timer
	timer = f.clock.AfterFunc(d, func() {
		f.mu.Lock()
		current, ok := f.nameTimers[col]
		if !ok || current != timer {
			f.mu.Unlock()
			return // replaced by a newer copy
		}
		delete(f.nameTimers, col)
		f.mu.Unlock()
		f.presenter.ShowName(col, f.nameFor(col))
	})
	f.nameTimers[col] = timer
}

func (f *Feedback) showHint(col int, text string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.hintTimers[col]; ok {
		t.Stop()
		delete(f.hintTimers, col)
	}
	f.presenter.ShowHint(col, text)

	var timer Timer
	timer = f.clock.AfterFunc(d, func() {
		f.mu.Lock()
		current, ok := f.hintTimers[col]
		if !ok || current != timer {
			f.mu.Unlock()
			return
		}
		delete(f.hintTimers, col)
		f.mu.Unlock()
		f.presenter.ClearHint(col)
	})
	f.hintTimers[col] = timer
}
