package interaction

import "strings"

// KeyEvent is the subset of a DOM keyboard event the dispatcher reads.
type KeyEvent struct {
	Key       string // e.key
	Code      string // e.code
	TargetTag string // tag name of the event target, any case
	Composing bool   // IME composition in progress
}

// Action is what a key maps to.
type Action int

const (
	ActionNone Action = iota
	ActionGenerate
	ActionToggleLock
)

func (e KeyEvent) isSpace() bool {
	return e.Code == "Space" || e.Key == " " || e.Key == "Spacebar"
}

func (e KeyEvent) isEnter() bool {
	return e.Code == "Enter" || e.Key == "Enter" || e.Code == "NumpadEnter"
}

// fromTextEntry is true when the key belongs to a text field.
func (e KeyEvent) fromTextEntry() bool {
	tag := strings.ToLower(e.TargetTag)
	return tag == "input" || tag == "textarea" || e.Composing
}

// digit returns 1..9 for the top-row digit keys, 0 otherwise.
func (e KeyEvent) digit() int {
	if len(e.Key) != 1 || e.Key[0] < '1' || e.Key[0] > '9' {
		return 0
	}
	return int(e.Key[0] - '0')
}

// MapKey resolves a keydown to an action. For ActionToggleLock the column
// index is returned; digits beyond the column count map to nothing.
func MapKey(e KeyEvent, columns int) (Action, int) {
	if e.fromTextEntry() {
		return ActionNone, -1
	}
	if e.isSpace() || e.isEnter() {
		return ActionGenerate, -1
	}
	if n := e.digit(); n > 0 && n <= columns {
		return ActionToggleLock, n - 1
	}
	return ActionNone, -1
}
