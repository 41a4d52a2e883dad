package browser

// Window and document events after which the generate button is refocused.
var (
	windowFocusEvents   = []string{"load", "pageshow", "focus"}
	documentFocusEvents = []string{"visibilitychange"}
)

// wantsRefocus reports whether event should pull focus back to the generate
// button. Tab switches only count when the page becomes visible.
func wantsRefocus(event, visibilityState string) bool {
	if event == "visibilitychange" {
		return visibilityState == "visible"
	}
	for _, e := range windowFocusEvents {
		if e == event {
			return true
		}
	}
	return false
}
