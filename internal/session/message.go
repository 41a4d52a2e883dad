package session

import "github.com/amterp/shades/internal/model"

// Identifiers carried by every parent-frame message.
const (
	MessageType = "palette:update"
	AppID       = "color-palette-generator"
)

// AppPath is where the full view is hosted. Open-in-full-view links resolve
// against it when the host page gives no base.
const AppPath = "/apps/" + AppID + "/"

// Suggestion carries hints for the host's "open full view" affordance.
type Suggestion struct {
	History HistoryMode `json:"history"`
}

// Message is the payload posted to the parent frame after each mutation.
type Message struct {
	Type    string     `json:"type"`
	App     string     `json:"app"`
	Ctx     *string    `json:"ctx"` // null when no embed context was given
	Shades  []string   `json:"shades"`
	Hash    string     `json:"hash"`
	Suggest Suggestion `json:"suggest"`
}

// NewMessage builds the update message for state.
func NewMessage(opts Options, state model.PaletteState) Message {
	var ctx *string
	if opts.HasContext() {
		c := opts.Context
		ctx = &c
	}
	return Message{
		Type:    MessageType,
		App:     AppID,
		Ctx:     ctx,
		Shades:  state.Strings(),
		Hash:    encodeState(state),
		Suggest: Suggestion{History: HistoryReplace},
	}
}

// Map converts the message to plain values for structured-clone transports.
func (m Message) Map() map[string]any {
	shades := make([]any, len(m.Shades))
	for i, s := range m.Shades {
		shades[i] = s
	}

	var ctx any
	if m.Ctx != nil {
		ctx = *m.Ctx
	}

	return map[string]any{
		"type":   m.Type,
		"app":    m.App,
		"ctx":    ctx,
		"shades": shades,
		"hash":   m.Hash,
		"suggest": map[string]any{
			"history": string(m.Suggest.History),
		},
	}
}
