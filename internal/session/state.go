// Package session holds the per-session state owned by the UI layer: the
// append-only conversation log with its single-flight busy flag, and the
// keyed draft store. Both are modeled as pure value transitions — every
// operation returns a new value and never mutates its input — so the core
// pipeline stays free of shared mutable state and the caller decides what to
// persist.
package session

import (
	"github.com/google/uuid"

	"github.com/adammsanz-sketch/trendflow/internal/types"
)

// Welcome is the assistant message opening every session.
const Welcome = "Welcome to TrendFlow AI. How can I help you automate your affiliate marketing today? Try asking me to 'find trends' or 'generate a campaign for tech gadgets'."

// State is the conversation log plus the single-flight gate. The zero value
// is an empty, idle session.
type State struct {
	Messages []types.Message
	// Busy reports a command in flight. The caller must not submit a second
	// command while Busy; the pipeline itself does not queue or reject.
	Busy bool
}

// NewState returns a session opened with the welcome message.
func NewState() State {
	return State{}.Append(NewAssistantMessage(Welcome, nil, false))
}

// Append returns a new state with msg added at the end of the log. The input
// state's message slice is never aliased, so previously captured states stay
// valid. Results must be appended in the order they arrive.
func (s State) Append(msg types.Message) State {
	messages := make([]types.Message, len(s.Messages), len(s.Messages)+1)
	copy(messages, s.Messages)
	s.Messages = append(messages, msg)
	return s
}

// Begin acquires the single-flight gate. It reports false, with the state
// unchanged, when a command is already in flight.
func (s State) Begin() (State, bool) {
	if s.Busy {
		return s, false
	}
	s.Busy = true
	return s, true
}

// Finish releases the single-flight gate.
func (s State) Finish() State {
	s.Busy = false
	return s
}

// NewUserMessage builds a log entry for raw user input.
func NewUserMessage(text string) types.Message {
	return types.Message{
		ID:     uuid.NewString(),
		Sender: types.SenderUser,
		Text:   text,
	}
}

// NewAssistantMessage builds a log entry for a pipeline result.
func NewAssistantMessage(text string, widget *types.Widget, thinking bool) types.Message {
	return types.Message{
		ID:       uuid.NewString(),
		Sender:   types.SenderAssistant,
		Text:     text,
		Widget:   widget,
		Thinking: thinking,
	}
}
