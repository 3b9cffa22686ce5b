package dispatch

import (
	"fmt"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/event"
)

// State is the dispatch state of one event
type State int

const (
	StateReceived State = iota
	StateResolved
	StateApplied
	StateDone
)

func (s State) String() string {
	switch s {
	case StateReceived:
		return "received"
	case StateResolved:
		return "resolved"
	case StateApplied:
		return "applied"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText encodes the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name
func (s *State) UnmarshalText(text []byte) error {
	for st := StateReceived; st <= StateDone; st++ {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown dispatch state %q", text)
}

// Selection is a modifier chosen for an event, including no-op entries
type Selection struct {
	Catalog  string `json:"catalog"`
	Modifier string `json:"modifier"`
}

// Failure is a modifier whose effect returned an error or panicked
type Failure struct {
	Catalog  string `json:"catalog"`
	Modifier string `json:"modifier"`
	Error    string `json:"error"`
	Code     string `json:"code"`
}

// Outcome describes what happened to one event
type Outcome struct {
	EventID  string       `json:"event_id"`
	Type     event.Type   `json:"type"`
	Tick     uint64       `json:"tick"`
	State    State        `json:"state"`
	Selected []Selection  `json:"selected,omitempty"`
	Applied  []string     `json:"applied,omitempty"`
	Skipped  []string     `json:"skipped,omitempty"`
	Failed   []Failure    `json:"failed,omitempty"`
	Event    *event.Event `json:"event,omitempty"`

	// TagsCleared is the number of tags dropped because the subject is gone
	TagsCleared int `json:"tags_cleared,omitempty"`
}

// Sink receives every completed outcome
type Sink interface {
	Record(out Outcome)
}
