package form

import "sync"

// Level classifies a user-facing message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message is surfaced to the user after an action.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Notifier surfaces messages to the user (an alert, a flash, a toast).
type Notifier interface {
	Notify(msg Message)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg Message)

func (fn NotifierFunc) Notify(msg Message) {
	if fn != nil {
		fn(msg)
	}
}

// RecordingNotifier keeps every message it receives.
type RecordingNotifier struct {
	mu       sync.Mutex
	messages []Message
}

func (r *RecordingNotifier) Notify(msg Message) {
	r.mu.Lock()
	r.messages = append(r.messages, msg)
	r.mu.Unlock()
}

// Messages returns a copy of the recorded messages.
func (r *RecordingNotifier) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// Last returns the most recent message.
func (r *RecordingNotifier) Last() (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return Message{}, false
	}
	return r.messages[len(r.messages)-1], true
}

type discardNotifier struct{}

func (discardNotifier) Notify(Message) {}
