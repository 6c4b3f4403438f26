// Package embed posts height-change notifications to a hosting frame so the
// embed variant can auto-resize its iframe.
package embed

import (
	"sync"
	"time"
)

// MessageType is the type discriminator on every cross-frame message.
const MessageType = "caseflow:resize"

// DefaultDebounce is the trailing-edge delay before a height change is posted.
const DefaultDebounce = 150 * time.Millisecond

// Message is the payload posted to the hosting frame.
type Message struct {
	Type   string `json:"type"`
	Height int    `json:"height"`
}

// Sink receives debounced messages. In production this is the frame bridge;
// tests supply a recorder.
type Sink interface {
	Post(msg Message)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(msg Message)

// Post calls the wrapped function.
func (f SinkFunc) Post(msg Message) { f(msg) }

// Notifier debounces height updates on the trailing edge: a burst of resize
// events produces one message carrying the last height.
type Notifier struct {
	sink     Sink
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending int
	closed  bool
}

// NewNotifier creates a notifier with the given debounce interval. A zero or
// negative interval falls back to the default.
func NewNotifier(sink Sink, debounce time.Duration) *Notifier {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Notifier{sink: sink, debounce: debounce}
}

// HeightChanged schedules a notification for the new height, resetting the
// debounce window. Later calls within the window win.
func (n *Notifier) HeightChanged(height int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.pending = height
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.debounce, n.fire)
}

// Flush posts any pending height immediately, cancelling the timer.
func (n *Notifier) Flush() {
	n.mu.Lock()
	if n.closed || n.timer == nil {
		n.mu.Unlock()
		return
	}
	n.timer.Stop()
	n.timer = nil
	height := n.pending
	n.mu.Unlock()

	n.sink.Post(Message{Type: MessageType, Height: height})
}

// Close cancels any pending notification. Further HeightChanged calls are
// no-ops.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *Notifier) fire() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.timer = nil
	height := n.pending
	n.mu.Unlock()

	n.sink.Post(Message{Type: MessageType, Height: height})
}
