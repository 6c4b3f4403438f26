package history

import (
	"sync"

	"caseflow/internal/wizard/model"
)

// Stack is the in-memory history implementation. The cursor points at the
// "current" entry; Push truncates everything beyond it, the way a browser
// drops forward history on a new navigation.
type Stack struct {
	mu      sync.Mutex
	entries []model.HistoryEntry
	cursor  int
	onPop   func(model.HistoryEntry)
}

// NewStack returns an empty history stack.
func NewStack() *Stack {
	return &Stack{cursor: -1}
}

// Push appends an entry after the cursor, dropping forward entries.
func (s *Stack) Push(entry model.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries[:s.cursor+1], entry)
	s.cursor = len(s.entries) - 1
}

// Replace swaps the current entry in place. On an empty stack it behaves
// like Push, matching replaceState on a fresh document.
func (s *Stack) Replace(entry model.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < 0 {
		s.entries = append(s.entries, entry)
		s.cursor = 0
		return
	}
	s.entries[s.cursor] = entry
}

// OnPop registers the pop callback.
func (s *Stack) OnPop(fn func(model.HistoryEntry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPop = fn
}

// CurrentHash returns the hash of the current entry, or "" when empty.
func (s *Stack) CurrentHash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < 0 {
		return ""
	}
	return s.entries[s.cursor].Hash
}

// Len returns the number of entries on the stack.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Back moves the cursor one entry back and fires the pop callback with the
// classified entry. The callback runs outside the stack lock; per-session
// serialization is the caller's job.
func (s *Stack) Back() bool {
	s.mu.Lock()
	if s.cursor <= 0 {
		s.mu.Unlock()
		return false
	}
	s.cursor--
	entry := ClassifyOverlay(s.entries[s.cursor])
	fn := s.onPop
	s.mu.Unlock()

	if fn != nil {
		fn(entry)
	}
	return true
}

// Forward moves the cursor one entry forward and fires the pop callback with
// the classified entry.
func (s *Stack) Forward() bool {
	s.mu.Lock()
	if s.cursor < 0 || s.cursor >= len(s.entries)-1 {
		s.mu.Unlock()
		return false
	}
	s.cursor++
	entry := ClassifyOverlay(s.entries[s.cursor])
	fn := s.onPop
	s.mu.Unlock()

	if fn != nil {
		fn(entry)
	}
	return true
}
