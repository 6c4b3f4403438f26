// Package history models the browser history stack the wizard navigates.
//
// Entries carry a full state snapshot alongside the derived URL hash so a pop
// restores state without re-parsing the URL. The stack classifies the popped
// entry's overlay flags: landing on a primary wizard step force-closes them,
// anything else restores them verbatim.
package history

import "caseflow/internal/wizard/model"

// Adapter is the contract the wizard engine navigates through. The in-memory
// Stack is both the production implementation (per server-side session) and
// the test fake.
type Adapter interface {
	// Push appends an entry, discarding any forward entries beyond the
	// current position.
	Push(entry model.HistoryEntry)

	// Replace swaps the entry at the current position without growing the
	// stack.
	Replace(entry model.HistoryEntry)

	// OnPop registers the callback fired when Back or Forward lands on an
	// entry. At most one callback; later registrations replace earlier ones.
	OnPop(fn func(model.HistoryEntry))

	// CurrentHash returns the hash of the entry at the current position.
	CurrentHash() string

	// Back moves one entry backward, firing the pop callback. Returns false
	// at the bottom of the stack.
	Back() bool

	// Forward moves one entry forward, firing the pop callback. Returns
	// false at the top of the stack.
	Forward() bool
}

// ClassifyOverlay applies the pop-time overlay rule to an entry before it is
// handed to the restore path: primary wizard steps come back with every
// visible overlay closed so a stale modal cannot reappear while paging
// through questions; other steps keep their recorded flags. The shown-once
// warning latch is visibility history, not a visible overlay, and survives
// either way.
func ClassifyOverlay(entry model.HistoryEntry) model.HistoryEntry {
	if entry.State.Step.IsPrimaryWizard() {
		entry.Overlay.CloseAll()
	}
	return entry
}
