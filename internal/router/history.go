package router

import "sync"

// MemoryHistory is an in-process History: the default for headless use
// and the navigation stack the tests drive back/forward against.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []Entry
	index   int
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{index: -1}
}

func (h *MemoryHistory) Push(entry Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	// Navigating from a mid-stack position drops the forward entries,
	// matching browser history semantics.
	h.entries = append(h.entries[:h.index+1], entry)
	h.index = len(h.entries) - 1
}

func (h *MemoryHistory) Replace(entry Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index < 0 {
		h.entries = append(h.entries, entry)
		h.index = 0
		return
	}
	h.entries[h.index] = entry
}

// Back moves one entry towards the past and returns it; ok is false at
// the bottom of the stack.
func (h *MemoryHistory) Back() (*Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index <= 0 {
		return nil, false
	}
	h.index--
	entry := h.entries[h.index]
	return &entry, true
}

// Forward mirrors Back.
func (h *MemoryHistory) Forward() (*Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index >= len(h.entries)-1 {
		return nil, false
	}
	h.index++
	entry := h.entries[h.index]
	return &entry, true
}

// Current returns the active entry, if any.
func (h *MemoryHistory) Current() (*Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index < 0 {
		return nil, false
	}
	entry := h.entries[h.index]
	return &entry, true
}

func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
