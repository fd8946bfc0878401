// Package admin holds dashboard state that lives between requests of one
// admin session.
package admin

import (
	"sort"
	"sync"
)

// Selection is the set of images picked for a bulk action.
type Selection struct {
	enabled bool
	ids     map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

func (s *Selection) Enabled() bool {
	return s.enabled
}

// SetMode turns selection mode on or off. Turning it off clears the selection.
func (s *Selection) SetMode(enabled bool) {
	s.enabled = enabled
	if !enabled {
		s.Clear()
	}
}

// Toggle adds or removes id. It also switches selection mode on.
func (s *Selection) Toggle(id string) {
	s.enabled = true
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// ToggleAll selects every id in all, or clears the selection when all of
// them are already selected.
func (s *Selection) ToggleAll(all []string) {
	s.enabled = true
	if len(all) > 0 && s.containsAll(all) {
		s.Clear()
		return
	}
	for _, id := range all {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in sorted order.
func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Retain drops ids that are no longer present.
func (s *Selection) Retain(present []string) {
	keep := make(map[string]struct{}, len(present))
	for _, id := range present {
		if _, ok := s.ids[id]; ok {
			keep[id] = struct{}{}
		}
	}
	s.ids = keep
}

func (s *Selection) containsAll(all []string) bool {
	for _, id := range all {
		if _, ok := s.ids[id]; !ok {
			return false
		}
	}
	return true
}

// SelectionStore keeps one Selection per admin session id.
type SelectionStore struct {
	mu         sync.Mutex
	selections map[string]*Selection
}

func NewSelectionStore() *SelectionStore {
	return &SelectionStore{selections: make(map[string]*Selection)}
}

// Update runs fn on the session's selection under the store lock and returns
// a snapshot taken afterwards.
func (st *SelectionStore) Update(sid string, fn func(*Selection)) Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()

	sel, ok := st.selections[sid]
	if !ok {
		sel = NewSelection()
		st.selections[sid] = sel
	}
	fn(sel)
	return Snapshot{Enabled: sel.enabled, IDs: sel.IDs()}
}

func (st *SelectionStore) Get(sid string) Snapshot {
	return st.Update(sid, func(*Selection) {})
}

// Drop forgets the session's selection, on logout.
func (st *SelectionStore) Drop(sid string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.selections, sid)
}

type Snapshot struct {
	Enabled bool
	IDs     []string
}
