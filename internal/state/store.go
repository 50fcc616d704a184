package state

import (
	"sync"
	"time"

	apperrors "github.com/harunnryd/karte/internal/errors"
)

// Store holds the one in-progress interaction draft, the chat transcript,
// and the read caches mirrored from the CRM service. It does no I/O and has
// no side effects beyond its own memory; given the same sequence of
// operations it always ends in the same state.
type Store struct {
	mu sync.Mutex

	draft      InteractionDraft
	editingID  int
	generation uint64

	transcript   []ChatMessage
	interactions []InteractionRecord
	hcps         []HCP

	now func() time.Time
}

func NewStore() *Store {
	s := &Store{now: time.Now}
	s.draft = DefaultDraft(s.now())
	return s
}

// Draft returns a copy of the current draft.
func (s *Store) Draft() InteractionDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetField replaces one draft field's value. The only failure mode is an
// unknown field name; values are taken as-is, empty strings included.
func (s *Store) SetField(name, value string) error {
	spec, err := FieldByName(name)
	if err != nil {
		return apperrors.InvalidInput(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	spec.Apply(&s.draft, value)
	return nil
}

// ResetDraft returns every field to its default and clears the editing
// marker. Outstanding submits that started before the reset see a bumped
// generation and must not fold their result back.
func (s *Store) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = DefaultDraft(s.now())
	s.editingID = 0
	s.generation++
}

// BeginEdit loads an existing record into the draft so a subsequent submit
// becomes an update rather than a create.
func (s *Store) BeginEdit(rec InteractionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = rec.InteractionDraft
	s.editingID = rec.ID
	s.generation++
}

// EditingID returns the id of the record being edited, or 0 when the draft
// is a new interaction.
func (s *Store) EditingID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

// Generation identifies the current draft instance. It moves on ResetDraft
// and BeginEdit only.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// AppendChatMessage appends one turn to the transcript. Prior entries are
// never touched.
func (s *Store) AppendChatMessage(msg ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, msg)
}

// Transcript returns a copy of the conversation so far, in causal order.
func (s *Store) Transcript() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// ClearChat empties the transcript.
func (s *Store) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
}

// SetInteractions replaces the whole local list with the latest server
// response.
func (s *Store) SetInteractions(records []InteractionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions = make([]InteractionRecord, len(records))
	copy(s.interactions, records)
}

// PrependInteraction puts a freshly created record at the head of the list.
func (s *Store) PrependInteraction(rec InteractionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions = append([]InteractionRecord{rec}, s.interactions...)
}

// ReplaceInteraction swaps the entry with the same id for the updated
// record. Returns false when no entry matches.
func (s *Store) ReplaceInteraction(rec InteractionRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.interactions {
		if s.interactions[i].ID == rec.ID {
			s.interactions[i] = rec
			return true
		}
	}
	return false
}

// RemoveInteraction deletes the entry with the given id, preserving the
// order of the rest. Removing an absent id is a no-op.
func (s *Store) RemoveInteraction(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.interactions {
		if s.interactions[i].ID == id {
			s.interactions = append(s.interactions[:i], s.interactions[i+1:]...)
			return true
		}
	}
	return false
}

// Interactions returns a copy of the cached list.
func (s *Store) Interactions() []InteractionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]InteractionRecord, len(s.interactions))
	copy(out, s.interactions)
	return out
}

// FindInteraction looks up a cached record by id.
func (s *Store) FindInteraction(id int) (InteractionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.interactions {
		if rec.ID == id {
			return rec, true
		}
	}
	return InteractionRecord{}, false
}

// SetHCPs replaces the directory cache. The directory is owned by the CRM
// service; this store only reads it.
func (s *Store) SetHCPs(hcps []HCP) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hcps = make([]HCP, len(hcps))
	copy(s.hcps, hcps)
}

// HCPs returns a copy of the directory cache.
func (s *Store) HCPs() []HCP {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HCP, len(s.hcps))
	copy(out, s.hcps)
	return out
}

// FindHCP resolves an id to a directory entry.
func (s *Store) FindHCP(id int) (HCP, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.hcps {
		if h.ID == id {
			return h, true
		}
	}
	return HCP{}, false
}
