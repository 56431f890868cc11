package runtime

import (
	"support-desk/contract"
	"support-desk/domain"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
)

const registryShards = 32

var _ contract.IRegistry = (*Registry)(nil)

type Set map[string]struct{}

type shard struct {
	mu      sync.RWMutex
	present map[domain.DialogID]Set // map dialog -> connected participants
}

// Registry is the in-memory session registry: dialog -> participants currently connected.
// Dialogs are spread over shards so that two dialogs rarely contend for the same lock.
// Nothing is persisted; a restart starts empty and the next join re-seeds the entry.
type Registry struct {
	shards [registryShards]*shard
}

func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.shards {
		r.shards[i] = &shard{present: make(map[domain.DialogID]Set)}
	}
	return r
}

func (r *Registry) shardFor(dialogID domain.DialogID) *shard {
	return r.shards[xxhash.Sum64String(dialogID.String())%registryShards]
}

// Join marks participantID as present in the dialog and returns the resulting present count.
// Joining twice is harmless.
func (r *Registry) Join(dialogID domain.DialogID, participantID string) int {
	s := r.shardFor(dialogID)
	s.mu.Lock()
	defer s.mu.Unlock()

	members, ok := s.present[dialogID]
	if !ok {
		members = make(Set)
		s.present[dialogID] = members
	}
	members[participantID] = struct{}{}
	return len(members)
}

// Leave removes participantID from the dialog and returns the resulting present count.
// An emptied entry is dropped so that idle dialogs don't accumulate.
func (r *Registry) Leave(dialogID domain.DialogID, participantID string) int {
	s := r.shardFor(dialogID)
	s.mu.Lock()
	defer s.mu.Unlock()

	members, ok := s.present[dialogID]
	if !ok {
		return 0
	}
	delete(members, participantID)
	if len(members) == 0 {
		delete(s.present, dialogID)
		return 0
	}
	return len(members)
}

func (r *Registry) PresentCount(dialogID domain.DialogID) int {
	s := r.shardFor(dialogID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.present[dialogID])
}

// Present returns a snapshot of the participants connected to a dialog.
func (r *Registry) Present(dialogID domain.DialogID) []string {
	s := r.shardFor(dialogID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Keys(s.present[dialogID])
}

// TotalPresent counts connected participants across every dialog.
func (r *Registry) TotalPresent() int {
	total := 0
	for _, s := range r.shards {
		s.mu.RLock()
		for _, members := range s.present {
			total += len(members)
		}
		s.mu.RUnlock()
	}
	return total
}
