package runtime

import (
	"support-desk/domain"
	"sync"
)

type dialogLock struct {
	mu   sync.Mutex
	refs int
}

// DialogLocks hands out one mutex per dialog.
// Entries are reference counted and dropped once nobody holds or waits on them.
type DialogLocks struct {
	mu    sync.Mutex
	locks map[domain.DialogID]*dialogLock
}

func NewDialogLocks() *DialogLocks {
	return &DialogLocks{locks: make(map[domain.DialogID]*dialogLock)}
}

// Lock blocks until the dialog is free and returns the matching unlock.
func (l *DialogLocks) Lock(id domain.DialogID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &dialogLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// Len is the number of dialogs currently locked or awaited.
func (l *DialogLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
