package layoutstore

import (
	"context"
	"sync"

	"cardtable/facecard"
)

// MemoryStore keeps serialized documents in process memory. Used as
// the default store and in tests; contents are lost on restart.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (m *MemoryStore) Save(ctx context.Context, name string, layout facecard.PipLayout) error {
	doc, err := facecard.MarshalLayout(layout)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[name] = doc
	return nil
}

func (m *MemoryStore) Load(ctx context.Context, name string) (facecard.PipLayout, error) {
	m.mu.RLock()
	doc, ok := m.docs[name]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrLayoutNotFound
	}
	return facecard.ParseLayout(doc)
}

func (m *MemoryStore) Close() error {
	return nil
}
