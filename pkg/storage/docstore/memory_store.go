package docstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore menyimpan dokumen di memori proses. Dipakai untuk STORE_DRIVER=memory dan test.
// Dokumen disimpan sebagai JSON supaya pemanggil tidak bisa mengubah isi store lewat map yang dikembalikan.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	if err := checkKey(collection, id); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	raw, ok := m.docs[collection][id]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	doc, err := decode(raw)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

func (m *MemoryStore) Set(ctx context.Context, collection, id string, data Document, merge bool) error {
	if err := checkKey(collection, id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	doc := data
	if raw, ok := m.docs[collection][id]; ok && merge {
		existing, err := decode(raw)
		if err != nil {
			return err
		}
		doc = mergeDocs(existing, data)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if m.docs[collection] == nil {
		m.docs[collection] = make(map[string][]byte)
	}
	m.docs[collection][id] = raw
	return nil
}

func (m *MemoryStore) List(ctx context.Context, collection string) ([]Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Snapshot, 0, len(m.docs[collection]))
	for id, raw := range m.docs[collection] {
		doc, err := decode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, Snapshot{ID: id, Data: doc})
	}
	sortSnapshots(out)
	return out, nil
}

func (m *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := checkKey(collection, id); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.docs[collection], id)
	m.mu.Unlock()
	return nil
}

func decode(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}
