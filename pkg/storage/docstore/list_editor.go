package docstore

import (
	"context"
	"sync"
)

// ListEditor mengubah field array di dalam dokumen (mis. caregiver-notes/{patient}.notes)
// dengan pola baca-ubah-tulis. Penulisan diserialisasi per proses.
type ListEditor struct {
	Store Store
	mu    sync.Mutex
}

func NewListEditor(store Store) *ListEditor {
	return &ListEditor{Store: store}
}

// Items membaca array field (atau "items" jika field kosong); elemen non-object dilewati.
func (le *ListEditor) Items(ctx context.Context, collection, id, field string) ([]map[string]any, error) {
	items, _, err := le.read(ctx, collection, id, field)
	return items, err
}

// read juga melaporkan apakah item berasal dari fallback "items".
func (le *ListEditor) read(ctx context.Context, collection, id, field string) ([]map[string]any, bool, error) {
	doc, ok, err := le.Store.Get(ctx, collection, id)
	if err != nil || !ok {
		return nil, false, err
	}
	_, hasLegacy := doc["items"]
	primary, _ := doc[field].([]any)
	legacy := len(primary) == 0 && hasLegacy && field != "items"
	return ItemsOf(doc, field), legacy, nil
}

// Append menambahkan item di akhir array.
func (le *ListEditor) Append(ctx context.Context, collection, id, field string, item map[string]any) error {
	le.mu.Lock()
	defer le.mu.Unlock()

	items, legacy, err := le.read(ctx, collection, id, field)
	if err != nil {
		return err
	}
	items = append(items, item)
	return le.write(ctx, collection, id, field, items, legacy)
}

// Update memanggil fn pada item pertama yang cocok. found=false jika tidak ada yang cocok.
func (le *ListEditor) Update(ctx context.Context, collection, id, field string, match func(map[string]any) bool, fn func(map[string]any) error) (bool, error) {
	le.mu.Lock()
	defer le.mu.Unlock()

	items, legacy, err := le.read(ctx, collection, id, field)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if match(it) {
			if err := fn(it); err != nil {
				return true, err
			}
			return true, le.write(ctx, collection, id, field, items, legacy)
		}
	}
	return false, nil
}

// Remove menghapus item pertama yang cocok dan lolos check. found=false jika tidak ada yang cocok.
func (le *ListEditor) Remove(ctx context.Context, collection, id, field string, match func(map[string]any) bool, check func(map[string]any) error) (bool, error) {
	le.mu.Lock()
	defer le.mu.Unlock()

	items, legacy, err := le.read(ctx, collection, id, field)
	if err != nil {
		return false, err
	}
	for i, it := range items {
		if !match(it) {
			continue
		}
		if check != nil {
			if err := check(it); err != nil {
				return true, err
			}
		}
		items = append(items[:i], items[i+1:]...)
		return true, le.write(ctx, collection, id, field, items, legacy)
	}
	return false, nil
}

// write menyimpan array ke field; array lama di "items" dikosongkan supaya tidak terbaca lagi sebagai fallback.
func (le *ListEditor) write(ctx context.Context, collection, id, field string, items []map[string]any, clearLegacy bool) error {
	arr := make([]any, len(items))
	for i, it := range items {
		arr[i] = it
	}
	doc := Document{field: arr}
	if clearLegacy {
		doc["items"] = []any{}
	}
	return le.Store.Set(ctx, collection, id, doc, true)
}

// ItemsOf membaca array field dari dokumen, dengan fallback ke "items"; elemen non-object dilewati.
func ItemsOf(doc Document, field string) []map[string]any {
	raw, _ := doc[field].([]any)
	if len(raw) == 0 {
		raw, _ = doc["items"].([]any)
	}
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
