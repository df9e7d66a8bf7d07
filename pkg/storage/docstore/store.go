// Package docstore adalah document store sederhana berbasis (collection, id) -> dokumen JSON.
package docstore

import (
	"context"
	"errors"
	"sort"
)

// Document adalah isi satu dokumen; nilai mengikuti tipe hasil decode JSON
// (string, float64, bool, nil, []any, map[string]any).
type Document map[string]any

// Snapshot adalah satu dokumen beserta id-nya, hasil List.
type Snapshot struct {
	ID   string
	Data Document
}

// Store adalah kontrak document store.
// Get mengembalikan found=false (tanpa error) jika dokumen tidak ada.
// Set dengan merge=true menggabungkan field top-level ke dokumen yang sudah ada.
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, bool, error)
	Set(ctx context.Context, collection, id string, data Document, merge bool) error
	List(ctx context.Context, collection string) ([]Snapshot, error)
	Delete(ctx context.Context, collection, id string) error
}

var ErrEmptyKey = errors.New("docstore: collection dan id harus diisi")

func checkKey(collection, id string) error {
	if collection == "" || id == "" {
		return ErrEmptyKey
	}
	return nil
}

// mergeDocs menyalin existing lalu menimpa dengan field dari update.
func mergeDocs(existing, update Document) Document {
	out := make(Document, len(existing)+len(update))
	for k, v := range existing {
		out[k] = v
	}
	for k, v := range update {
		out[k] = v
	}
	return out
}

func sortSnapshots(s []Snapshot) {
	sort.Slice(s, func(i, j int) bool { return s[i].ID < s[j].ID })
}
