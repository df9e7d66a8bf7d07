package docstore

import (
	"context"

	"github.com/c14220110/caregiver-backend/pkg/metrics"
)

// instrumented membungkus Store dan mencatat setiap operasi ke Prometheus.
type instrumented struct {
	next Store
}

func WithMetrics(s Store) Store {
	return &instrumented{next: s}
}

func (i *instrumented) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	doc, ok, err := i.next.Get(ctx, collection, id)
	metrics.RecordStoreOperation("get", err)
	return doc, ok, err
}

func (i *instrumented) Set(ctx context.Context, collection, id string, data Document, merge bool) error {
	err := i.next.Set(ctx, collection, id, data, merge)
	metrics.RecordStoreOperation("set", err)
	return err
}

func (i *instrumented) List(ctx context.Context, collection string) ([]Snapshot, error) {
	out, err := i.next.List(ctx, collection)
	metrics.RecordStoreOperation("list", err)
	return out, err
}

func (i *instrumented) Delete(ctx context.Context, collection, id string) error {
	err := i.next.Delete(ctx, collection, id)
	metrics.RecordStoreOperation("delete", err)
	return err
}
