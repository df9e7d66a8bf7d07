// Package storage memilih dan membuka document store sesuai konfigurasi.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/c14220110/caregiver-backend/config"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
	"github.com/c14220110/caregiver-backend/pkg/storage/mariadb"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open membuka store sesuai cfg.StoreDriver, menjalankan migrasi, dan membungkusnya dengan metrics.
// Closer yang dikembalikan menutup koneksi database.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (docstore.Store, io.Closer, error) {
	var (
		db      *sql.DB
		dialect docstore.Dialect
		closer  io.Closer
		err     error
	)

	switch cfg.StoreDriver {
	case "memory":
		logger.Warn("memakai in-memory store, data hilang saat proses berhenti")
		return docstore.WithMetrics(docstore.NewMemoryStore()), nopCloser{}, nil
	case "mysql":
		conn := mariadb.NewConnector(cfg.MySQLDSN(), logger)
		db, err = conn.DB(ctx)
		dialect, closer = docstore.MySQL, conn
	case "postgres":
		db, err = sql.Open("pgx", cfg.PostgresURL)
		if err == nil {
			err = db.PingContext(ctx)
		}
		dialect, closer = docstore.Postgres, db
	case "sqlite":
		db, err = sql.Open("sqlite3", cfg.SQLitePath+"?_busy_timeout=5000&_foreign_keys=on")
		if err == nil {
			// sqlite hanya mengizinkan satu writer
			db.SetMaxOpenConns(1)
		}
		dialect, closer = docstore.SQLite, db
	default:
		return nil, nil, fmt.Errorf("STORE_DRIVER %q tidak didukung", cfg.StoreDriver)
	}
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, nil, fmt.Errorf("gagal membuka store %s: %w", cfg.StoreDriver, err)
	}

	store := docstore.NewSQLStore(db, dialect)
	if err := store.Migrate(ctx); err != nil {
		closer.Close()
		return nil, nil, err
	}
	logger.Info("document store siap", "driver", cfg.StoreDriver)
	return docstore.WithMetrics(store), closer, nil
}
