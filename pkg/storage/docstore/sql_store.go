package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Dialect menyimpan perbedaan SQL antar driver.
type Dialect struct {
	Name      string
	createDDL string
	dollar    bool // placeholder $1, $2 (postgres) alih-alih ?
}

var (
	MySQL = Dialect{
		Name: "mysql",
		createDDL: `CREATE TABLE IF NOT EXISTS documents (
			collection VARCHAR(128) NOT NULL,
			doc_id     VARCHAR(255) NOT NULL,
			data       LONGTEXT     NOT NULL,
			updated_at DATETIME     NOT NULL,
			PRIMARY KEY (collection, doc_id)
		)`,
	}
	SQLite = Dialect{
		Name: "sqlite",
		createDDL: `CREATE TABLE IF NOT EXISTS documents (
			collection TEXT     NOT NULL,
			doc_id     TEXT     NOT NULL,
			data       TEXT     NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (collection, doc_id)
		)`,
	}
	Postgres = Dialect{
		Name: "postgres",
		createDDL: `CREATE TABLE IF NOT EXISTS documents (
			collection VARCHAR(128) NOT NULL,
			doc_id     VARCHAR(255) NOT NULL,
			data       TEXT         NOT NULL,
			updated_at TIMESTAMP    NOT NULL,
			PRIMARY KEY (collection, doc_id)
		)`,
		dollar: true,
	}
)

// rebind mengganti placeholder ? menjadi $n untuk postgres.
func (d Dialect) rebind(query string) string {
	if !d.dollar {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLStore menyimpan dokumen sebagai JSON di tabel documents.
type SQLStore struct {
	DB      *sql.DB
	Dialect Dialect
	now     func() time.Time
}

func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{DB: db, Dialect: dialect, now: time.Now}
}

// Migrate membuat tabel documents jika belum ada.
func (s *SQLStore) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, s.Dialect.createDDL); err != nil {
		return fmt.Errorf("gagal membuat tabel documents: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	if err := checkKey(collection, id); err != nil {
		return nil, false, err
	}
	var raw string
	err := s.DB.QueryRowContext(ctx,
		s.Dialect.rebind("SELECT data FROM documents WHERE collection = ? AND doc_id = ?"),
		collection, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("gagal membaca %s/%s: %w", collection, id, err)
	}
	doc, err := decode([]byte(raw))
	if err != nil {
		return nil, false, fmt.Errorf("dokumen %s/%s rusak: %w", collection, id, err)
	}
	return doc, true, nil
}

// Set menulis dokumen dalam satu transaksi: baca dokumen lama (untuk merge), lalu update atau insert.
func (s *SQLStore) Set(ctx context.Context, collection, id string, data Document, merge bool) error {
	if err := checkKey(collection, id); err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("gagal memulai transaksi: %w", err)
	}
	defer tx.Rollback()

	var raw string
	exists := true
	err = tx.QueryRowContext(ctx,
		s.Dialect.rebind("SELECT data FROM documents WHERE collection = ? AND doc_id = ?"),
		collection, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		exists = false
	} else if err != nil {
		return fmt.Errorf("gagal membaca %s/%s: %w", collection, id, err)
	}

	doc := data
	if exists && merge {
		existing, err := decode([]byte(raw))
		if err != nil {
			return fmt.Errorf("dokumen %s/%s rusak: %w", collection, id, err)
		}
		doc = mergeDocs(existing, data)
	}
	if doc == nil {
		doc = Document{}
	}
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("gagal encode dokumen %s/%s: %w", collection, id, err)
	}

	now := s.now().UTC()
	if exists {
		_, err = tx.ExecContext(ctx,
			s.Dialect.rebind("UPDATE documents SET data = ?, updated_at = ? WHERE collection = ? AND doc_id = ?"),
			string(encoded), now, collection, id)
	} else {
		_, err = tx.ExecContext(ctx,
			s.Dialect.rebind("INSERT INTO documents (collection, doc_id, data, updated_at) VALUES (?, ?, ?, ?)"),
			collection, id, string(encoded), now)
	}
	if err != nil {
		return fmt.Errorf("gagal menyimpan %s/%s: %w", collection, id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("gagal commit transaksi: %w", err)
	}
	return nil
}

func (s *SQLStore) List(ctx context.Context, collection string) ([]Snapshot, error) {
	rows, err := s.DB.QueryContext(ctx,
		s.Dialect.rebind("SELECT doc_id, data FROM documents WHERE collection = ? ORDER BY doc_id"),
		collection)
	if err != nil {
		return nil, fmt.Errorf("gagal list %s: %w", collection, err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		doc, err := decode([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("dokumen %s/%s rusak: %w", collection, id, err)
		}
		out = append(out, Snapshot{ID: id, Data: doc})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLStore) Delete(ctx context.Context, collection, id string) error {
	if err := checkKey(collection, id); err != nil {
		return err
	}
	_, err := s.DB.ExecContext(ctx,
		s.Dialect.rebind("DELETE FROM documents WHERE collection = ? AND doc_id = ?"),
		collection, id)
	if err != nil {
		return fmt.Errorf("gagal menghapus %s/%s: %w", collection, id, err)
	}
	return nil
}
