package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Connector memegang DSN (kredensial) dan membuka koneksi MariaDB/MySQL satu kali saat pertama dibutuhkan.
// Connector dibuat oleh pemanggil dan diteruskan secara eksplisit; tidak ada koneksi global.
type Connector struct {
	dsn    string
	logger *slog.Logger

	once sync.Once
	db   *sql.DB
	err  error
}

// NewConnector menerima DSN format: username:password@tcp(host:port)/dbname?parseTime=true
func NewConnector(dsn string, logger *slog.Logger) *Connector {
	return &Connector{dsn: dsn, logger: logger}
}

// DB mengembalikan *sql.DB; panggilan pertama membuka koneksi dan melakukan ping.
// Error dari percobaan pertama disimpan dan dikembalikan lagi di panggilan berikutnya.
func (c *Connector) DB(ctx context.Context) (*sql.DB, error) {
	c.once.Do(func() {
		db, err := sql.Open("mysql", c.dsn)
		if err != nil {
			c.err = fmt.Errorf("gagal membuka koneksi ke database: %w", err)
			return
		}
		db.SetConnMaxLifetime(3 * time.Minute)
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)

		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			c.err = fmt.Errorf("gagal melakukan ping ke database: %w", err)
			return
		}

		c.logger.Info("Berhasil terhubung ke MariaDB.")
		c.db = db
	})
	return c.db, c.err
}

// Close menutup koneksi jika sudah pernah dibuka.
func (c *Connector) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
