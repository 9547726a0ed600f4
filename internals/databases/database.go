// file: internals/databases/database.go
package database

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolcal_backend/internals/configs"
)

// Handle owns the shared *gorm.DB. Repositories receive the handle at
// construction instead of touching a package global, and Reinit swaps the
// connection atomically (the old pool is closed after the swap).
type Handle struct {
	mu sync.RWMutex
	db *gorm.DB
}

// NewHandle wraps an already-open connection (tests, tooling).
func NewHandle(db *gorm.DB) *Handle {
	return &Handle{db: db}
}

func Connect() (*Handle, error) {
	h := &Handle{}
	if err := h.Reinit(DSNFromEnv()); err != nil {
		return nil, err
	}
	return h, nil
}

// DSNFromEnv builds the connection string the same way the deploy scripts
// expect it: discrete DB_* vars, statement_timeout guard included.
func DSNFromEnv() string {
	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolcal&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)
}

// DB returns the current connection.
func (h *Handle) DB() *gorm.DB {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.db
}

// Reinit opens a new pool for dsn and swaps it in. Connections handed out
// before the swap finish their request on the old pool; the old pool is
// closed once the swap is done.
func (h *Handle) Reinit(dsn string) error {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	tunePool(db)

	h.mu.Lock()
	old := h.db
	h.db = db
	h.mu.Unlock()

	if old != nil {
		if sqlDB, err := old.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	log.Println("[INFO] database connected")
	return nil
}

// tunePool bounds the pool: excess requests queue at the pool rather than
// opening unbounded connections.
func tunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Ping reports store connectivity (used by /health).
func (h *Handle) Ping() error {
	sqlDB, err := h.DB().DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the current pool.
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.db == nil {
		return
	}
	if sqlDB, err := h.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	h.db = nil
}
