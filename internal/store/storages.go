package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-medcare/internal/config"
	"github.com/MKhiriev/go-medcare/internal/logger"
)

// Backend names the storage selected from the DSN.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Storages bundles the repositories of one backend.
type Storages struct {
	UserRepository       UserRepository
	ConsentRepository    ConsentRepository
	AssessmentRepository AssessmentRepository
	PurgeRepository      PurgeRepository

	Backend Backend
	db      *DB
}

// NewStorages connects to the backend selected by cfg.DSN and applies
// migrations for SQL backends.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	backend, dsn, err := ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if backend == BackendMemory {
		log.Warn().Msg("no database configured, using in-memory storage")
		return NewMemoryStorages(), nil
	}

	var db *DB
	switch backend {
	case BackendPostgres:
		db, err = NewConnectPostgres(ctx, dsn, log)
	case BackendSQLite:
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	storages := NewSQLStorages(db, log)
	storages.Backend = backend
	return storages, nil
}

// NewSQLStorages wires the SQL repositories over db.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		ConsentRepository:    NewConsentRepository(db, log),
		AssessmentRepository: NewAssessmentRepository(db, log),
		PurgeRepository:      NewPurgeRepository(db, log),
		db:                   db,
	}
}

// NewMemoryStorages wires one MemoryStorage behind every repository.
func NewMemoryStorages() *Storages {
	m := NewMemoryStorage()
	return &Storages{
		UserRepository:       m,
		ConsentRepository:    m,
		AssessmentRepository: m,
		PurgeRepository:      m,
		Backend:              BackendMemory,
	}
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ParseDSN picks a backend for dsn and returns the driver-specific DSN.
//
//	""  / "memory"                               → in-memory
//	postgres://…, postgresql://…, "host=… "      → PostgreSQL
//	sqlite://path, sqlite3://path, file:…, *.db  → SQLite
func ParseDSN(dsn string) (Backend, string, error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case dsn == "" || lower == "memory" || lower == ":memory:":
		return BackendMemory, "", nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"),
		strings.Contains(lower, "host="):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite3://"):
		return BackendSQLite, dsn[len("sqlite3://"):], nil
	case strings.HasPrefix(lower, "sqlite://"):
		return BackendSQLite, dsn[len("sqlite://"):], nil
	case strings.HasPrefix(lower, "file:"),
		strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return BackendSQLite, dsn, nil
	default:
		return "", "", ErrUnsupportedDSN
	}
}
