package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/utils"
)

// Storages bundles the repositories of the selected storage driver.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the backend named by cfg.DB.Driver, applies the
// schema migrations for SQL backends and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	ids := utils.NewUUIDGenerator()

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Info().Msg("using in-memory user storage")
		return &Storages{UserRepository: NewMemoryUserRepository(ids)}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, ids, log),
		db:             db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
