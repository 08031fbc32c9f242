package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/employee-directory-api/internal/domain/repository"
	"github.com/jhoicas/employee-directory-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/employee-directory-api/internal/infrastructure/postgres"
	"github.com/jhoicas/employee-directory-api/pkg/config"
	"github.com/jhoicas/employee-directory-api/pkg/logger"
)

// Store agrupa los repositorios de usuarios y empleados sobre un mismo backend.
type Store struct {
	Driver    string
	Users     repository.UserRepository
	Employees repository.EmployeeRepository
	close     func(ctx context.Context) error
}

// Close libera las conexiones del backend.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open elige el adaptador según el esquema de cfg.URL, conecta y prepara el esquema
// (índices únicos en Mongo, migraciones goose en Postgres).
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	driver, err := cfg.Driver()
	if err != nil {
		return nil, err
	}
	switch driver {
	case config.DriverMongo:
		client, err := mongodb.NewClient(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Name)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("driver", driver).Str("database", cfg.Name).Msg("almacén de documentos conectado")
		return &Store{
			Driver:    driver,
			Users:     mongodb.NewUserRepository(db),
			Employees: mongodb.NewEmployeeRepository(db),
			close:     client.Disconnect,
		}, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Str("driver", driver).Msg("PostgreSQL conectado y migrado")
		return &Store{
			Driver:    driver,
			Users:     postgres.NewUserRepository(pool),
			Employees: postgres.NewEmployeeRepository(pool),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil
	default:
		return nil, fmt.Errorf("store: driver %q no soportado", driver)
	}
}
