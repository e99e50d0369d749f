package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"carrental-backend/internal/repository"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx, so a
// repository works the same inside and outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements repository.Store over PostgreSQL.
type Store struct {
	db *sql.DB

	cars      *carRepository
	rentals   *rentalRepository
	schedules *scheduleRepository
	payments  *paymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		cars:      &carRepository{q: db},
		rentals:   &rentalRepository{q: db},
		schedules: &scheduleRepository{q: db},
		payments:  &paymentRepository{q: db},
	}
}

func (s *Store) Cars() repository.CarRepository           { return s.cars }
func (s *Store) Rentals() repository.RentalRepository     { return s.rentals }
func (s *Store) Schedules() repository.ScheduleRepository { return s.schedules }
func (s *Store) Payments() repository.PaymentRepository   { return s.payments }

// WithinTx runs fn against a Store whose repositories share one transaction.
// Any error aborts the whole transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	txStore := &Store{
		db:        s.db,
		cars:      &carRepository{q: tx},
		rentals:   &rentalRepository{q: tx},
		schedules: &scheduleRepository{q: tx},
		payments:  &paymentRepository{q: tx},
	}
	if err := fn(txStore); err != nil {
		return err
	}
	return tx.Commit()
}
