package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

// Store bundles the repositories over one database handle. WithinTx runs fn
// against a Store bound to a single transaction; every multi-row mutation in
// the services goes through it so partial state is never observable.
type Store interface {
	Cars() CarRepository
	Rentals() RentalRepository
	Schedules() ScheduleRepository
	Payments() PaymentRepository

	WithinTx(ctx context.Context, fn func(Store) error) error
}

// State filters are explicit method variants rather than an implicit default
// filter, so every call site names the predicate it relies on.

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	// GetByID resolves a non-deleted car regardless of status.
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	// GetByIDForUpdate locks the car row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	// UpdateStatus flips status and the soft-delete flag in one statement.
	UpdateStatus(ctx context.Context, id int32, status domain.CarStatus, isActive bool) error
	SoftDelete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Car, error)
	ListByStatus(ctx context.Context, status domain.CarStatus) ([]domain.Car, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	// GetActiveByIDForUpdate resolves an active rental and locks its row,
	// serializing concurrent payment and closure operations per rental.
	GetActiveByIDForUpdate(ctx context.Context, id int32) (*domain.Rental, error)
	// Close marks the rental inactive with the given closing date.
	Close(ctx context.Context, id int32, closingDate time.Time) error
	SetBadRental(ctx context.Context, id int32) error
	ListActive(ctx context.Context) ([]domain.Rental, error)
	ListClosed(ctx context.Context) ([]domain.Rental, error)
	ListBlacklisted(ctx context.Context) ([]domain.Rental, error)
}

type ScheduleRepository interface {
	// CreateBatch inserts the generated installments, filling their IDs.
	CreateBatch(ctx context.Context, schedules []domain.PaymentSchedule) error
	ExistsForRental(ctx context.Context, rentalID int32) (bool, error)
	// GetUnpaidByID fails with sql.ErrNoRows when the schedule is absent or
	// already paid.
	GetUnpaidByID(ctx context.Context, id int32) (*domain.PaymentSchedule, error)
	ListByRental(ctx context.Context, rentalID int32) ([]domain.PaymentSchedule, error)
	// ListUnpaidByRental returns unpaid schedules oldest due date first.
	ListUnpaidByRental(ctx context.Context, rentalID int32) ([]domain.PaymentSchedule, error)
	CountUnpaidByRental(ctx context.Context, rentalID int32) (int32, error)
	Update(ctx context.Context, sched *domain.PaymentSchedule) error
	// ListDueOn returns unpaid schedules whose payment date falls on the
	// given day, joined with renter contact fields for the reminder batch.
	ListDueOn(ctx context.Context, day time.Time) ([]domain.DueSchedule, error)
	// ListByPaymentDateRange returns unpaid schedules of active rentals of
	// the given rent type due within [from, to], for dashboard bucketing.
	ListByPaymentDateRange(ctx context.Context, rentType domain.RentType, from, to time.Time) ([]domain.DueSchedule, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error)
}
