package postgres

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type rentalRepository struct {
	q Querier
}

const rentalColumns = `id, employee_id, car_id, fullname, phone, passport, rent_type, currency, rent_amount, rent_period, initial_payment_amount, penalty_amount, start_date, end_date, closing_date, bad_rental, is_active, created_at, updated_at`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (employee_id, car_id, fullname, phone, passport, rent_type, currency, rent_amount, rent_period, initial_payment_amount, penalty_amount, start_date, end_date, bad_rental, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, false, true, $14, $14) RETURNING id`
	now := time.Now()
	rt.IsActive = true
	rt.CreatedAt = now
	rt.UpdatedAt = now
	return r.q.QueryRowContext(ctx, query,
		rt.EmployeeID, rt.CarID, rt.FullName, rt.Phone, rt.Passport, rt.RentType, rt.Currency,
		rt.RentAmount, rt.RentPeriod, rt.InitialPaymentAmount, rt.PenaltyAmount,
		rt.StartDate, rt.EndDate, now,
	).Scan(&rt.ID)
}

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.EmployeeID, &rt.CarID, &rt.FullName, &rt.Phone, &rt.Passport,
		&rt.RentType, &rt.Currency, &rt.RentAmount, &rt.RentPeriod, &rt.InitialPaymentAmount,
		&rt.PenaltyAmount, &rt.StartDate, &rt.EndDate, &rt.ClosingDate, &rt.BadRental,
		&rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.q.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) GetActiveByIDForUpdate(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1 AND is_active = true FOR UPDATE`
	return scanRental(r.q.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) Close(ctx context.Context, id int32, closingDate time.Time) error {
	query := `UPDATE rentals SET is_active=false, closing_date=$1, updated_at=$2 WHERE id=$3`
	_, err := r.q.ExecContext(ctx, query, closingDate, time.Now(), id)
	return err
}

func (r *rentalRepository) SetBadRental(ctx context.Context, id int32) error {
	query := `UPDATE rentals SET bad_rental=true, updated_at=$1 WHERE id=$2`
	_, err := r.q.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *rentalRepository) ListActive(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE is_active = true ORDER BY start_date DESC`
	return r.list(ctx, query)
}

func (r *rentalRepository) ListClosed(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE is_active = false ORDER BY start_date DESC`
	return r.list(ctx, query)
}

func (r *rentalRepository) ListBlacklisted(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE is_active = false AND bad_rental = true ORDER BY start_date DESC`
	return r.list(ctx, query)
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}
