package postgres

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type scheduleRepository struct {
	q Querier
}

const scheduleColumns = `id, rental_id, employee_id, due_date, payment_date, amount, penalty_amount, amount_paid, paid_date, payment_closing_date, is_paid, created_at, updated_at`

func (r *scheduleRepository) CreateBatch(ctx context.Context, schedules []domain.PaymentSchedule) error {
	query := `INSERT INTO payment_schedules (rental_id, due_date, payment_date, amount, penalty_amount, amount_paid, is_paid, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, false, $7, $7) RETURNING id`
	now := time.Now()
	for i := range schedules {
		s := &schedules[i]
		s.CreatedAt = now
		s.UpdatedAt = now
		err := r.q.QueryRowContext(ctx, query, s.RentalID, s.DueDate, s.PaymentDate, s.Amount, s.PenaltyAmount, s.AmountPaid, now).Scan(&s.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *scheduleRepository) ExistsForRental(ctx context.Context, rentalID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM payment_schedules WHERE rental_id = $1)`
	err := r.q.QueryRowContext(ctx, query, rentalID).Scan(&exists)
	return exists, err
}

func scanSchedule(row interface{ Scan(...any) error }) (*domain.PaymentSchedule, error) {
	s := &domain.PaymentSchedule{}
	err := row.Scan(&s.ID, &s.RentalID, &s.EmployeeID, &s.DueDate, &s.PaymentDate, &s.Amount,
		&s.PenaltyAmount, &s.AmountPaid, &s.PaidDate, &s.PaymentClosingDate, &s.IsPaid,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *scheduleRepository) GetUnpaidByID(ctx context.Context, id int32) (*domain.PaymentSchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM payment_schedules WHERE id = $1 AND is_paid = false`
	return scanSchedule(r.q.QueryRowContext(ctx, query, id))
}

func (r *scheduleRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.PaymentSchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM payment_schedules WHERE rental_id = $1 ORDER BY due_date`
	return r.list(ctx, query, rentalID)
}

func (r *scheduleRepository) ListUnpaidByRental(ctx context.Context, rentalID int32) ([]domain.PaymentSchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM payment_schedules WHERE rental_id = $1 AND is_paid = false ORDER BY due_date`
	return r.list(ctx, query, rentalID)
}

func (r *scheduleRepository) CountUnpaidByRental(ctx context.Context, rentalID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM payment_schedules WHERE rental_id = $1 AND is_paid = false`
	err := r.q.QueryRowContext(ctx, query, rentalID).Scan(&count)
	return count, err
}

func (r *scheduleRepository) Update(ctx context.Context, s *domain.PaymentSchedule) error {
	query := `UPDATE payment_schedules SET employee_id=$1, amount=$2, penalty_amount=$3, amount_paid=$4, paid_date=$5, payment_closing_date=$6, is_paid=$7, updated_at=$8 WHERE id=$9`
	_, err := r.q.ExecContext(ctx, query, s.EmployeeID, s.Amount, s.PenaltyAmount, s.AmountPaid, s.PaidDate, s.PaymentClosingDate, s.IsPaid, time.Now(), s.ID)
	return err
}

const dueScheduleColumns = `s.id, s.rental_id, s.employee_id, s.due_date, s.payment_date, s.amount, s.penalty_amount, s.amount_paid, s.paid_date, s.payment_closing_date, s.is_paid, s.created_at, s.updated_at,
	r.rent_type, r.fullname, r.phone, r.currency, c.name`

func (r *scheduleRepository) ListDueOn(ctx context.Context, day time.Time) ([]domain.DueSchedule, error) {
	query := `SELECT ` + dueScheduleColumns + `
	          FROM payment_schedules s
	          JOIN rentals r ON r.id = s.rental_id
	          JOIN cars c ON c.id = r.car_id
	          WHERE s.is_paid = false AND r.is_active = true AND s.payment_date = $1
	          ORDER BY s.due_date`
	return r.listDue(ctx, query, day.Format("2006-01-02"))
}

func (r *scheduleRepository) ListByPaymentDateRange(ctx context.Context, rentType domain.RentType, from, to time.Time) ([]domain.DueSchedule, error) {
	query := `SELECT ` + dueScheduleColumns + `
	          FROM payment_schedules s
	          JOIN rentals r ON r.id = s.rental_id
	          JOIN cars c ON c.id = r.car_id
	          WHERE s.is_paid = false AND r.is_active = true AND r.rent_type = $1
	            AND s.payment_date BETWEEN $2 AND $3
	          ORDER BY s.payment_date, s.due_date`
	return r.listDue(ctx, query, rentType, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func (r *scheduleRepository) listDue(ctx context.Context, query string, args ...any) ([]domain.DueSchedule, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []domain.DueSchedule
	for rows.Next() {
		var d domain.DueSchedule
		err := rows.Scan(&d.ID, &d.RentalID, &d.EmployeeID, &d.DueDate, &d.PaymentDate, &d.Amount,
			&d.PenaltyAmount, &d.AmountPaid, &d.PaidDate, &d.PaymentClosingDate, &d.IsPaid,
			&d.CreatedAt, &d.UpdatedAt, &d.RentType, &d.FullName, &d.Phone, &d.Currency, &d.CarName)
		if err != nil {
			return nil, err
		}
		due = append(due, d)
	}
	return due, rows.Err()
}

func (r *scheduleRepository) list(ctx context.Context, query string, args ...any) ([]domain.PaymentSchedule, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []domain.PaymentSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *s)
	}
	return schedules, rows.Err()
}
