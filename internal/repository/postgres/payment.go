package postgres

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type paymentRepository struct {
	q Querier
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (employee_id, rental_id, amount, created_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	now := time.Now()
	p.CreatedAt = now
	return r.q.QueryRowContext(ctx, query, p.EmployeeID, p.RentalID, p.Amount, now).Scan(&p.ID)
}

func (r *paymentRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error) {
	query := `SELECT id, employee_id, rental_id, amount, created_at FROM payments WHERE rental_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.RentalID, &p.Amount, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
