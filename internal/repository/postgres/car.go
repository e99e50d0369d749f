package postgres

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type carRepository struct {
	q Querier
}

const carColumns = `id, name, car_number, car_year, COALESCE(information, ''), tech_passport_number, fuel_type, status, is_active, created_at, updated_at`

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (name, car_number, car_year, information, tech_passport_number, fuel_type, status, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, true, $8, $8) RETURNING id`
	now := time.Now()
	c.IsActive = true
	c.CreatedAt = now
	c.UpdatedAt = now
	return r.q.QueryRowContext(ctx, query, c.Name, c.CarNumber, c.CarYear, c.Information, c.TechPassportNumber, c.FuelType, c.Status, now).Scan(&c.ID)
}

func scanCar(row interface{ Scan(...any) error }) (*domain.Car, error) {
	c := &domain.Car{}
	err := row.Scan(&c.ID, &c.Name, &c.CarNumber, &c.CarYear, &c.Information, &c.TechPassportNumber, &c.FuelType, &c.Status, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1 AND is_active = true`
	return scanCar(r.q.QueryRowContext(ctx, query, id))
}

func (r *carRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1 AND is_active = true FOR UPDATE`
	return scanCar(r.q.QueryRowContext(ctx, query, id))
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET name=$1, car_number=$2, car_year=$3, information=$4, tech_passport_number=$5, fuel_type=$6, status=$7, updated_at=$8 WHERE id=$9`
	_, err := r.q.ExecContext(ctx, query, c.Name, c.CarNumber, c.CarYear, c.Information, c.TechPassportNumber, c.FuelType, c.Status, time.Now(), c.ID)
	return err
}

func (r *carRepository) UpdateStatus(ctx context.Context, id int32, status domain.CarStatus, isActive bool) error {
	query := `UPDATE cars SET status=$1, is_active=$2, updated_at=$3 WHERE id=$4`
	_, err := r.q.ExecContext(ctx, query, status, isActive, time.Now(), id)
	return err
}

func (r *carRepository) SoftDelete(ctx context.Context, id int32) error {
	query := `UPDATE cars SET is_active=false, updated_at=$1 WHERE id=$2`
	_, err := r.q.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE is_active = true ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *carRepository) ListByStatus(ctx context.Context, status domain.CarStatus) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE is_active = true AND status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, status)
}

func (r *carRepository) list(ctx context.Context, query string, args ...any) ([]domain.Car, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *c)
	}
	return cars, rows.Err()
}
