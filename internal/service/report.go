package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/rentmath"
	"carrental-backend/internal/repository"
)

type reportService struct {
	store repository.Store
	now   func() time.Time
}

func NewReportService(store repository.Store) ReportService {
	return &reportService{store: store, now: time.Now}
}

// RentalTotals projects the financial state of one rental with penalties
// evaluated as of now. Read-only: stored penalty fields are not touched.
func (s *reportService) RentalTotals(ctx context.Context, rentalID int32) (*domain.RentalTotals, error) {
	rental, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	schedules, err := s.store.Schedules().ListByRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	totals := &domain.RentalTotals{
		RentalID:    rentalID,
		Currency:    rental.Currency,
		Outstanding: decimal.Zero,
		PaidToDate:  rental.InitialPaymentAmount,
	}
	for _, sched := range schedules {
		status := domain.ScheduleStatus{PaymentSchedule: sched}
		status.PenaltyNow = rentmath.Penalty(rental, &sched, now)
		status.Outstanding = sched.Amount.Add(status.PenaltyNow).Sub(sched.AmountPaid)
		totals.PaidToDate = totals.PaidToDate.Add(sched.AmountPaid)
		if !sched.IsPaid {
			totals.Outstanding = totals.Outstanding.Add(status.Outstanding)
		}
		totals.Schedules = append(totals.Schedules, status)
	}
	return totals, nil
}

// Dashboard buckets upcoming unpaid schedules: daily rentals by calendar day
// for today and the next two days, monthly and credit rentals by calendar
// month for the current and the next two months.
func (s *reportService) Dashboard(ctx context.Context, rentType domain.RentType, today time.Time) ([]domain.DashboardBucket, error) {
	today = rentmath.DateOf(today)

	if rentType == domain.RentTypeDaily {
		due, err := s.store.Schedules().ListByPaymentDateRange(ctx, rentType, today, today.AddDate(0, 0, 2))
		if err != nil {
			return nil, err
		}
		buckets := make([]domain.DashboardBucket, 3)
		for i := range buckets {
			buckets[i].Date = today.AddDate(0, 0, i)
		}
		for _, d := range due {
			idx := int(rentmath.DaysBetween(today, d.PaymentDate))
			if idx >= 0 && idx < len(buckets) {
				buckets[idx].Schedules = append(buckets[idx].Schedules, d)
			}
		}
		return buckets, nil
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	rangeEnd := rentmath.AddMonths(monthStart, 3).AddDate(0, 0, -1)
	due, err := s.store.Schedules().ListByPaymentDateRange(ctx, rentType, monthStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	buckets := make([]domain.DashboardBucket, 3)
	for i := range buckets {
		buckets[i].Date = rentmath.AddMonths(monthStart, i)
	}
	for _, d := range due {
		for i := len(buckets) - 1; i >= 0; i-- {
			if !d.PaymentDate.Before(buckets[i].Date) {
				buckets[i].Schedules = append(buckets[i].Schedules, d)
				break
			}
		}
	}
	return buckets, nil
}

// ContractSnapshot assembles the read model the external document renderer
// consumes: the rental, its car, the full schedule list and the totals.
func (s *reportService) ContractSnapshot(ctx context.Context, rentalID int32) (*domain.ContractSnapshot, error) {
	rental, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	car, err := s.store.Cars().GetByID(ctx, rental.CarID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	totals, err := s.RentalTotals(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	schedules, err := s.store.Schedules().ListByRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	return &domain.ContractSnapshot{
		Rental:    *rental,
		Car:       *car,
		Schedules: schedules,
		Totals:    *totals,
	}, nil
}
