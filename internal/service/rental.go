package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/event"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/rentmath"
	"carrental-backend/internal/repository"
)

type rentalService struct {
	store  repository.Store
	engine *ScheduleEngine
	bus    *event.Bus
	now    func() time.Time
}

func NewRentalService(store repository.Store, engine *ScheduleEngine, bus *event.Bus) RentalService {
	return &rentalService{
		store:  store,
		engine: engine,
		bus:    bus,
		now:    time.Now,
	}
}

// mapNotFound converts the driver's empty-result error into the domain error
// surfaced to callers.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (s *rentalService) CreateRental(ctx context.Context, input CreateRentalInput) (*domain.Rental, error) {
	if err := validateRentalInput(input); err != nil {
		return nil, err
	}

	var rental *domain.Rental
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		car, err := tx.Cars().GetByIDForUpdate(ctx, input.CarID)
		if err != nil {
			return mapNotFound(err)
		}
		if car.Status != domain.CarStatusActive {
			return domain.ErrCarUnavailable
		}
		if err := tx.Cars().UpdateStatus(ctx, car.ID, domain.CarStatusRented, true); err != nil {
			return fmt.Errorf("mark car rented: %w", err)
		}

		start := s.now()
		rental = &domain.Rental{
			EmployeeID:           input.EmployeeID,
			CarID:                input.CarID,
			FullName:             input.FullName,
			Phone:                input.Phone,
			Passport:             input.Passport,
			RentType:             input.RentType,
			Currency:             input.Currency,
			RentAmount:           input.RentAmount,
			RentPeriod:           input.RentPeriod,
			InitialPaymentAmount: input.InitialPaymentAmount,
			PenaltyAmount:        input.PenaltyAmount,
			StartDate:            start,
			EndDate:              rentmath.EndDate(start, input.RentType, input.RentPeriod),
		}
		if err := tx.Rentals().Create(ctx, rental); err != nil {
			return fmt.Errorf("create rental: %w", err)
		}

		_, err = s.engine.Generate(ctx, tx, rental)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Rental created", "rental_id", rental.ID, "car_id", rental.CarID, "rent_type", rental.RentType)
	return rental, nil
}

func validateRentalInput(input CreateRentalInput) error {
	if !domain.ValidRentType(input.RentType) {
		return fmt.Errorf("%w: unknown rent type %q", domain.ErrValidation, input.RentType)
	}
	if input.FullName == "" || input.Phone == "" {
		return fmt.Errorf("%w: renter name and phone are required", domain.ErrValidation)
	}
	if input.RentPeriod < 1 {
		return fmt.Errorf("%w: rent period must be at least 1", domain.ErrValidation)
	}
	if input.RentAmount.Sign() <= 0 {
		return fmt.Errorf("%w: rent amount must be positive", domain.ErrValidation)
	}
	if input.InitialPaymentAmount.Sign() < 0 {
		return fmt.Errorf("%w: initial payment cannot be negative", domain.ErrValidation)
	}
	if input.PenaltyAmount.Sign() < 0 {
		return fmt.Errorf("%w: penalty amount cannot be negative", domain.ErrValidation)
	}
	return nil
}

func (s *rentalService) RecordPayment(ctx context.Context, employeeID, rentalID int32, amount decimal.Decimal) (*domain.Payment, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", domain.ErrValidation)
	}

	var payment *domain.Payment
	var touched []domain.PaymentSchedule
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		rental, err := tx.Rentals().GetActiveByIDForUpdate(ctx, rentalID)
		if err != nil {
			return mapNotFound(err)
		}

		payment = &domain.Payment{
			EmployeeID: employeeID,
			RentalID:   rental.ID,
			Amount:     amount,
		}
		if err := tx.Payments().Create(ctx, payment); err != nil {
			return fmt.Errorf("record payment: %w", err)
		}

		touched, err = s.engine.Distribute(ctx, tx, rental, amount, employeeID)
		if err != nil {
			return err
		}
		return s.closeOutIfSettled(ctx, tx, rental)
	})
	if err != nil {
		return nil, err
	}

	s.publish(touched)
	logger.Info("Payment recorded", "rental_id", rentalID, "amount", amount.String(), "schedules_touched", len(touched))
	return payment, nil
}

func (s *rentalService) SettleSchedule(ctx context.Context, employeeID, scheduleID int32) (*domain.PaymentSchedule, error) {
	var sched *domain.PaymentSchedule
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		var err error
		sched, err = tx.Schedules().GetUnpaidByID(ctx, scheduleID)
		if err != nil {
			return mapNotFound(err)
		}
		rental, err := tx.Rentals().GetActiveByIDForUpdate(ctx, sched.RentalID)
		if err != nil {
			return mapNotFound(err)
		}

		if err := s.engine.SettleInFull(ctx, tx, rental, sched, employeeID); err != nil {
			return err
		}
		return s.closeOutIfSettled(ctx, tx, rental)
	})
	if err != nil {
		return nil, err
	}

	s.publish([]domain.PaymentSchedule{*sched})
	logger.Info("Schedule settled", "schedule_id", scheduleID, "employee_id", employeeID)
	return sched, nil
}

func (s *rentalService) CloseEarly(ctx context.Context, rentalID int32) error {
	var touched []domain.PaymentSchedule
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		rental, err := tx.Rentals().GetActiveByIDForUpdate(ctx, rentalID)
		if err != nil {
			return mapNotFound(err)
		}
		unpaid, err := tx.Schedules().ListUnpaidByRental(ctx, rental.ID)
		if err != nil {
			return fmt.Errorf("list unpaid schedules: %w", err)
		}

		now := s.now()
		for i := range unpaid {
			sched := &unpaid[i]
			// Freeze the installment: the unpaid remainder is forgiven.
			sched.Amount = sched.AmountPaid
			sched.PenaltyAmount = decimal.Zero
			sched.IsPaid = true
			sched.PaidDate = &now
			sched.PaymentClosingDate = &now
			if err := tx.Schedules().Update(ctx, sched); err != nil {
				return fmt.Errorf("freeze schedule %d: %w", sched.ID, err)
			}
		}
		touched = unpaid
		return s.closeOut(ctx, tx, rental)
	})
	if err != nil {
		return err
	}

	s.publish(touched)
	logger.Info("Rental closed early", "rental_id", rentalID, "schedules_frozen", len(touched))
	return nil
}

func (s *rentalService) Blacklist(ctx context.Context, rentalID int32) error {
	rental, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return mapNotFound(err)
	}
	if rental.IsActive {
		return fmt.Errorf("%w: rental %d is still active", domain.ErrInvalidState, rentalID)
	}
	if rental.BadRental {
		return fmt.Errorf("%w: rental %d is already blacklisted", domain.ErrInvalidState, rentalID)
	}
	return s.store.Rentals().SetBadRental(ctx, rentalID)
}

// closeOutIfSettled closes the rental when its last schedule has been paid,
// releasing or selling the car depending on the rent type.
func (s *rentalService) closeOutIfSettled(ctx context.Context, tx repository.Store, rental *domain.Rental) error {
	count, err := tx.Schedules().CountUnpaidByRental(ctx, rental.ID)
	if err != nil {
		return fmt.Errorf("count unpaid schedules: %w", err)
	}
	if count > 0 {
		return nil
	}
	return s.closeOut(ctx, tx, rental)
}

func (s *rentalService) closeOut(ctx context.Context, tx repository.Store, rental *domain.Rental) error {
	if err := tx.Rentals().Close(ctx, rental.ID, rentmath.DateOf(s.now())); err != nil {
		return fmt.Errorf("close rental: %w", err)
	}
	if rental.RentType == domain.RentTypeCredit {
		// A paid-off credit contract means the car changed hands.
		return tx.Cars().UpdateStatus(ctx, rental.CarID, domain.CarStatusSold, false)
	}
	return tx.Cars().UpdateStatus(ctx, rental.CarID, domain.CarStatusActive, true)
}

func (s *rentalService) publish(schedules []domain.PaymentSchedule) {
	if s.bus == nil {
		return
	}
	now := s.now()
	for _, sched := range schedules {
		s.bus.Publish(event.ScheduleUpdated{Schedule: sched, OccurredAt: now})
	}
}

func (s *rentalService) GetRental(ctx context.Context, rentalID int32) (*domain.Rental, []domain.PaymentSchedule, error) {
	rental, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}
	schedules, err := s.store.Schedules().ListByRental(ctx, rentalID)
	if err != nil {
		return nil, nil, err
	}
	return rental, schedules, nil
}

func (s *rentalService) ListActiveRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.store.Rentals().ListActive(ctx)
}

func (s *rentalService) ListClosedRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.store.Rentals().ListClosed(ctx)
}

func (s *rentalService) ListBlacklistedRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.store.Rentals().ListBlacklisted(ctx)
}

func (s *rentalService) ListPayments(ctx context.Context, rentalID int32) ([]domain.Payment, error) {
	if _, err := s.store.Rentals().GetByID(ctx, rentalID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.store.Payments().ListByRental(ctx, rentalID)
}
