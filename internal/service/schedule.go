package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/rentmath"
	"carrental-backend/internal/repository"
)

// ScheduleEngine owns installment generation, penalty evaluation and payment
// application against the ordered schedules of one rental. All methods
// operate on the repository.Store they are handed, so the caller decides the
// transaction boundary.
type ScheduleEngine struct {
	now func() time.Time
}

func NewScheduleEngine() *ScheduleEngine {
	return &ScheduleEngine{now: time.Now}
}

// Generate creates the installment rows for a freshly created rental.
// Daily contracts get a single lump-sum installment due at the contract end;
// monthly and credit contracts get one installment per month. Generation is
// idempotent: it refuses to run twice for the same rental.
func (e *ScheduleEngine) Generate(ctx context.Context, store repository.Store, rental *domain.Rental) ([]domain.PaymentSchedule, error) {
	exists, err := store.Schedules().ExistsForRental(ctx, rental.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing schedules: %w", err)
	}
	if exists {
		return nil, nil
	}

	var schedules []domain.PaymentSchedule
	if rental.RentType == domain.RentTypeDaily {
		schedules = []domain.PaymentSchedule{{
			RentalID:      rental.ID,
			DueDate:       rental.EndDate,
			PaymentDate:   rentmath.DateOf(rental.EndDate),
			Amount:        rental.RentAmount.Mul(decimal.NewFromInt32(rental.RentPeriod)),
			PenaltyAmount: decimal.Zero,
			AmountPaid:    decimal.Zero,
		}}
	} else {
		for i := int32(1); i <= rental.RentPeriod; i++ {
			due := rentmath.InstallmentDueDate(rental.StartDate, i)
			schedules = append(schedules, domain.PaymentSchedule{
				RentalID:      rental.ID,
				DueDate:       due,
				PaymentDate:   rentmath.DateOf(due),
				Amount:        rental.RentAmount,
				PenaltyAmount: decimal.Zero,
				AmountPaid:    decimal.Zero,
			})
		}
	}

	if err := store.Schedules().CreateBatch(ctx, schedules); err != nil {
		return nil, fmt.Errorf("create schedules: %w", err)
	}
	return schedules, nil
}

// Apply evaluates the schedule's penalty as of now and applies incoming funds
// against it. It returns the excess left over after the schedule is settled;
// zero when the funds were fully absorbed. A schedule whose outstanding total
// is already zero or negative is treated as settled and the whole incoming
// amount passes through as excess.
func (e *ScheduleEngine) Apply(ctx context.Context, store repository.Store, rental *domain.Rental, sched *domain.PaymentSchedule, incoming decimal.Decimal, employeeID int32) (decimal.Decimal, error) {
	now := e.now()
	sched.PenaltyAmount = rentmath.Penalty(rental, sched, now)
	totalDue := sched.Amount.Add(sched.PenaltyAmount).Sub(sched.AmountPaid)

	var excess decimal.Decimal
	switch {
	case totalDue.Sign() <= 0:
		e.settle(sched, employeeID, now)
		excess = incoming
	case incoming.Cmp(totalDue) >= 0:
		sched.AmountPaid = sched.AmountPaid.Add(totalDue)
		e.settle(sched, employeeID, now)
		excess = incoming.Sub(totalDue)
	default:
		sched.AmountPaid = sched.AmountPaid.Add(incoming)
		sched.PaidDate = &now
		excess = decimal.Zero
	}

	if err := store.Schedules().Update(ctx, sched); err != nil {
		return decimal.Zero, fmt.Errorf("update schedule %d: %w", sched.ID, err)
	}
	return excess, nil
}

// SettleInFull pays the schedule's whole outstanding total, penalty included,
// recording the employee. Penalty evaluation and settlement share one
// timestamp, so the total can never drift between computing and paying it.
func (e *ScheduleEngine) SettleInFull(ctx context.Context, store repository.Store, rental *domain.Rental, sched *domain.PaymentSchedule, employeeID int32) error {
	now := e.now()
	sched.PenaltyAmount = rentmath.Penalty(rental, sched, now)
	sched.AmountPaid = sched.Amount.Add(sched.PenaltyAmount)
	e.settle(sched, employeeID, now)

	if err := store.Schedules().Update(ctx, sched); err != nil {
		return fmt.Errorf("update schedule %d: %w", sched.ID, err)
	}
	return nil
}

func (e *ScheduleEngine) settle(sched *domain.PaymentSchedule, employeeID int32, now time.Time) {
	sched.IsPaid = true
	sched.PaidDate = &now
	sched.PaymentClosingDate = &now
	sched.EmployeeID = &employeeID
}

// Distribute applies amount against the rental's unpaid schedules, oldest
// due date first, carrying the excess of each settled installment to the
// next. Whatever exceeds the rental's total debt is dropped, not credited.
// The loop is bounded by the number of unpaid schedules. Returns the
// schedules it touched.
func (e *ScheduleEngine) Distribute(ctx context.Context, store repository.Store, rental *domain.Rental, amount decimal.Decimal, employeeID int32) ([]domain.PaymentSchedule, error) {
	unpaid, err := store.Schedules().ListUnpaidByRental(ctx, rental.ID)
	if err != nil {
		return nil, fmt.Errorf("list unpaid schedules: %w", err)
	}

	remaining := amount
	var touched []domain.PaymentSchedule
	for i := range unpaid {
		if remaining.Sign() <= 0 {
			break
		}
		remaining, err = e.Apply(ctx, store, rental, &unpaid[i], remaining, employeeID)
		if err != nil {
			return nil, err
		}
		touched = append(touched, unpaid[i])
	}
	return touched, nil
}
