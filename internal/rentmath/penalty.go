package rentmath

import (
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

// Penalty computes the late surcharge of a schedule as of now, using the
// rental's flat penalty rate: per whole overdue hour for daily contracts,
// per whole overdue day for monthly ones. Credit contracts never accrue a
// penalty, and a settled schedule's penalty is frozen at zero.
//
// The result reflects the current overdue state only; callers overwrite the
// schedule's stored penalty with it rather than adding to it.
func Penalty(rental *domain.Rental, sched *domain.PaymentSchedule, now time.Time) decimal.Decimal {
	if sched.IsPaid {
		return decimal.Zero
	}
	if rental.RentType == domain.RentTypeCredit {
		return decimal.Zero
	}
	overdue := now.Sub(sched.DueDate)
	if overdue <= 0 {
		return decimal.Zero
	}
	switch rental.RentType {
	case domain.RentTypeMonthly:
		days := DaysBetween(sched.PaymentDate, now)
		if days <= 0 {
			return decimal.Zero
		}
		return rental.PenaltyAmount.Mul(decimal.NewFromInt(days))
	default: // daily
		hours := int64(overdue / time.Hour)
		if hours <= 0 {
			return decimal.Zero
		}
		return rental.PenaltyAmount.Mul(decimal.NewFromInt(hours))
	}
}
