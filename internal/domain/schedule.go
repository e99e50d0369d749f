package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSchedule is one installment obligation within a rental. PenaltyAmount
// holds the penalty as of the last evaluation; it is recomputed from the
// overdue interval on every payment application, never accumulated. Once
// IsPaid is set the row is immutable except through an early-closure override.
type PaymentSchedule struct {
	ID       int32 `json:"id"`
	RentalID int32 `json:"rental_id"`
	// EmployeeID records the operator responsible for settlement; nil until
	// the schedule is settled.
	EmployeeID *int32    `json:"employee_id,omitempty"`
	DueDate    time.Time `json:"due_date"`
	// PaymentDate is the calendar date of DueDate, used for dashboard and
	// reminder bucketing.
	PaymentDate        time.Time       `json:"payment_date"`
	Amount             decimal.Decimal `json:"amount"`
	PenaltyAmount      decimal.Decimal `json:"penalty_amount"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	PaidDate           *time.Time      `json:"paid_date,omitempty"`
	PaymentClosingDate *time.Time      `json:"payment_closing_date,omitempty"`
	IsPaid             bool            `json:"is_paid"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// TotalAmount is the full obligation of the installment including the
// currently recorded penalty.
func (s *PaymentSchedule) TotalAmount() decimal.Decimal {
	return s.Amount.Add(s.PenaltyAmount)
}

// Outstanding is what remains to be paid against the currently recorded
// penalty. Negative values are possible only transiently when an early
// closure forgives debt.
func (s *PaymentSchedule) Outstanding() decimal.Decimal {
	return s.Amount.Add(s.PenaltyAmount).Sub(s.AmountPaid)
}

// DueSchedule is a schedule joined with the renter fields needed by the
// dashboard and the reminder batch.
type DueSchedule struct {
	PaymentSchedule
	RentType RentType `json:"rent_type"`
	FullName string   `json:"fullname"`
	Phone    string   `json:"phone"`
	Currency string   `json:"currency"`
	CarName  string   `json:"car_name"`
}
