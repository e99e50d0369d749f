package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleStatus is a schedule projected with its penalty as of the
// evaluation time, for read-only reporting.
type ScheduleStatus struct {
	PaymentSchedule
	PenaltyNow  decimal.Decimal `json:"penalty_now"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// RentalTotals aggregates the financial state of one rental.
type RentalTotals struct {
	RentalID    int32            `json:"rental_id"`
	Currency    string           `json:"currency"`
	Outstanding decimal.Decimal  `json:"outstanding"`
	PaidToDate  decimal.Decimal  `json:"paid_to_date"`
	Schedules   []ScheduleStatus `json:"schedules"`
}

// DashboardBucket groups the due schedules of one calendar day (daily
// rentals) or one calendar month (monthly and credit rentals).
type DashboardBucket struct {
	Date      time.Time     `json:"date"`
	Schedules []DueSchedule `json:"payment_schedules"`
}

// ContractSnapshot is the fully-resolved read model handed to the external
// contract renderer. The core supplies data only; formatting stays outside.
type ContractSnapshot struct {
	Rental    Rental            `json:"rental"`
	Car       Car               `json:"car"`
	Schedules []PaymentSchedule `json:"payment_schedules"`
	Totals    RentalTotals      `json:"totals"`
}
