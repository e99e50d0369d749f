package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentType string

const (
	RentTypeDaily   RentType = "daily"
	RentTypeMonthly RentType = "monthly"
	RentTypeCredit  RentType = "credit"
)

// Rental is a contract binding a renter to a car for a period under one of
// the three pricing modes. EndDate is derived once at creation from
// StartDate, RentType and RentPeriod and is never recomputed afterward.
type Rental struct {
	ID         int32    `json:"id"`
	EmployeeID int32    `json:"employee_id"`
	CarID      int32    `json:"car_id"`
	FullName   string   `json:"fullname"`
	Phone      string   `json:"phone"`
	Passport   string   `json:"passport"`
	RentType   RentType `json:"rent_type"`
	Currency   string   `json:"currency"`
	// RentAmount is the base price of a single installment: per day for
	// daily contracts, per month for monthly and credit contracts.
	RentAmount           decimal.Decimal `json:"rent_amount"`
	RentPeriod           int32           `json:"rent_period"`
	InitialPaymentAmount decimal.Decimal `json:"initial_payment_amount"`
	// PenaltyAmount is a flat surcharge per overdue unit: per hour for
	// daily contracts, per day for monthly. Credit contracts accrue no
	// penalty and ignore this field.
	PenaltyAmount decimal.Decimal `json:"penalty_amount"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	ClosingDate   *time.Time      `json:"closing_date,omitempty"`
	BadRental     bool            `json:"bad_rental"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func ValidRentType(s RentType) bool {
	switch s {
	case RentTypeDaily, RentTypeMonthly, RentTypeCredit:
		return true
	}
	return false
}
