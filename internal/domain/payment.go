package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an append-only ledger line: an amount of money recorded against
// a rental at a point in time, independent of how many schedules the funds
// ended up spanning. Payments are never mutated or deleted.
type Payment struct {
	ID         int32           `json:"id"`
	EmployeeID int32           `json:"employee_id"`
	RentalID   int32           `json:"rental_id"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}
