package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

// CreateRentalInput carries the operator-entered contract terms.
type CreateRentalInput struct {
	EmployeeID           int32
	CarID                int32
	FullName             string
	Phone                string
	Passport             string
	RentType             domain.RentType
	Currency             string
	RentAmount           decimal.Decimal
	RentPeriod           int32
	InitialPaymentAmount decimal.Decimal
	PenaltyAmount        decimal.Decimal
}

type CarService interface {
	CreateCar(ctx context.Context, car *domain.Car) error
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	UpdateCar(ctx context.Context, car *domain.Car) error
	DeleteCar(ctx context.Context, id int32) error
	ActivateCar(ctx context.Context, id int32) error
	DeactivateCar(ctx context.Context, id int32) error
	ListCars(ctx context.Context) ([]domain.Car, error)
	ListActiveCars(ctx context.Context) ([]domain.Car, error)
	ListUnrepairedCars(ctx context.Context) ([]domain.Car, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, input CreateRentalInput) (*domain.Rental, error)
	RecordPayment(ctx context.Context, employeeID, rentalID int32, amount decimal.Decimal) (*domain.Payment, error)
	SettleSchedule(ctx context.Context, employeeID, scheduleID int32) (*domain.PaymentSchedule, error)
	CloseEarly(ctx context.Context, rentalID int32) error
	Blacklist(ctx context.Context, rentalID int32) error
	GetRental(ctx context.Context, rentalID int32) (*domain.Rental, []domain.PaymentSchedule, error)
	ListActiveRentals(ctx context.Context) ([]domain.Rental, error)
	ListClosedRentals(ctx context.Context) ([]domain.Rental, error)
	ListBlacklistedRentals(ctx context.Context) ([]domain.Rental, error)
	ListPayments(ctx context.Context, rentalID int32) ([]domain.Payment, error)
}

type ReportService interface {
	RentalTotals(ctx context.Context, rentalID int32) (*domain.RentalTotals, error)
	Dashboard(ctx context.Context, rentType domain.RentType, today time.Time) ([]domain.DashboardBucket, error)
	ContractSnapshot(ctx context.Context, rentalID int32) (*domain.ContractSnapshot, error)
}

// SmsSender delivers a fire-and-forget text message and returns the
// gateway's delivery id. Failures are logged by callers, never fatal.
type SmsSender interface {
	Send(ctx context.Context, phone, message string) (string, error)
}

// ContractRenderer produces a contract document from a resolved snapshot.
// The implementation lives outside the core; it receives data only.
type ContractRenderer interface {
	Render(ctx context.Context, snapshot *domain.ContractSnapshot) (string, error)
}
