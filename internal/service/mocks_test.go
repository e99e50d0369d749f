package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) UpdateStatus(ctx context.Context, id int32, status domain.CarStatus, isActive bool) error {
	args := m.Called(ctx, id, status, isActive)
	return args.Error(0)
}
func (m *MockCarRepo) SoftDelete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) ListByStatus(ctx context.Context, status domain.CarStatus) ([]domain.Car, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Car), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetActiveByIDForUpdate(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Close(ctx context.Context, id int32, closingDate time.Time) error {
	args := m.Called(ctx, id, closingDate)
	return args.Error(0)
}
func (m *MockRentalRepo) SetBadRental(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) ListActive(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListClosed(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListBlacklisted(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockScheduleRepo
type MockScheduleRepo struct {
	mock.Mock
}

func (m *MockScheduleRepo) CreateBatch(ctx context.Context, schedules []domain.PaymentSchedule) error {
	args := m.Called(ctx, schedules)
	return args.Error(0)
}
func (m *MockScheduleRepo) ExistsForRental(ctx context.Context, rentalID int32) (bool, error) {
	args := m.Called(ctx, rentalID)
	return args.Bool(0), args.Error(1)
}
func (m *MockScheduleRepo) GetUnpaidByID(ctx context.Context, id int32) (*domain.PaymentSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSchedule), args.Error(1)
}
func (m *MockScheduleRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.PaymentSchedule, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.PaymentSchedule), args.Error(1)
}
func (m *MockScheduleRepo) ListUnpaidByRental(ctx context.Context, rentalID int32) ([]domain.PaymentSchedule, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.PaymentSchedule), args.Error(1)
}
func (m *MockScheduleRepo) CountUnpaidByRental(ctx context.Context, rentalID int32) (int32, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockScheduleRepo) Update(ctx context.Context, sched *domain.PaymentSchedule) error {
	args := m.Called(ctx, sched)
	return args.Error(0)
}
func (m *MockScheduleRepo) ListDueOn(ctx context.Context, day time.Time) ([]domain.DueSchedule, error) {
	args := m.Called(ctx, day)
	return args.Get(0).([]domain.DueSchedule), args.Error(1)
}
func (m *MockScheduleRepo) ListByPaymentDateRange(ctx context.Context, rentType domain.RentType, from, to time.Time) ([]domain.DueSchedule, error) {
	args := m.Called(ctx, rentType, from, to)
	return args.Get(0).([]domain.DueSchedule), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// mockStore bundles the mock repositories. WithinTx runs the callback against
// the same store, so service tests see the exact repository calls a real
// transaction would issue.
type mockStore struct {
	cars      *MockCarRepo
	rentals   *MockRentalRepo
	schedules *MockScheduleRepo
	payments  *MockPaymentRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		cars:      &MockCarRepo{},
		rentals:   &MockRentalRepo{},
		schedules: &MockScheduleRepo{},
		payments:  &MockPaymentRepo{},
	}
}

func (s *mockStore) Cars() repository.CarRepository           { return s.cars }
func (s *mockStore) Rentals() repository.RentalRepository     { return s.rentals }
func (s *mockStore) Schedules() repository.ScheduleRepository { return s.schedules }
func (s *mockStore) Payments() repository.PaymentRepository   { return s.payments }

func (s *mockStore) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

func (s *mockStore) AssertExpectations(t mock.TestingT) {
	s.cars.AssertExpectations(t)
	s.rentals.AssertExpectations(t)
	s.schedules.AssertExpectations(t)
	s.payments.AssertExpectations(t)
}
