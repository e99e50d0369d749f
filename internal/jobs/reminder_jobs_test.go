package jobs

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DueSchedule), args.Error(1)
}
func (m *MockScheduleRepo) ListByPaymentDateRange(ctx context.Context, rentType domain.RentType, from, to time.Time) ([]domain.DueSchedule, error) {
	args := m.Called(ctx, rentType, from, to)
	return args.Get(0).([]domain.DueSchedule), args.Error(1)
}

// mockStore exposes only the schedule repository; the reminder batch touches
// nothing else.
type mockStore struct {
	schedules *MockScheduleRepo
}

func (s *mockStore) Cars() repository.CarRepository           { return nil }
func (s *mockStore) Rentals() repository.RentalRepository     { return nil }
func (s *mockStore) Schedules() repository.ScheduleRepository { return s.schedules }
func (s *mockStore) Payments() repository.PaymentRepository   { return nil }
func (s *mockStore) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

// MockSmsSender
type MockSmsSender struct {
	mock.Mock
}

func (m *MockSmsSender) Send(ctx context.Context, phone, message string) (string, error) {
	args := m.Called(ctx, phone, message)
	return args.String(0), args.Error(1)
}

func reminderConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SMS.Locale = "en"
	return cfg
}

func dueReminder(id int32, fullname, phone string, amount int64, due time.Time) domain.DueSchedule {
	return domain.DueSchedule{
		PaymentSchedule: domain.PaymentSchedule{
			ID:          id,
			RentalID:    1,
			DueDate:     due,
			PaymentDate: due.Truncate(24 * time.Hour),
			Amount:      decimal.NewFromInt(amount),
		},
		RentType: domain.RentTypeMonthly,
		FullName: fullname,
		Phone:    phone,
		Currency: "UZS",
		CarName:  "Chevrolet Cobalt",
	}
}

func TestJobRunner_SendPaymentReminders(t *testing.T) {
	t.Run("SendsOneReminderPerDueSchedule", func(t *testing.T) {
		schedules := &MockScheduleRepo{}
		sms := &MockSmsSender{}
		jr := NewJobRunner(&mockStore{schedules: schedules}, sms, reminderConfig())

		due := time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)
		schedules.On("ListDueOn", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]domain.DueSchedule{
				dueReminder(5, "Anvar Toshmatov", "+998901234567", 500000, due),
				dueReminder(6, "Bekzod Karimov", "+998907654321", 1200000, due),
			}, nil)

		wantFirst := fmt.Sprintf(
			"Xurmatli Anvar Toshmatov.\nSiz 500,000 UZS miqdoridagi to'lovingizni %s gacha to'lanishi kerak.",
			due.Format("02-01-2006 15:04"),
		)
		sms.On("Send", mock.Anything, "+998901234567", wantFirst).Return("msg-1", nil)
		sms.On("Send", mock.Anything, "+998907654321", mock.AnythingOfType("string")).Return("msg-2", nil)

		jr.SendPaymentReminders()

		sms.AssertExpectations(t)
		schedules.AssertExpectations(t)
	})

	t.Run("ContinuesAfterSendFailure", func(t *testing.T) {
		schedules := &MockScheduleRepo{}
		sms := &MockSmsSender{}
		jr := NewJobRunner(&mockStore{schedules: schedules}, sms, reminderConfig())

		due := time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)
		schedules.On("ListDueOn", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]domain.DueSchedule{
				dueReminder(5, "Anvar Toshmatov", "+998901234567", 500000, due),
				dueReminder(6, "Bekzod Karimov", "+998907654321", 1200000, due),
			}, nil)

		sms.On("Send", mock.Anything, "+998901234567", mock.AnythingOfType("string")).
			Return("", errors.New("gateway timeout"))
		sms.On("Send", mock.Anything, "+998907654321", mock.AnythingOfType("string")).
			Return("msg-2", nil)

		jr.SendPaymentReminders()

		// The failed send must not abort the batch.
		sms.AssertNumberOfCalls(t, "Send", 2)
		sms.AssertExpectations(t)
	})

	t.Run("QueryFailureSendsNothing", func(t *testing.T) {
		schedules := &MockScheduleRepo{}
		sms := &MockSmsSender{}
		jr := NewJobRunner(&mockStore{schedules: schedules}, sms, reminderConfig())

		schedules.On("ListDueOn", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(nil, errors.New("connection refused"))

		jr.SendPaymentReminders()

		sms.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}
