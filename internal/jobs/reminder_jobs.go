package jobs

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/format"
	"carrental-backend/internal/logger"
)

// SendPaymentReminders sends an SMS to every renter with an unpaid installment
// due today. Failures are logged per schedule and never abort the batch.
func (jr *JobRunner) SendPaymentReminders() {
	jr.runWithRecovery("SendPaymentReminders", func() {
		ctx := context.Background()
		today := time.Now().UTC()

		due, err := jr.store.Schedules().ListDueOn(ctx, today)
		if err != nil {
			logger.Error("Failed to query due schedules", "error", err)
			return
		}

		locale := jr.config.SMS.Locale
		count := 0
		for _, s := range due {
			amount := format.Currency(s.Amount, locale)
			body := fmt.Sprintf(
				"Xurmatli %s.\nSiz %s %s miqdoridagi to'lovingizni %s gacha to'lanishi kerak.",
				s.FullName, amount, s.Currency, s.DueDate.Format("02-01-2006 15:04"),
			)

			messageID, err := jr.sms.Send(ctx, s.Phone, body)
			if err != nil {
				logger.Error("Failed to send payment reminder",
					"schedule_id", s.ID,
					"rental_id", s.RentalID,
					"phone", s.Phone,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent payment reminder",
				"schedule_id", s.ID,
				"rental_id", s.RentalID,
				"message_id", messageID)
		}

		logger.Info("Payment reminders sent", "count", count, "due", len(due))
	})
}
