package rentmath

import (
	"time"

	"carrental-backend/internal/domain"
)

// AddMonths adds n calendar months to t, clamping the day to the last day of
// the target month (Jan 31 + 1 month = Feb 28/29), unlike time.AddDate which
// rolls the overflow into the next month.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	month += time.Month(n)
	// Normalize month into [1,12] adjusting year.
	year += (int(month) - 1) / 12
	month = time.Month((int(month)-1)%12 + 1)
	if month < 1 {
		month += 12
		year--
	}
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February {
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			return 29
		}
		return 28
	}
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}

// DateOf truncates t to its calendar date, keeping the location.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole calendar days from a to b. Negative when b
// is before a.
func DaysBetween(a, b time.Time) int64 {
	return int64(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// normalizeRentHour pins t to one hour past the contract start hour, on the
// hour. A daily contract started at 14:37 is due back by 15:00.
func normalizeRentHour(t time.Time, startHour int) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, startHour+1, 0, 0, 0, t.Location())
}

// EndDate derives the contract end from the start, rent type and period.
// Daily contracts run period days, monthly and credit contracts run period
// calendar months; all are normalized to one hour past the start hour.
// The result is computed once at rental creation and never recomputed.
func EndDate(start time.Time, rentType domain.RentType, period int32) time.Time {
	var end time.Time
	if rentType == domain.RentTypeDaily {
		end = start.AddDate(0, 0, int(period))
	} else {
		end = AddMonths(start, int(period))
	}
	return normalizeRentHour(end, start.Hour())
}

// InstallmentDueDate returns the due date of the n-th installment (1-based)
// of a monthly or credit rental: n months after the start, hour-normalized
// like the contract end so the final installment coincides with EndDate.
func InstallmentDueDate(start time.Time, n int32) time.Time {
	return normalizeRentHour(AddMonths(start, int(n)), start.Hour())
}
