// Package budget implements the daily budget calculations.
//
// All functions are pure: they operate on a period, a list of spending
// entries and a point in time, and never touch the database. With an empty
// ledger or a zero budget every figure degrades to zero, there are no error
// conditions.
package budget

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Period is one budgeting interval. End is inclusive.
type Period struct {
	Total decimal.Decimal
	Start time.Time
	End   time.Time
}

// Entry is a single dated spend in the ledger.
type Entry struct {
	Amount decimal.Decimal
	Date   time.Time
}

// Summary contains all derived figures for a period at a point in time.
type Summary struct {
	DailyAllowance    decimal.Decimal `json:"dailyBudget" example:"300"`        // The allowance per day of the period
	SpentToday        decimal.Decimal `json:"spentToday" example:"170"`         // Sum of all entries on the current calendar day
	Remaining         decimal.Decimal `json:"remaining" example:"130"`          // Allowance left for today, never negative
	PercentUsed       decimal.Decimal `json:"percentUsed" example:"56.67"`      // Share of today's allowance spent, capped at 100
	TotalSpent        decimal.Decimal `json:"totalSpent" example:"170"`         // Sum of all entries in the ledger
	AverageDailySpend decimal.Decimal `json:"averageDailySpend" example:"170"`  // Total spent divided by elapsed days
	DaysElapsed       int64           `json:"daysElapsed" example:"1"`          // Days since the period started, at least 1
	DaysRemaining     int64           `json:"daysRemaining" example:"9"`        // Days until the period ends, never negative
	Overspending      bool            `json:"isOverspending" example:"false"`   // See Overspending
	AboveAverage      bool            `json:"isAboveAverage" example:"false"`   // Today's spend exceeds the daily average
}

const day = 24 * time.Hour

// InclusiveDays returns the number of days a period covers, counting both the
// start and the end date. It is floored at one day so that allowances never
// divide by zero. An end before the start counts as a single day.
func InclusiveDays(start, end time.Time) int64 {
	if end.Before(start) {
		end = start
	}

	days := int64(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if days < 1 {
		days = 1
	}

	return days
}

// DailyAllowance returns the allowance per day for a period, rounded to two
// decimal places. The rounded figure is the canonical one: it is what gets
// stored and what all other calculations use.
func DailyAllowance(total decimal.Decimal, start, end time.Time) decimal.Decimal {
	return total.Div(decimal.NewFromInt(InclusiveDays(start, end))).Round(2)
}

// SpentOn sums all entries that fall on the same calendar day as the given
// time. Days are compared by year, month and day in the reference time's
// location, not as 24 hour windows.
func SpentOn(entries []Entry, t time.Time) decimal.Decimal {
	sum := decimal.Zero

	for _, entry := range entries {
		if sameDay(entry.Date, t) {
			sum = sum.Add(entry.Amount)
		}
	}

	return sum
}

// TotalSpent sums all entries in the ledger.
func TotalSpent(entries []Entry) decimal.Decimal {
	sum := decimal.Zero

	for _, entry := range entries {
		sum = sum.Add(entry.Amount)
	}

	return sum
}

// Remaining returns today's allowance minus today's spend, clamped at zero.
// Overspending is signaled separately, never as a negative remainder.
func Remaining(allowance, spentToday decimal.Decimal) decimal.Decimal {
	remaining := allowance.Sub(spentToday)
	if remaining.IsNegative() {
		return decimal.Zero
	}

	return remaining
}

// PercentUsed returns the share of today's allowance already spent, capped at
// 100. A zero allowance always reports zero.
func PercentUsed(allowance, spentToday decimal.Decimal) decimal.Decimal {
	if !allowance.IsPositive() {
		return decimal.Zero
	}

	percent := spentToday.Div(allowance).Mul(decimal.NewFromInt(100)).Round(2)
	if percent.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}

	return percent
}

// DaysElapsed returns the number of days since the period started, at
// least one.
func DaysElapsed(start, now time.Time) int64 {
	elapsed := int64(math.Ceil(now.Sub(start).Hours() / 24))
	if elapsed < 1 {
		elapsed = 1
	}

	return elapsed
}

// DaysRemaining returns the number of days until the period ends, never
// negative.
func DaysRemaining(end, now time.Time) int64 {
	remaining := int64(math.Ceil(end.Sub(now).Hours() / 24))
	if remaining < 0 {
		remaining = 0
	}

	return remaining
}

// AverageDailySpend returns the total spent divided by the elapsed days.
func AverageDailySpend(totalSpent decimal.Decimal, daysElapsed int64) decimal.Decimal {
	if daysElapsed < 1 {
		daysElapsed = 1
	}

	return totalSpent.Div(decimal.NewFromInt(daysElapsed)).Round(2)
}

// Overspending compares today's spend against the average daily spend scaled
// back up by the elapsed days.
//
// The scaled average is exactly the total spent, so the comparison uses the
// total directly. Multiplying a rounded or truncated quotient back up would
// flip the flag when all spending happened today (100 spent on day 3 gives a
// rounded 33.33 average, and 100 > 99.99). AboveAverage is the day-over-day
// comparison.
func Overspending(spentToday, totalSpent decimal.Decimal) bool {
	return spentToday.GreaterThan(totalSpent)
}

// AboveAverage reports whether today's spend exceeds the average daily spend.
func AboveAverage(spentToday, averageDailySpend decimal.Decimal) bool {
	return spentToday.GreaterThan(averageDailySpend)
}

// Compute derives all figures for a period and its ledger at a point in time.
func Compute(period Period, entries []Entry, now time.Time) Summary {
	allowance := DailyAllowance(period.Total, period.Start, period.End)
	spentToday := SpentOn(entries, now)
	totalSpent := TotalSpent(entries)
	daysElapsed := DaysElapsed(period.Start, now)
	average := AverageDailySpend(totalSpent, daysElapsed)

	return Summary{
		DailyAllowance:    allowance,
		SpentToday:        spentToday,
		Remaining:         Remaining(allowance, spentToday),
		PercentUsed:       PercentUsed(allowance, spentToday),
		TotalSpent:        totalSpent,
		AverageDailySpend: average,
		DaysElapsed:       daysElapsed,
		DaysRemaining:     DaysRemaining(period.End, now),
		Overspending:      Overspending(spentToday, totalSpent),
		AboveAverage:      AboveAverage(spentToday, average),
	}
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
