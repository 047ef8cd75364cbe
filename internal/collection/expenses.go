package collection

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/princewidd/widhi-productivity-hub/internal/idgen"
	"github.com/princewidd/widhi-productivity-hub/internal/models"
	"github.com/princewidd/widhi-productivity-hub/internal/store"
)

// Period selects the time window for expense views. Weeks start on Sunday.
type Period string

const (
	PeriodAll       Period = "all"
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "this-week"
	PeriodThisMonth Period = "this-month"
	PeriodLastMonth Period = "last-month"
)

// Expenses manages the expense collection.
type Expenses struct {
	store store.Store
	items []models.Expense
}

// NewExpenses loads any previously persisted expenses from s.
func NewExpenses(s store.Store) *Expenses {
	e := &Expenses{store: s}
	s.Load(store.CollectionExpenses, &e.items)
	return e
}

// Create validates amount, category, and date, appends the expense, and
// persists. An empty description defaults to "<category> expense".
func (e *Expenses) Create(amount int64, category, date, description string) (models.Expense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return models.Expense{}, ErrEmptyField
	}
	if amount <= 0 {
		return models.Expense{}, ErrNonPositiveAmount
	}
	if _, err := models.ParseDate(date); err != nil {
		return models.Expense{}, ErrBadDate
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = fmt.Sprintf("%s expense", category)
	}

	expense := models.Expense{
		ID:          idgen.Next(),
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
	}
	e.items = append(e.items, expense)
	return expense, e.persist()
}

// Delete removes the expense with the given id and persists. An unknown
// id is a silent no-op.
func (e *Expenses) Delete(id int64) error {
	for i := range e.items {
		if e.items[i].ID == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return e.persist()
		}
	}
	return nil
}

// List returns expenses inside the period window (relative to now) and
// matching the category (empty string means all), sorted by date
// descending. The view is recomputed on every call.
func (e *Expenses) List(period Period, category string, now time.Time) []models.Expense {
	out := make([]models.Expense, 0, len(e.items))
	for _, exp := range e.items {
		if !inPeriod(exp.Date, period, now) {
			continue
		}
		if category != "" && exp.Category != category {
			continue
		}
		out = append(out, exp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Categories returns the distinct categories in insertion order, for
// filter option rebuilding.
func (e *Expenses) Categories() []string {
	seen := make(map[string]bool, len(e.items))
	var out []string
	for _, exp := range e.items {
		if !seen[exp.Category] {
			seen[exp.Category] = true
			out = append(out, exp.Category)
		}
	}
	return out
}

// Summary aggregates a filtered expense view.
type Summary struct {
	// Total is the sum of all matching amounts.
	Total int64
	// ByCategory maps category to its summed amount.
	ByCategory map[string]int64
	// TopCategory is the category with the largest total, empty when no
	// expenses match.
	TopCategory string
	// DailyAverage is Total spread over the days covered by the period.
	DailyAverage float64
}

// Summarize computes totals, the biggest category, and the daily average
// for the given view. The averaging window is 1 day for today (and all),
// 7 for this-week, the elapsed days of the month for this-month, and the
// full length of last month for last-month.
func (e *Expenses) Summarize(period Period, category string, now time.Time) Summary {
	sum := Summary{ByCategory: make(map[string]int64)}
	for _, exp := range e.List(period, category, now) {
		sum.Total += exp.Amount
		sum.ByCategory[exp.Category] += exp.Amount
	}
	for cat, total := range sum.ByCategory {
		if sum.TopCategory == "" || total > sum.ByCategory[sum.TopCategory] {
			sum.TopCategory = cat
		}
	}

	days := 1
	switch period {
	case PeriodThisWeek:
		days = 7
	case PeriodThisMonth:
		days = now.Day()
	case PeriodLastMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		days = firstOfMonth.AddDate(0, 0, -1).Day()
	}
	sum.DailyAverage = float64(sum.Total) / float64(days)
	return sum
}

// All returns a copy of the collection in insertion order.
func (e *Expenses) All() []models.Expense {
	out := make([]models.Expense, len(e.items))
	copy(out, e.items)
	return out
}

// Replace substitutes the whole collection verbatim and persists.
func (e *Expenses) Replace(items []models.Expense) error {
	e.items = append([]models.Expense(nil), items...)
	return e.persist()
}

// Adopt appends pre-built records and persists once.
func (e *Expenses) Adopt(items []models.Expense) error {
	e.items = append(e.items, items...)
	return e.persist()
}

func (e *Expenses) persist() error {
	return e.store.Save(store.CollectionExpenses, e.items)
}

// inPeriod reports whether the exchange-format date falls inside the
// period window ending at now. Dates that fail to parse only match the
// all period.
func inPeriod(date string, period Period, now time.Time) bool {
	if period == PeriodAll || period == "" {
		return true
	}
	d, err := models.ParseDate(date)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case PeriodToday:
		return d.Equal(today)
	case PeriodThisWeek:
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		return !d.Before(weekStart)
	case PeriodThisMonth:
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return !d.Before(monthStart)
	case PeriodLastMonth:
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		lastStart := monthStart.AddDate(0, -1, 0)
		lastEnd := monthStart.AddDate(0, 0, -1)
		return !d.Before(lastStart) && !d.After(lastEnd)
	default:
		return true
	}
}
