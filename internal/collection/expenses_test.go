package collection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princewidd/widhi-productivity-hub/internal/collection"
)

// Wednesday 2025-03-12.
var wednesday = time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

func seedExpenses(t *testing.T) *collection.Expenses {
	t.Helper()
	expenses := collection.NewExpenses(newMemStore())
	seed := []struct {
		amount   int64
		category string
		date     string
	}{
		{15000, "food", "2025-03-12"},       // today
		{8000, "transport", "2025-03-11"},   // yesterday, same week
		{120000, "education", "2025-03-03"}, // this month, previous week
		{40000, "food", "2025-02-20"},       // last month
		{99000, "fun", "2024-12-31"},        // older
	}
	for _, s := range seed {
		_, err := expenses.Create(s.amount, s.category, s.date, "")
		require.NoError(t, err)
	}
	return expenses
}

func TestExpenses_CreateValidation(t *testing.T) {
	expenses := collection.NewExpenses(newMemStore())

	_, err := expenses.Create(0, "food", "2025-01-01", "")
	assert.ErrorIs(t, err, collection.ErrNonPositiveAmount)
	_, err = expenses.Create(-5, "food", "2025-01-01", "")
	assert.ErrorIs(t, err, collection.ErrNonPositiveAmount)
	_, err = expenses.Create(100, "", "2025-01-01", "")
	assert.ErrorIs(t, err, collection.ErrEmptyField)
	_, err = expenses.Create(100, "food", "01/01/2025", "")
	assert.ErrorIs(t, err, collection.ErrBadDate)

	assert.Empty(t, expenses.List(collection.PeriodAll, "", wednesday))
}

func TestExpenses_DefaultDescription(t *testing.T) {
	expenses := collection.NewExpenses(newMemStore())

	created, err := expenses.Create(5000, "transport", "2025-03-12", "")
	require.NoError(t, err)
	assert.Equal(t, "transport expense", created.Description)

	created, err = expenses.Create(5000, "transport", "2025-03-12", "bus ticket")
	require.NoError(t, err)
	assert.Equal(t, "bus ticket", created.Description)
}

func TestExpenses_PeriodToday(t *testing.T) {
	expenses := seedExpenses(t)

	list := expenses.List(collection.PeriodToday, "", wednesday)
	require.Len(t, list, 1)
	assert.Equal(t, "2025-03-12", list[0].Date)

	// The category filter composes with the period filter.
	assert.Len(t, expenses.List(collection.PeriodToday, "food", wednesday), 1)
	assert.Empty(t, expenses.List(collection.PeriodToday, "transport", wednesday))
}

func TestExpenses_PeriodThisWeek(t *testing.T) {
	expenses := seedExpenses(t)

	// Week starts Sunday 2025-03-09: today and yesterday qualify, the
	// 2025-03-03 record belongs to the previous week.
	list := expenses.List(collection.PeriodThisWeek, "", wednesday)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-03-12", list[0].Date)
	assert.Equal(t, "2025-03-11", list[1].Date)
}

func TestExpenses_PeriodThisMonth(t *testing.T) {
	expenses := seedExpenses(t)
	assert.Len(t, expenses.List(collection.PeriodThisMonth, "", wednesday), 3)
}

func TestExpenses_PeriodLastMonth(t *testing.T) {
	expenses := seedExpenses(t)

	list := expenses.List(collection.PeriodLastMonth, "", wednesday)
	require.Len(t, list, 1)
	assert.Equal(t, "2025-02-20", list[0].Date)
}

func TestExpenses_ListSortedByDateDescending(t *testing.T) {
	expenses := seedExpenses(t)

	list := expenses.List(collection.PeriodAll, "", wednesday)
	require.Len(t, list, 5)
	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Date, list[i].Date)
	}
}

func TestExpenses_Summarize(t *testing.T) {
	expenses := seedExpenses(t)

	sum := expenses.Summarize(collection.PeriodThisMonth, "", wednesday)
	assert.Equal(t, int64(143000), sum.Total)
	assert.Equal(t, "education", sum.TopCategory)
	assert.Equal(t, int64(15000), sum.ByCategory["food"])
	// Averaged over the 12 elapsed days of March.
	assert.InDelta(t, 143000.0/12.0, sum.DailyAverage, 0.001)
}

func TestExpenses_SummarizeEmpty(t *testing.T) {
	expenses := collection.NewExpenses(newMemStore())

	sum := expenses.Summarize(collection.PeriodToday, "", wednesday)
	assert.Zero(t, sum.Total)
	assert.Empty(t, sum.TopCategory)
}

func TestExpenses_Categories(t *testing.T) {
	expenses := seedExpenses(t)
	assert.Equal(t, []string{"food", "transport", "education", "fun"}, expenses.Categories())
}

func TestExpenses_DeleteIdempotent(t *testing.T) {
	expenses := collection.NewExpenses(newMemStore())
	created, _ := expenses.Create(100, "food", "2025-03-12", "")

	require.NoError(t, expenses.Delete(created.ID))
	require.NoError(t, expenses.Delete(created.ID))
	assert.Empty(t, expenses.List(collection.PeriodAll, "", wednesday))
}
