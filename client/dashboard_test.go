package client

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(txnType, category string, amount float64, date time.Time) Transaction {
	return Transaction{
		Type:     txnType,
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
		Date:     date,
	}
}

func TestComputeTotals(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	transactions := []Transaction{
		txn("income", "Salary", 100, jan),
		txn("expense", "Food", 40, jan),
		txn("expense", "Transport", 10, jan),
	}

	totals := ComputeTotals(transactions)

	assert.True(t, totals.Income.Equal(decimal.NewFromInt(100)), "income: %s", totals.Income)
	assert.True(t, totals.Expenses.Equal(decimal.NewFromInt(50)), "expenses: %s", totals.Expenses)
	assert.True(t, totals.Net.Equal(decimal.NewFromInt(50)), "net: %s", totals.Net)
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expenses.IsZero())
	assert.True(t, totals.Net.IsZero())
}

func TestCategoryBreakdown(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	transactions := []Transaction{
		txn("expense", "Food", 25.5, jan),
		txn("income", "Salary", 1000, jan),
		txn("expense", "Transport", 10, jan),
		txn("expense", "Food", 14.5, jan),
	}

	slices := CategoryBreakdown(transactions)

	require.Len(t, slices, 2)

	// First-seen order, income excluded.
	assert.Equal(t, "Food", slices[0].Category)
	assert.True(t, slices[0].Total.Equal(decimal.NewFromInt(40)), "Food total: %s", slices[0].Total)
	assert.Equal(t, "Transport", slices[1].Category)
	assert.True(t, slices[1].Total.Equal(decimal.NewFromInt(10)), "Transport total: %s", slices[1].Total)
}

func TestMonthlyBreakdown(t *testing.T) {
	transactions := []Transaction{
		txn("income", "Salary", 100, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)),
		txn("expense", "Food", 30, time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)),
		// Same label as January 2025: months merge across years.
		txn("expense", "Food", 20, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)),
	}

	points := MonthlyBreakdown(transactions)

	require.Len(t, points, 2)

	assert.Equal(t, "Jan", points[0].Month)
	assert.True(t, points[0].Income.Equal(decimal.NewFromInt(100)), "Jan income: %s", points[0].Income)
	assert.True(t, points[0].Expenses.Equal(decimal.NewFromInt(20)), "Jan expenses: %s", points[0].Expenses)

	assert.Equal(t, "Feb", points[1].Month)
	assert.True(t, points[1].Expenses.Equal(decimal.NewFromInt(30)), "Feb expenses: %s", points[1].Expenses)
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromFloat(7.5), "7.50"},
		{decimal.NewFromFloat(3.14159), "3.14"},
		{decimal.Zero, "0.00"},
		{decimal.NewFromInt(1000), "1000.00"},
		{decimal.NewFromFloat(-12.345), "-12.35"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAmount(tc.in), "FormatAmount(%s)", tc.in)
	}
}
