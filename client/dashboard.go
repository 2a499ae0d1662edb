package client

import "github.com/shopspring/decimal"

// Totals summarizes a transaction list for the dashboard header cards.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// CategorySlice is a single wedge of the expense-by-category chart.
type CategorySlice struct {
	Category string
	Total    decimal.Decimal
}

// MonthPoint is one bar of the monthly income/expense chart.
type MonthPoint struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// ComputeTotals sums incomes and expenses and returns the net balance.
func ComputeTotals(transactions []Transaction) Totals {
	totals := Totals{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}
	for _, transaction := range transactions {
		switch transaction.Type {
		case "income":
			totals.Income = totals.Income.Add(transaction.Amount)
		case "expense":
			totals.Expenses = totals.Expenses.Add(transaction.Amount)
		}
	}
	totals.Net = totals.Income.Sub(totals.Expenses)
	return totals
}

// CategoryBreakdown sums expense amounts per category. Income transactions
// are ignored. Slices appear in the order each category is first seen.
func CategoryBreakdown(transactions []Transaction) []CategorySlice {
	index := make(map[string]int)
	var slices []CategorySlice

	for _, transaction := range transactions {
		if transaction.Type != "expense" {
			continue
		}
		i, ok := index[transaction.Category]
		if !ok {
			i = len(slices)
			index[transaction.Category] = i
			slices = append(slices, CategorySlice{
				Category: transaction.Category,
				Total:    decimal.Zero,
			})
		}
		slices[i].Total = slices[i].Total.Add(transaction.Amount)
	}

	return slices
}

// MonthlyBreakdown buckets transactions by the English short month label of
// their date, in the order each label is first seen. Labels carry no year, so
// the same month of different years lands in one bucket.
func MonthlyBreakdown(transactions []Transaction) []MonthPoint {
	index := make(map[string]int)
	var points []MonthPoint

	for _, transaction := range transactions {
		label := transaction.Date.Format("Jan")
		i, ok := index[label]
		if !ok {
			i = len(points)
			index[label] = i
			points = append(points, MonthPoint{
				Month:    label,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			})
		}
		switch transaction.Type {
		case "income":
			points[i].Income = points[i].Income.Add(transaction.Amount)
		case "expense":
			points[i].Expenses = points[i].Expenses.Add(transaction.Amount)
		}
	}

	return points
}

// FormatAmount renders an amount with exactly two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
