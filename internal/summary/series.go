package summary

import (
	"sort"

	"github.com/scylladb/go-set/strset"
	"github.com/shopspring/decimal"

	"github.com/malonaz/spendchat/internal/types"
)

// DailyTotal is the amount spent on a calendar date.
type DailyTotal struct {
	Date  string
	Total decimal.Decimal
}

// DailySeries groups expenses by date and sums their amounts, ascending by date.
// ISO dates sort correctly as strings.
func DailySeries(expenses []*types.Expense) []DailyTotal {
	byDate := map[string]decimal.Decimal{}
	for _, expense := range expenses {
		byDate[expense.ExpenseDate] = byDate[expense.ExpenseDate].Add(expense.Amount)
	}
	series := make([]DailyTotal, 0, len(byDate))
	for date, total := range byDate {
		series = append(series, DailyTotal{Date: date, Total: total})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

// Series memoizes the daily series of a summary.
// It only recomputes when handed a different summary.
type Series struct {
	summary  *types.DashboardSummary
	series   []DailyTotal
	computed int
}

// For returns the daily series of the given summary.
func (s *Series) For(summary *types.DashboardSummary) []DailyTotal {
	if summary == s.summary && (s.series != nil || summary == nil) {
		return s.series
	}
	s.summary = summary
	s.series = nil
	if summary != nil {
		s.series = DailySeries(summary.RecentExpenses)
		s.computed++
	}
	return s.series
}

// DistinctMerchants returns the number of different merchants among the expenses.
func DistinctMerchants(expenses []*types.Expense) int {
	set := strset.NewWithSize(len(expenses))
	for _, expense := range expenses {
		set.Add(expense.Merchant)
	}
	return set.Size()
}
