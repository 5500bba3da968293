package summary

import (
	"github.com/shopspring/decimal"

	"github.com/malonaz/spendchat/internal/types"
)

const currencySymbol = "$"

// FormatAmount formats an amount with two decimals and a currency symbol.
func FormatAmount(amount decimal.Decimal) string {
	return currencySymbol + amount.StringFixed(2)
}

// Totals returns today's and this month's totals, zero when no summary is loaded.
func Totals(summary *types.DashboardSummary) (today, month decimal.Decimal) {
	if summary == nil {
		return decimal.Zero, decimal.Zero
	}
	return summary.TodayTotal, summary.MonthTotal
}

// Floats converts the series totals for charting.
func Floats(series []DailyTotal) []float64 {
	values := make([]float64, len(series))
	for i, point := range series {
		values[i] = point.Total.InexactFloat64()
	}
	return values
}
