package types

import (
	"github.com/shopspring/decimal"
)

// UncategorizedLabel is displayed for expenses without a category.
const UncategorizedLabel = "Uncategorized"

// Expense is a single spending event recorded by the expense service.
type Expense struct {
	ID       int64           `json:"id"`
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Category *string         `json:"category,omitempty"`
	Note     *string         `json:"note,omitempty"`
	// Calendar date, YYYY-MM-DD.
	ExpenseDate string `json:"expense_date"`
	// Server timestamp. Kept verbatim; the client never interprets it.
	CreatedAt string `json:"created_at"`
}

// CategoryOrDefault returns the category or UncategorizedLabel when absent.
func (e *Expense) CategoryOrDefault() string {
	if e.Category == nil || *e.Category == "" {
		return UncategorizedLabel
	}
	return *e.Category
}

// ChatResponse is the reply of the expense service to a chat message.
type ChatResponse struct {
	Reply string `json:"reply"`
	// Expenses created from the message. Only the count matters to the chat.
	Expenses []*Expense `json:"expenses"`
}

// DashboardSummary is the server-computed aggregate shown on the dashboard.
type DashboardSummary struct {
	TodayTotal decimal.Decimal `json:"today_total"`
	MonthTotal decimal.Decimal `json:"month_total"`
	// Server ordered and bounded.
	RecentExpenses []*Expense `json:"recent_expenses"`
}
