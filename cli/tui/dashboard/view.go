package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/malonaz/spendchat/cli/tui/styles"
	"github.com/malonaz/spendchat/internal/summary"
	"github.com/malonaz/spendchat/internal/types"
)

const (
	title       = "Spending Overview"
	subtitle    = "Live view of your daily and monthly spending, powered by your chat."
	refreshing  = "Refreshing…"
	emptyChart  = "No daily totals yet."
	emptyFeed   = "As you add expenses in the chat, they'll appear here."
	chartTitle  = "Recent Daily Totals"
	feedTitle   = "Most Recent Expenses"
	chartOffset = 2
)

// View renders the pane.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderCards(),
		m.renderChart(),
		m.renderFeedTitle(),
		m.feed.View(),
	)
}

func (m *Model) renderHeader() string {
	heading := styles.TitleStyle.Render(" " + title + " ")
	if m.loader.Loading() {
		heading += " " + styles.RefreshingStyle.Render(refreshing)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		styles.HelpStyle.Width(m.width).Render(subtitle),
	)
}

func (m *Model) renderCards() string {
	today, month := summary.Totals(m.loader.Summary())
	cardWidth := max((m.width-styles.CardGap)/2-styles.CardStyle.GetHorizontalFrameSize(), 8)
	card := func(label, value, caption string) string {
		return styles.CardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.CardLabelStyle.Render(strings.ToUpper(label)),
			styles.CardValueStyle.Render(value),
			styles.HelpStyle.Render(caption),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Today's Spend", summary.FormatAmount(today), "Everything you've added for today."),
		strings.Repeat(" ", styles.CardGap),
		card("This Month", summary.FormatAmount(month), "All expenses recorded in the current month."),
	)
}

func (m *Model) renderChart() string {
	section := styles.SectionStyle.Render(chartTitle)
	series := m.series.For(m.loader.Summary())
	if len(series) == 0 {
		body := styles.HelpStyle.Render(emptyChart)
		return lipgloss.JoinVertical(lipgloss.Left, section, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, section, plot(series, m.width, m.chartRows))
}

// plot draws the daily series with the first and last dates under the x axis.
func plot(series []summary.DailyTotal, width, rows int) string {
	values := summary.Floats(series)
	// asciigraph needs two points to draw a line.
	if len(values) == 1 {
		values = append(values, values[0])
	}
	labelWidth := 0
	for _, v := range values {
		labelWidth = max(labelWidth, len(fmt.Sprintf("%.2f", v)))
	}
	plotWidth := max(width-labelWidth-chartOffset-2, len(values))
	graph := asciigraph.Plot(values,
		asciigraph.Height(rows),
		asciigraph.Width(plotWidth),
		asciigraph.Offset(chartOffset),
		asciigraph.Precision(2),
	)

	first, last := series[0].Date, series[len(series)-1].Date
	axis := first
	if last != first {
		gap := max(width-len(first)-len(last), 1)
		axis = first + strings.Repeat(" ", gap) + last
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ChartStyle.MaxWidth(width).Render(graph),
		styles.HelpStyle.Render(axis),
	)
}

func (m *Model) renderFeedTitle() string {
	s := m.loader.Summary()
	if s == nil || len(s.RecentExpenses) == 0 {
		return styles.SectionStyle.Render(feedTitle)
	}
	merchants := summary.DistinctMerchants(s.RecentExpenses)
	return styles.SectionStyle.Render(feedTitle) + styles.HelpStyle.Render(fmt.Sprintf("  %d at %d merchants", len(s.RecentExpenses), merchants))
}

func (m *Model) renderFeed() string {
	s := m.loader.Summary()
	if s == nil || len(s.RecentExpenses) == 0 {
		return styles.HelpStyle.Render(emptyFeed)
	}
	rows := make([]string, 0, len(s.RecentExpenses))
	for _, expense := range s.RecentExpenses {
		rows = append(rows, renderExpense(expense, m.width))
	}
	return strings.Join(rows, "\n"+styles.Divider(m.width)+"\n")
}

// renderExpense renders one feed row: merchant and amount, then category and date.
func renderExpense(expense *types.Expense, width int) string {
	amount := summary.FormatAmount(expense.Amount)
	merchant := styles.Truncate(expense.Merchant, max(width-len(amount)-1, 1))
	gap := max(width-lipgloss.Width(merchant)-len(amount), 1)
	top := styles.MerchantStyle.Render(merchant) + strings.Repeat(" ", gap) + styles.AmountStyle.Render(amount)
	bottom := styles.CardLabelStyle.Render(expense.CategoryOrDefault() + " · " + expense.ExpenseDate)
	return top + "\n" + bottom
}
