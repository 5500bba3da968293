package summary

import (
	"io"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/spendchat/cli"
	"github.com/malonaz/spendchat/internal/configuration"
	"github.com/malonaz/spendchat/internal/summary"
	"github.com/malonaz/spendchat/internal/types"
)

const defaultTemplate = `{{ "Spending Overview" | upper }}
Today's Spend: {{ money .Summary.TodayTotal }}
This Month:    {{ money .Summary.MonthTotal }}

Recent Daily Totals
{{- range .Daily }}
  {{ .Date }}  {{ money .Total | printf "%10s" }}
{{- else }}
  none yet
{{- end }}

Most Recent Expenses ({{ len .Summary.RecentExpenses }} at {{ .Merchants }} {{ plural "merchant" "merchants" .Merchants }})
{{- range .Summary.RecentExpenses }}
  {{ .ExpenseDate }}  {{ trunc 24 .Merchant | printf "%-24s" }}  {{ .CategoryOrDefault | printf "%-16s" }} {{ money .Amount }}
{{- else }}
  As you add expenses in the chat, they'll appear here.
{{- end }}
`

// report is the data handed to the template.
type report struct {
	Summary   *types.DashboardSummary
	Daily     []summary.DailyTotal
	Merchants int
}

// NewCmd instantiates and returns the summary command.
func NewCmd(config *configuration.Config) *cobra.Command {
	var opts struct {
		TemplateFile string
	}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the spending dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := defaultTemplate
			if opts.TemplateFile != "" {
				bytes, err := os.ReadFile(opts.TemplateFile)
				if err != nil {
					return errors.Wrap(err, "reading template")
				}
				text = string(bytes)
			}
			s, err := cli.NewClient(config).FetchDashboardSummary(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "fetching dashboard summary")
			}
			return Render(cmd.OutOrStdout(), text, s)
		},
	}
	cmd.Flags().StringVar(&opts.TemplateFile, "template", "", "Go text/template file used to print the summary (sprig functions available)")
	return cmd
}

// Render executes the template against the summary.
func Render(w io.Writer, text string, s *types.DashboardSummary) error {
	funcs := sprig.TxtFuncMap()
	funcs["money"] = summary.FormatAmount
	tmpl, err := template.New("summary").Funcs(funcs).Parse(text)
	if err != nil {
		return errors.Wrap(err, "parsing template")
	}
	data := &report{
		Summary:   s,
		Daily:     summary.DailySeries(s.RecentExpenses),
		Merchants: summary.DistinctMerchants(s.RecentExpenses),
	}
	if err := tmpl.Execute(w, data); err != nil {
		return errors.Wrap(err, "executing template")
	}
	return nil
}
