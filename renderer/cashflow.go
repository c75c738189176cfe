package renderer

import (
	"github.com/luchiari/grana"
)

// CashFlowMarkdown renders the monthly income/expense series as a
// markdown table, one row per month, oldest first.
func CashFlowMarkdown(report *grana.CashFlowReport) string {
	r := newReportBuilder()
	r.Printf("# Fluxo de Caixa\n\n")
	r.Printf("| Mês | Receitas | Despesas | Saldo |\n")
	r.Printf("|:---|---:|---:|---:|\n")
	for _, entry := range report.Entries {
		r.Printf("| %s | %s | %s | %s |\n", entry.Label, entry.Income, entry.Expense, entry.Net.SignedString())
	}
	r.Printf("\n")
	return r.String()
}

// CategoryBreakdownMarkdown renders the per-category totals as a markdown
// table with each category's share of the overall total.
func CategoryBreakdownMarkdown(breakdown *grana.CategoryBreakdown) string {
	title := "Despesas por Categoria"
	if breakdown.Type == grana.Income {
		title = "Receitas por Categoria"
	}
	r := newReportBuilder()
	r.Printf("# %s\n\n", title)
	r.Printf("Período: %s\n\n", breakdown.Range)
	r.Printf("| Categoria | Total | %% |\n")
	r.Printf("|:---|---:|---:|\n")
	for _, total := range breakdown.Totals {
		r.Printf("| %s | %s | %s |\n", total.Label, total.Total, total.Total.PercentOf(breakdown.Overall))
	}
	r.Printf("| **Total** | **%s** | |\n\n", breakdown.Overall)
	return r.String()
}
