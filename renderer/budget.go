package renderer

import (
	"bytes"
	"fmt"

	"github.com/luchiari/grana"
	md "github.com/nao1215/markdown"
)

// BudgetMarkdown renders every budget comparison as a markdown table.
func BudgetMarkdown(comparisons []grana.BudgetComparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Orçamentos")

	rows := make([][]string, 0, len(comparisons))
	for _, c := range comparisons {
		rows = append(rows, []string{
			c.Budget.Category.Label(),
			string(c.Budget.Period),
			c.Budget.Amount.String(),
			c.Spent.String(),
			c.Remaining.String(),
			c.Percent.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Categoria", "Período", "Limite", "Gasto", "Restante", "%"},
		Rows:   rows,
	})

	for _, c := range comparisons {
		if c.Remaining.IsNegative() {
			doc.PlainText(fmt.Sprintf("Atenção: orçamento de %s estourado em %s.", c.Budget.Category.Label(), c.Remaining.Neg()))
		}
	}

	return doc.String()
}

// DebitCheckMarkdown renders the outcome of a balance check as a short
// markdown fragment suitable for a confirmation prompt.
func DebitCheckMarkdown(check grana.DebitCheck) string {
	r := newReportBuilder()
	r.Printf("## Verificação de Saldo\n\n")
	r.Printf("- Resultado: %s\n", check.Outcome)
	r.Printf("- Saldo atual: %s\n", check.CurrentBalance)
	r.Printf("- Valor do débito: %s\n", check.RequiredAmount)
	r.Printf("- Saldo final: %s\n", check.FinalBalance.SignedString())
	if check.Reason != "" {
		r.Printf("- Motivo: %s\n", check.Reason)
	}
	r.Printf("\n")
	return r.String()
}
