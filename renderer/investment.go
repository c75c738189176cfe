package renderer

import (
	"github.com/luchiari/grana"
)

// InvestmentSnapshotMarkdown renders the investment workspace aggregate:
// headline totals, one table per section, recent movements last.
func InvestmentSnapshotMarkdown(s *grana.InvestmentSnapshot) string {
	r := newReportBuilder()
	r.Printf("# Patrimônio em %s\n\n", s.Date)

	r.Printf("- Valor atual: %s\n", s.Totals.CurrentValue)
	r.Printf("- Investido: %s\n", s.Totals.Invested)
	r.Printf("- Resultado: %s (%s)\n", s.Totals.NetGain.SignedString(), s.Totals.NetGainPct.SignedString())
	if s.Totals.Count > 0 {
		r.Printf("- Ticket médio: %s em %d ativos\n", s.Totals.AverageTicket, s.Totals.Count)
	}
	if !s.Totals.AverageContribution.IsZero() {
		r.Printf("- Aporte médio mensal: %s\n", s.Totals.AverageContribution)
	}
	r.Printf("\n")

	if len(s.Holdings) > 0 {
		r.Printf("## Ativos\n\n")
		r.Printf("| Ativo | Grupo | Valor | Investido | Resultado | %% |\n")
		r.Printf("|:---|:---|---:|---:|---:|---:|\n")
		for _, h := range s.Holdings {
			r.Printf("| %s | %s | %s | %s | %s | %s |\n",
				h.Name, h.Group, h.CurrentValue, h.Invested, h.NetGain.SignedString(), h.NetGainPct.SignedString())
		}
		r.Printf("\n")
	}

	if len(s.Allocation) > 0 {
		r.Printf("## Alocação\n\n")
		r.Printf("| Grupo | Valor | %% |\n")
		r.Printf("|:---|---:|---:|\n")
		for _, slice := range s.Allocation {
			r.Printf("| %s | %s | %s |\n", slice.Group, slice.Value, slice.Share)
		}
		r.Printf("\n")
	}

	if len(s.Flows) > 0 {
		r.Printf("## Aportes e Resgates\n\n")
		r.Printf("| Mês | Aportes | Resgates | Líquido |\n")
		r.Printf("|:---|---:|---:|---:|\n")
		for _, flow := range s.Flows {
			r.Printf("| %s | %s | %s | %s |\n", flow.Label, flow.Contributions, flow.Withdrawals, flow.Net.SignedString())
		}
		r.Printf("\n")
	}

	if len(s.RecentMovements) > 0 {
		r.Printf("## Movimentações Recentes\n\n")
		for _, tx := range s.RecentMovements {
			verb := "aporte"
			if tx.Type == grana.Income {
				verb = "resgate"
			}
			r.Printf("- %s: %s de %s", tx.Date, verb, tx.Amount)
			if tx.Description != "" {
				r.Printf(" (%s)", tx.Description)
			}
			r.Printf("\n")
		}
		r.Printf("\n")
	}
	return r.String()
}

// EquityEvolutionMarkdown renders the net-worth trend, one row per month.
func EquityEvolutionMarkdown(e *grana.EquityEvolution) string {
	r := newReportBuilder()
	r.Printf("# Evolução Patrimonial\n\n")
	r.Printf("| Mês | Patrimônio |\n")
	r.Printf("|:---|---:|\n")
	for _, point := range e.Points {
		r.Printf("| %s | %s |\n", point.Label, point.Value)
	}
	r.Printf("\n")
	return r.String()
}
