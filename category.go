package grana

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category classifies a transaction. The set is open: unknown keys are
// accepted and rendered through the humanization fallback, so a new
// category added upstream never breaks a report.
type Category string

const (
	CategorySalary        Category = "SALARY"
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryHousing       Category = "HOUSING"
	CategoryHealth        Category = "HEALTH"
	CategoryEducation     Category = "EDUCATION"
	CategoryLeisure       Category = "LEISURE"
	CategoryShopping      Category = "SHOPPING"
	CategoryServices      Category = "SERVICES"
	CategoryTaxes         Category = "TAXES"
	CategoryInvestment    Category = "INVESTMENT"
	CategoryDebtPayment   Category = "DEBT_PAYMENT"
	CategoryTransferOther Category = "TRANSFER"
	CategoryOther         Category = "OTHER"
)

// categoryLabels is the canonical category-to-label table. It is owned by
// the engine so that every report renders the same labels; the original
// dashboard duplicated this table per screen and the copies drifted.
var categoryLabels = map[Category]string{
	CategorySalary:        "Salário",
	CategoryFood:          "Alimentação",
	CategoryTransport:     "Transporte",
	CategoryHousing:       "Moradia",
	CategoryHealth:        "Saúde",
	CategoryEducation:     "Educação",
	CategoryLeisure:       "Lazer",
	CategoryShopping:      "Compras",
	CategoryServices:      "Serviços",
	CategoryTaxes:         "Impostos",
	CategoryInvestment:    "Investimentos",
	CategoryDebtPayment:   "Pagamento de Dívidas",
	CategoryTransferOther: "Transferência",
	CategoryOther:         "Outros",
}

var titleCaser = cases.Title(language.BrazilianPortuguese)

// Label returns the display label for the category. Categories absent
// from the canonical table fall back to a humanized form of the key.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return HumanizeCategory(string(c))
}

// HumanizeCategory turns an enum-like key into a display label: the key
// is split on separators and each token is title-cased, so
// "STREAMING_SERVICES" renders as "Streaming Services" instead of the
// raw key.
func HumanizeCategory(key string) string {
	tokens := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	for i, tok := range tokens {
		tokens[i] = titleCaser.String(strings.ToLower(tok))
	}
	return strings.Join(tokens, " ")
}
