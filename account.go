package grana

// AccountType is the kind of cash account.
type AccountType string

const (
	Checking AccountType = "CHECKING"
	Savings  AccountType = "SAVINGS"
	Wallet   AccountType = "WALLET"
)

// Account holds a running cash balance. The balance is maintained by the
// external store as transactions are confirmed against it; the engine
// treats it as given and never recomputes it from history.
type Account struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Balance Money       `json:"balance"`
	Color   string      `json:"color,omitempty"`
}

// CreditCard is a deferred liability: expenses posted against a card
// build up the current invoice instead of debiting an account.
type CreditCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Limit     Money  `json:"limit"`
	LimitUsed Money  `json:"limitUsed"` // current invoice balance
}

// Available returns the remaining spendable limit.
func (c CreditCard) Available() Money { return c.Limit.Sub(c.LimitUsed) }
