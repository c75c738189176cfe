package grana

// DebitOutcome is the decision for a proposed debit against an account.
type DebitOutcome int

const (
	// DebitAllowed permits the debit outright.
	DebitAllowed DebitOutcome = iota
	// DebitNeedsConfirmation means the debit would leave the account
	// negative and the caller has not yet confirmed that end state.
	DebitNeedsConfirmation
	// DebitBlocked rejects the debit for a structural reason, such as a
	// missing account reference. Insufficient funds never block.
	DebitBlocked
)

func (o DebitOutcome) String() string {
	switch o {
	case DebitAllowed:
		return "allowed"
	case DebitNeedsConfirmation:
		return "needs-confirmation"
	case DebitBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// DebitCheck is the structured result of [CheckDebit]. A pending
// confirmation is a valid, expected branch of normal operation, so it is
// a value the caller inspects, never an error.
type DebitCheck struct {
	Outcome        DebitOutcome
	CurrentBalance Money
	RequiredAmount Money
	FinalBalance   Money
	Reason         string // set when blocked
}

// CheckDebit decides whether a proposed debit against an account is
// permitted, must be blocked, or requires the user to confirm a
// resulting negative balance.
//
// The two-phase protocol: the first call without confirmation returns
// DebitNeedsConfirmation carrying the balances the caller needs to
// render a prompt; the caller resubmits the identical payload with
// confirmNegative set and the same computation proceeds as allowed.
// Negative balances are a permitted end state, never a hard block.
// CheckDebit is a pure function, so resubmitting with confirmation and
// an identical payload yields the identical result and nothing is
// double-applied.
func CheckDebit(account *Account, debit Money, confirmNegative bool) DebitCheck {
	if account == nil {
		return DebitCheck{Outcome: DebitBlocked, Reason: "missing account reference"}
	}
	if !debit.IsPositive() {
		return DebitCheck{
			Outcome:        DebitBlocked,
			CurrentBalance: account.Balance,
			Reason:         "debit amount must be positive",
		}
	}
	final := account.Balance.Sub(debit)
	check := DebitCheck{
		Outcome:        DebitAllowed,
		CurrentBalance: account.Balance,
		RequiredAmount: debit,
		FinalBalance:   final,
	}
	if final.IsNegative() && !confirmNegative {
		check.Outcome = DebitNeedsConfirmation
	}
	return check
}
