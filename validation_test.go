package grana

import "testing"

func TestCheckDebitAllowed(t *testing.T) {
	account := &Account{ID: "acc-1", Balance: R(100)}
	check := CheckDebit(account, R(100), false)
	if check.Outcome != DebitAllowed {
		t.Fatalf("Outcome = %v, want allowed", check.Outcome)
	}
	if !check.FinalBalance.Equal(R(0)) {
		t.Errorf("FinalBalance = %s, want %s", check.FinalBalance, R(0))
	}
}

// Balance R$100.00, proposed expense R$150.00: the debit is refused
// until the caller confirms it.
func TestCheckDebitTwoPhaseConfirm(t *testing.T) {
	account := &Account{ID: "acc-1", Balance: R(100)}

	// Phase 1: no confirmation yet.
	check := CheckDebit(account, R(150), false)
	if check.Outcome != DebitNeedsConfirmation {
		t.Fatalf("Outcome = %v, want needs-confirmation", check.Outcome)
	}
	if !check.CurrentBalance.Equal(R(100)) {
		t.Errorf("CurrentBalance = %s, want %s", check.CurrentBalance, R(100))
	}
	if !check.RequiredAmount.Equal(R(150)) {
		t.Errorf("RequiredAmount = %s, want %s", check.RequiredAmount, R(150))
	}
	if !check.FinalBalance.Equal(R(-50)) {
		t.Errorf("FinalBalance = %s, want %s", check.FinalBalance, R(-50))
	}

	// Phase 2: identical payload, confirmation supplied. Negative
	// balances are a permitted end state.
	confirmed := CheckDebit(account, R(150), true)
	if confirmed.Outcome != DebitAllowed {
		t.Fatalf("confirmed Outcome = %v, want allowed", confirmed.Outcome)
	}
	if !confirmed.FinalBalance.Equal(R(-50)) {
		t.Errorf("confirmed FinalBalance = %s, want %s", confirmed.FinalBalance, R(-50))
	}

	// Idempotency: resubmitting the confirmed payload changes nothing.
	again := CheckDebit(account, R(150), true)
	if again.Outcome != confirmed.Outcome || !again.FinalBalance.Equal(confirmed.FinalBalance) {
		t.Errorf("resubmitted check = %+v, want %+v", again, confirmed)
	}
}

func TestCheckDebitBlocked(t *testing.T) {
	if check := CheckDebit(nil, R(50), false); check.Outcome != DebitBlocked {
		t.Errorf("missing account Outcome = %v, want blocked", check.Outcome)
	}
	account := &Account{ID: "acc-1", Balance: R(100)}
	if check := CheckDebit(account, R(0), false); check.Outcome != DebitBlocked {
		t.Errorf("zero debit Outcome = %v, want blocked", check.Outcome)
	}
	// confirmation never converts a structural failure into a pass.
	if check := CheckDebit(nil, R(50), true); check.Outcome != DebitBlocked {
		t.Errorf("confirmed missing account Outcome = %v, want blocked", check.Outcome)
	}
}
