package grana

import (
	"bytes"
	"strings"
	"testing"
)

const sampleLedger = `{"record":"account","id":"acc-1","name":"Corrente","type":"CHECKING","balance":{"amount":1500,"currency":"BRL"}}
{"record":"card","id":"card-1","name":"Visa","limit":{"amount":5000,"currency":"BRL"},"limitUsed":{"amount":1200,"currency":"BRL"}}
{"record":"equity","id":"eq-1","name":"Apartamento","type":"REAL_ESTATE","value":{"amount":300000,"currency":"BRL"},"cost":{"amount":250000,"currency":"BRL"},"acquisitionDate":"2024-03-01"}
{"record":"budget","id":"b-1","category":"FOOD","period":"MONTH","amount":{"amount":800,"currency":"BRL"}}
{"record":"transaction","id":"tx-1","type":"EXPENSE","category":"FOOD","amount":{"amount":42.5,"currency":"BRL"},"date":"2025-06-02","accountId":"acc-1","isPaid":true}
`

func TestDecodeLedger(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if a := l.Account("acc-1"); a == nil || !a.Balance.Equal(R(1500)) {
		t.Errorf("Account(acc-1) = %v", a)
	}
	if c := l.Card("card-1"); c == nil || !c.Available().Equal(R(3800)) {
		t.Errorf("Card(card-1) = %v", c)
	}
	if e := l.Equity("eq-1"); e == nil || e.AcquisitionDate != day("2024-03-01") {
		t.Errorf("Equity(eq-1) = %v", e)
	}
	if budgets := l.Budgets(); len(budgets) != 1 || budgets[0].Category != CategoryFood {
		t.Errorf("Budgets() = %v", budgets)
	}
	count := 0
	for tx := range l.Transactions() {
		count++
		if !tx.Amount.Equal(R(42.5)) {
			t.Errorf("Amount = %s, want %s", tx.Amount, R(42.5))
		}
	}
	if count != 1 {
		t.Errorf("transaction count = %d, want 1", count)
	}
}

func TestDecodeLedgerSkipsEmptyLines(t *testing.T) {
	in := "\n" + sampleLedger + "\n\n"
	if _, err := DecodeLedger(strings.NewReader(in)); err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
}

func TestDecodeLedgerUnknownRecord(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader(`{"record":"stock","id":"x"}` + "\n")); err == nil {
		t.Error("expected error for unknown record kind")
	}
}

func TestDecodeLedgerBadJSON(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("{not json}\n")); err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestEncodeLedgerRoundTrip(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	back, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger(encoded) error = %v", err)
	}
	if a := back.Account("acc-1"); a == nil || !a.Balance.Equal(R(1500)) {
		t.Errorf("round-trip account = %v", a)
	}
	var txs []Transaction
	for tx := range back.Transactions() {
		txs = append(txs, tx)
	}
	if len(txs) != 1 || txs[0].ID != "tx-1" || !txs[0].Amount.Equal(R(42.5)) {
		t.Errorf("round-trip transactions = %v", txs)
	}
}

func TestEncodeLedgerRecordOrder(t *testing.T) {
	l := NewLedger()
	l.Append(expense("2025-06-02", CategoryFood, 10))
	l.SetAccounts(Account{ID: "acc-1", Name: "Corrente", Type: Checking, Balance: R(100)})
	l.SetBudgets(Budget{ID: "b-1", Category: CategoryFood, Period: BudgetMonthly, Amount: R(800)})

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	// reference records come before the transactions that point at them.
	for i, kind := range []string{`"record":"account"`, `"record":"budget"`, `"record":"transaction"`} {
		if !strings.Contains(lines[i], kind) {
			t.Errorf("lines[%d] = %s, want %s first", i, lines[i], kind)
		}
	}
}
