package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestFmtRewritesCanonicalOrder(t *testing.T) {
	// Transactions out of order, account record last.
	content := `{"record":"transaction","id":"t2","type":"EXPENSE","category":"FOOD","amount":{"amount":20,"currency":"BRL"},"date":"2025-06-10","accountId":"acc-1","isPaid":true}
{"record":"transaction","id":"t1","type":"EXPENSE","category":"FOOD","amount":{"amount":10,"currency":"BRL"},"date":"2025-06-01","accountId":"acc-1","isPaid":true}
{"record":"account","id":"acc-1","name":"Corrente","type":"CHECKING","balance":{"amount":1000,"currency":"BRL"}}
`
	tempLedgerFile := createTempLedger(t, content)
	useLedger(t, tempLedgerFile)

	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	got, err := os.ReadFile(tempLedgerFile)
	if err != nil {
		t.Fatalf("Failed to read formatted ledger file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3:\n%s", len(lines), string(got))
	}
	if !strings.Contains(lines[0], `"record":"account"`) {
		t.Errorf("account record must come first, got %s", lines[0])
	}
	if !strings.Contains(lines[1], `"id":"t1"`) || !strings.Contains(lines[2], `"id":"t2"`) {
		t.Errorf("transactions must be date sorted:\n%s", string(got))
	}
}

func TestFmtCheckReportsInvalid(t *testing.T) {
	// Negative amount fails validation.
	content := `{"record":"transaction","id":"bad","type":"EXPENSE","category":"FOOD","amount":{"amount":-10,"currency":"BRL"},"date":"2025-06-01","accountId":"acc-1"}
`
	tempLedgerFile := createTempLedger(t, content)
	useLedger(t, tempLedgerFile)

	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("check", "true")

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
	// check mode never touches the file.
	got, _ := os.ReadFile(tempLedgerFile)
	if string(got) != content {
		t.Error("check mode must not rewrite the ledger")
	}
}

func TestImportDryRun(t *testing.T) {
	tempLedgerFile := createTempLedger(t, "")
	useLedger(t, tempLedgerFile)

	export := `{"items":[{"when":"2025-06-02","value":-42.5,"text":"Padaria"},{"when":"2025-06-05","value":4000,"text":"Salário"}]}`
	exportFile := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(exportFile, []byte(export), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	for k, v := range map[string]string{
		"file":        exportFile,
		"records":     "$.items[*]",
		"date":        "$.when",
		"amount":      "$.value",
		"description": "$.text",
		"account":     "acc-1",
		"dry-run":     "true",
	} {
		if err := f.Set(k, v); err != nil {
			t.Fatalf("Failed to set flag %s: %v", k, err)
		}
	}
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got, _ := os.ReadFile(tempLedgerFile)
	if strings.TrimSpace(string(got)) != "" {
		t.Errorf("dry run must not write to the ledger, got:\n%s", string(got))
	}
}

func TestImportAppends(t *testing.T) {
	tempLedgerFile := createTempLedger(t, "")
	useLedger(t, tempLedgerFile)

	export := `{"items":[{"when":"2025-06-02","value":-42.5,"text":"Padaria"}]}`
	exportFile := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(exportFile, []byte(export), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	for k, v := range map[string]string{
		"file":        exportFile,
		"records":     "$.items[*]",
		"date":        "$.when",
		"amount":      "$.value",
		"description": "$.text",
		"account":     "acc-1",
	} {
		if err := f.Set(k, v); err != nil {
			t.Fatalf("Failed to set flag %s: %v", k, err)
		}
	}
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got, _ := os.ReadFile(tempLedgerFile)
	for _, want := range []string{`"record":"transaction"`, `"type":"EXPENSE"`, `"amount":42.5`, `"description":"Padaria"`} {
		if !strings.Contains(string(got), want) {
			t.Errorf("ledger file missing %q:\n%s", want, string(got))
		}
	}
}
