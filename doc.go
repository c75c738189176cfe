// Package grana is the aggregation and projection engine of a
// personal-finance tracker. It turns snapshots of raw financial records
// (transactions, accounts, credit cards, equities, budgets) into the
// derived views a dashboard displays: multi-month cash-flow series,
// category breakdowns, investment workspace snapshots, equity evolution
// and budget-vs-actual comparisons.
//
// The engine is a pure, synchronous computation layer:
//   - It never fetches, persists, or renders. Records are supplied by an
//     external collaborator and derived values are returned to one.
//   - It never mutates its inputs. Every report is a newly constructed
//     value computed from a read-only [Ledger] snapshot.
//   - The write path (creating transactions) is covered by two advisory
//     pieces: [CheckDebit], the insufficient-funds two-phase confirm
//     protocol, and the installment/recurrence expanders that turn a
//     single [TransactionIntent] into the dated transactions it
//     represents.
//
// This package is the foundation of the `grana` command-line tool, which
// adds file handling and presentation on top of it.
package grana
