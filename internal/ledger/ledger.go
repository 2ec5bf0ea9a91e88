// Package ledger exposes the payments history: filtering and the balance
// figures shown on the payments page.
package ledger

import (
	"slices"
	"strings"

	"github.com/afrilink/platform_be/internal/models"
)

// Criteria left empty do not constrain the result.
type Criteria struct {
	Text   string
	Type   models.TransactionType
	Status models.TransactionStatus
}

func (c Criteria) Match(t models.Transaction) bool {
	if c.Status != "" && t.Status != c.Status {
		return false
	}
	if c.Type != "" && t.Type != c.Type {
		return false
	}
	if c.Text != "" {
		needle := strings.ToLower(c.Text)
		if !strings.Contains(strings.ToLower(t.Description), needle) &&
			!strings.Contains(strings.ToLower(t.Client), needle) {
			return false
		}
	}
	return true
}

func Filter(list []models.Transaction, c Criteria) []models.Transaction {
	out := make([]models.Transaction, 0, len(list))
	for _, t := range list {
		if c.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

type Summary struct {
	TotalEarnings    int64 `json:"totalEarnings"`
	PendingPayments  int64 `json:"pendingPayments"`
	TotalWithdrawals int64 `json:"totalWithdrawals"`
	AvailableBalance int64 `json:"availableBalance"`
}

// Summarize always works on the full list, never on a filtered view.
// Withdrawals count regardless of status.
func Summarize(list []models.Transaction) Summary {
	var s Summary
	for _, t := range list {
		switch t.Type {
		case models.TransactionPayment:
			switch t.Status {
			case models.TransactionStatusCompleted:
				s.TotalEarnings += t.Amount
			case models.TransactionStatusPending:
				s.PendingPayments += t.Amount
			}
		case models.TransactionWithdrawal:
			s.TotalWithdrawals += abs(t.Amount)
		}
	}
	s.AvailableBalance = s.TotalEarnings - s.TotalWithdrawals
	return s
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Ledger is the read-only transaction history.
type Ledger struct {
	txs []models.Transaction
}

func New(list []models.Transaction) *Ledger {
	return &Ledger{txs: slices.Clone(list)}
}

func (l *Ledger) List() []models.Transaction {
	return slices.Clone(l.txs)
}

func (l *Ledger) Search(c Criteria) []models.Transaction {
	return Filter(l.txs, c)
}

func (l *Ledger) Summary() Summary {
	return Summarize(l.txs)
}

// Recent returns the first n transactions (the list is newest first).
func (l *Ledger) Recent(n int) []models.Transaction {
	if n > len(l.txs) {
		n = len(l.txs)
	}
	return slices.Clone(l.txs[:n])
}
