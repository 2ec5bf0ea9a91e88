package models

type TransactionType string

const (
	TransactionPayment    TransactionType = "payment"
	TransactionWithdrawal TransactionType = "withdrawal"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is one line of the payments ledger. Withdrawals carry a
// negative Amount.
type Transaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      int64             `json:"amount"`
	Description string            `json:"description"`
	Client      string            `json:"client"`
	Status      TransactionStatus `json:"status"`
	Date        string            `json:"date"` // yyyy-mm-dd
	ProjectID   string            `json:"projectId"`
}
