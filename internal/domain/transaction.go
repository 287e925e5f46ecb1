package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates non-positive amount.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrInsufficientFunds indicates that the user wallet does not have enough points.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrDuplicateIdempotencyKey indicates that a transaction with the given
	// idempotency key was already committed, possibly by a concurrent request.
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already used")
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Transaction is the parent record of a balanced set of postings.
// It is created exactly once per successful operation and never mutated.
type Transaction struct {
	ID             string    `json:"id"`
	IdempotencyKey string    `json:"idempotency_key"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

// Posting is one signed ledger entry linking a transaction to an account.
// The postings of any single transaction sum to zero.
type Posting struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transaction_id"`
	AccountID     string    `json:"account_id"`
	Amount        string    `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// WalletTxParams is the input data for a wallet transaction.
type WalletTxParams struct {
	UserID         string `json:"user_id"`
	CounterpartID  string `json:"counterpart_id"`
	Amount         string `json:"amount"` // must be positive
	IdempotencyKey string `json:"idempotency_key"`
}

// WalletTxResult is the result of a wallet transaction.
type WalletTxResult struct {
	Transaction        Transaction `json:"transaction"`
	CounterpartPosting Posting     `json:"counterpartPosting"`
	UserPosting        Posting     `json:"userPosting"`
	RemainingBalance   string      `json:"remainingBalance,omitempty"` // spend only
}

// WalletTxSummary is the summary of a committed wallet transaction
// returned to the calling layer and on idempotent replays.
type WalletTxSummary struct {
	TransactionID    string    `json:"transactionId"`
	Status           string    `json:"status"`
	Amount           string    `json:"amount"`
	RemainingBalance string    `json:"remainingBalance,omitempty"`
	Replayed         bool      `json:"replayed"`
	CreatedAt        time.Time `json:"created_at"`
}
