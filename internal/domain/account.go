// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that an account with the given name already exists.
	ErrAccountAlreadyExists = errors.New("account name already exists")
)

// Account types of the chart of accounts.
const (
	Asset     = "ASSET"
	Liability = "LIABILITY"
	Expense   = "EXPENSE"
	Revenue   = "REVENUE"
)

// Well-known system account names created at seed time.
const (
	CashReserveAccount      = "Cash_Reserve"
	MarketingExpenseAccount = "Marketing_Expense"
	RevenueAccount          = "Revenue"
)

// Account is a ledger account. User wallets are LIABILITY accounts.
// Accounts carry no balance column; a balance is always derived as
// the sum of the account's postings.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// LockedAccount is an account row held under FOR UPDATE together with
// its balance derived within the same transaction.
//
// Sign convention: crediting a user wallet writes a negative posting,
// so for LIABILITY accounts the spendable points are -Balance.
type LockedAccount struct {
	ID      string
	Name    string
	Type    string
	Balance string
}

// AccountBalance is the derived balance view of a single account.
type AccountBalance struct {
	AccountID       string `json:"accountId"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Balance         string `json:"balance"`
	AvailablePoints string `json:"availablePoints,omitempty"`
}
