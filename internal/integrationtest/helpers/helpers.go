// Package helpers provides shared seed helpers for integration tests.
package helpers

import (
	"context"
	"testing"

	"github.com/go-petr/points-wallet/internal/accountrepo"
	"github.com/go-petr/points-wallet/internal/domain"
	"github.com/go-petr/points-wallet/internal/postingrepo"
	"github.com/go-petr/points-wallet/internal/transactionrepo"
	"github.com/go-petr/points-wallet/pkg/dbpkg"
	"github.com/go-petr/points-wallet/pkg/randompkg"
)

// SeedAccount creates an account inside a test transaction.
func SeedAccount(t *testing.T, db dbpkg.SQLInterface, name, accountType string) domain.Account {
	t.Helper()

	accountRepo := accountrepo.NewRepoPGS(db)

	account, err := accountRepo.Create(context.Background(), name, accountType)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %v, %v) returned error: %v",
			name, accountType, err)
	}

	return account
}

// SeedUserWallet creates a random LIABILITY account inside a test transaction.
func SeedUserWallet(t *testing.T, db dbpkg.SQLInterface) domain.Account {
	t.Helper()

	return SeedAccount(t, db, randompkg.AccountName(), domain.Liability)
}

// SystemAccounts holds the seeded system counterpart accounts.
type SystemAccounts struct {
	CashReserve      domain.Account
	MarketingExpense domain.Account
	Revenue          domain.Account
}

// SeedSystemAccounts creates the three system accounts with unique
// names so that parallel tests sharing one database do not collide.
func SeedSystemAccounts(t *testing.T, db dbpkg.SQLInterface) SystemAccounts {
	t.Helper()

	suffix := randompkg.String(8)

	return SystemAccounts{
		CashReserve:      SeedAccount(t, db, "Cash_Reserve_"+suffix, domain.Asset),
		MarketingExpense: SeedAccount(t, db, "Marketing_Expense_"+suffix, domain.Expense),
		Revenue:          SeedAccount(t, db, "Revenue_"+suffix, domain.Revenue),
	}
}

// SeedTransaction creates a transaction row inside a test transaction.
func SeedTransaction(t *testing.T, db dbpkg.SQLInterface, key, description string) domain.Transaction {
	t.Helper()

	transactionRepo := transactionrepo.NewTxRepoPGS(db)

	transaction, err := transactionRepo.Create(context.Background(), key, description)
	if err != nil {
		t.Fatalf("transactionRepo.Create(context.Background(), %v, %v) returned error: %v",
			key, description, err)
	}

	return transaction
}

// SeedPosting creates a posting inside a test transaction.
func SeedPosting(t *testing.T, db dbpkg.SQLInterface, transactionID, accountID, amount string) domain.Posting {
	t.Helper()

	postingRepo := postingrepo.NewRepoPGS(db)

	posting, err := postingRepo.Create(context.Background(), transactionID, accountID, amount)
	if err != nil {
		t.Fatalf("postingRepo.Create(context.Background(), %v, %v, %v) returned error: %v",
			transactionID, accountID, amount, err)
	}

	return posting
}

// SeedTopUp credits the user wallet with the given amount through a
// balanced posting pair against the counterpart account.
func SeedTopUp(t *testing.T, db dbpkg.SQLInterface, userID, counterpartID, amount string) domain.Transaction {
	t.Helper()

	transaction := SeedTransaction(t, db, randompkg.IdempotencyKey(), "seed top-up")
	SeedPosting(t, db, transaction.ID, counterpartID, amount)
	SeedPosting(t, db, transaction.ID, userID, "-"+amount)

	return transaction
}
