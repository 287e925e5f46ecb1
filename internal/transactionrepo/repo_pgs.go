// Package transactionrepo manages repository layer of ledger transactions.
//
// The three wallet operations (top-up, bonus, spend) each run inside a
// single database transaction and write a parent transaction row plus a
// balanced pair of postings. Account rows are locked through
// accountrepo.LockMany only, so every operation acquires row locks in
// the same deterministic order.
package transactionrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-petr/points-wallet/internal/accountrepo"
	"github.com/go-petr/points-wallet/internal/domain"
	"github.com/go-petr/points-wallet/internal/postingrepo"
	"github.com/go-petr/points-wallet/pkg/dbpkg"
	"github.com/go-petr/points-wallet/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const uniqueViolation = "23505"

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns transaction RepoPGS bound to an already open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns transaction RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    transactions (idempotency_key, description)
VALUES
    ($1, $2)
RETURNING id, idempotency_key, description, created_at
`

// Create creates the transaction row and then returns it.
//
// The unique constraint on idempotency_key is the authoritative guard
// against concurrent retries; a violation is surfaced as
// domain.ErrDuplicateIdempotencyKey so callers can treat it as an
// already-processed transaction rather than a generic failure.
func (r *RepoPGS) Create(ctx context.Context, idempotencyKey, description string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, idempotencyKey, description)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.IdempotencyKey,
		&t.Description,
		&t.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == uniqueViolation && pqErr.Constraint == "transactions_idempotency_key_key" {
				return t, domain.ErrDuplicateIdempotencyKey
			}
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getByKeyQuery = `
SELECT
	id, idempotency_key, description, created_at
FROM transactions
WHERE idempotency_key = $1
`

// GetByIdempotencyKey returns the transaction committed with the given key.
func (r *RepoPGS) GetByIdempotencyKey(ctx context.Context, key string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByKeyQuery, key)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.IdempotencyKey,
		&t.Description,
		&t.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

// TopUpTx tops up the user wallet with points bought for cash.
//
// It debits the cash reserve account (+amount) and credits the user
// wallet (-amount) within a single database transaction.
func (r *RepoPGS) TopUpTx(ctx context.Context, arg domain.WalletTxParams) (domain.WalletTxResult, error) {
	description := fmt.Sprintf("Wallet top-up: %v points", arg.Amount)
	return r.creditUserTx(ctx, arg, description)
}

// BonusTx awards bonus points to the user wallet.
//
// Same shape as TopUpTx with the marketing expense account as the
// debited counterpart.
func (r *RepoPGS) BonusTx(ctx context.Context, arg domain.WalletTxParams) (domain.WalletTxResult, error) {
	description := fmt.Sprintf("Referral bonus: %v points", arg.Amount)
	return r.creditUserTx(ctx, arg, description)
}

func (r *RepoPGS) creditUserTx(ctx context.Context, arg domain.WalletTxParams, description string) (domain.WalletTxResult, error) {
	var result domain.WalletTxResult

	err := dbpkg.ExecTx(ctx, r.conn, func(tx dbpkg.SQLInterface) error {
		transactionRepo := NewTxRepoPGS(tx)
		accountRepo := accountrepo.NewRepoPGS(tx)
		postingRepo := postingrepo.NewRepoPGS(tx)

		if _, err := accountRepo.LockMany(ctx, []string{arg.CounterpartID, arg.UserID}); err != nil {
			return err
		}

		var err error

		result.Transaction, err = transactionRepo.Create(ctx, arg.IdempotencyKey, description)
		if err != nil {
			return err
		}

		result.CounterpartPosting, err = postingRepo.Create(ctx, result.Transaction.ID, arg.CounterpartID, arg.Amount)
		if err != nil {
			return err
		}

		result.UserPosting, err = postingRepo.Create(ctx, result.Transaction.ID, arg.UserID, "-"+arg.Amount)
		if err != nil {
			return err
		}

		return nil
	})

	return result, err
}

// SpendTx spends points from the user wallet against the revenue account.
//
// The user wallet is a LIABILITY account, so its posting sum is negative
// when points are owed to the user; the spendable balance is the negated
// sum read under the row lock. If it is lower than the requested amount
// the transaction rolls back without writes and ErrInsufficientFunds is
// returned.
func (r *RepoPGS) SpendTx(ctx context.Context, arg domain.WalletTxParams) (domain.WalletTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.WalletTxResult

	err := dbpkg.ExecTx(ctx, r.conn, func(tx dbpkg.SQLInterface) error {
		transactionRepo := NewTxRepoPGS(tx)
		accountRepo := accountrepo.NewRepoPGS(tx)
		postingRepo := postingrepo.NewRepoPGS(tx)

		locked, err := accountRepo.LockMany(ctx, []string{arg.CounterpartID, arg.UserID})
		if err != nil {
			return err
		}

		lockedBalance, err := decimal.NewFromString(locked[arg.UserID].Balance)
		if err != nil {
			l.Error().Err(err).Send()
			return errorspkg.ErrInternal
		}

		amount, err := decimal.NewFromString(arg.Amount)
		if err != nil {
			l.Error().Err(err).Send()
			return domain.ErrInvalidAmount
		}

		available := lockedBalance.Neg()
		if available.LessThan(amount) {
			return domain.ErrInsufficientFunds
		}

		description := fmt.Sprintf("Purchase: %v points", arg.Amount)

		result.Transaction, err = transactionRepo.Create(ctx, arg.IdempotencyKey, description)
		if err != nil {
			return err
		}

		result.UserPosting, err = postingRepo.Create(ctx, result.Transaction.ID, arg.UserID, arg.Amount)
		if err != nil {
			return err
		}

		result.CounterpartPosting, err = postingRepo.Create(ctx, result.Transaction.ID, arg.CounterpartID, "-"+arg.Amount)
		if err != nil {
			return err
		}

		result.RemainingBalance = available.Sub(amount).String()

		return nil
	})

	return result, err
}
