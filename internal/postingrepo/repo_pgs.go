// Package postingrepo manages repository layer of postings.
package postingrepo

import (
	"context"

	"github.com/go-petr/points-wallet/internal/domain"
	"github.com/go-petr/points-wallet/pkg/dbpkg"
	"github.com/go-petr/points-wallet/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates posting repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns posting RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    postings (transaction_id, account_id, amount)
VALUES
    ($1, $2, $3)
RETURNING id, transaction_id, account_id, amount, created_at
`

// Create creates the posting and then returns it.
func (r *RepoPGS) Create(ctx context.Context, transactionID, accountID, amount string) (domain.Posting, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, transactionID, accountID, amount)

	var p domain.Posting

	err := row.Scan(
		&p.ID,
		&p.TransactionID,
		&p.AccountID,
		&p.Amount,
		&p.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "postings_account_id_fkey" {
				return p, domain.ErrAccountNotFound
			}
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const listByTransactionQuery = `
SELECT id, transaction_id, account_id, amount, created_at FROM postings
WHERE transaction_id = $1
ORDER BY id
`

// ListByTransaction returns the postings belonging to the given transaction.
func (r *RepoPGS) ListByTransaction(ctx context.Context, transactionID string) ([]domain.Posting, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByTransactionQuery, transactionID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Posting{}

	for rows.Next() {
		var p domain.Posting
		if err := rows.Scan(
			&p.ID,
			&p.TransactionID,
			&p.AccountID,
			&p.Amount,
			&p.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, p)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const sumByAccountQuery = `
SELECT COALESCE(SUM(amount), 0) AS balance
FROM postings
WHERE account_id = $1
`

// SumByAccount derives the balance of the given account as the sum of
// all its postings. There is no stored balance to read instead.
func (r *RepoPGS) SumByAccount(ctx context.Context, accountID string) (string, error) {
	l := zerolog.Ctx(ctx)

	var balance string

	err := r.db.QueryRowContext(ctx, sumByAccountQuery, accountID).Scan(&balance)
	if err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return balance, nil
}
