// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"sort"

	"github.com/go-petr/points-wallet/internal/domain"
	"github.com/go-petr/points-wallet/pkg/dbpkg"
	"github.com/go-petr/points-wallet/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    accounts (name, type)
VALUES
    ($1, $2)
RETURNING id, name, type, created_at
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, name, accountType string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, name, accountType)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_name_key" {
				return a, domain.ErrAccountAlreadyExists
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	id, name, type, created_at
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByNameQuery = `
SELECT
	id, name, type, created_at
FROM accounts
WHERE name = $1
`

// GetByName returns the account with the given unique name.
func (r *RepoPGS) GetByName(ctx context.Context, name string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByNameQuery, name)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listByTypeQuery = `
SELECT
	id, name, type, created_at
FROM accounts
WHERE type = $1
ORDER BY name
`

// ListByType returns all accounts of the given type ordered by name.
func (r *RepoPGS) ListByType(ctx context.Context, accountType string) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByTypeQuery, accountType)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
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

const lockQuery = `
SELECT
	id, name, type
FROM accounts
WHERE id = $1
FOR UPDATE
`

const lockedBalanceQuery = `
SELECT COALESCE(SUM(amount), 0) AS balance
FROM postings
WHERE account_id = $1
`

// LockMany resolves the given account ids to rows held under exclusive
// row locks and their balances derived within the same transaction.
//
// Ids are deduplicated and locked sequentially in lexicographic order.
// Every transaction locking more than one account must go through
// LockMany so that overlapping lock sets are always requested in the
// same relative sequence; this ordering is the sole mechanism
// preventing circular-wait deadlocks.
//
// LockMany must run inside a transaction, otherwise the acquired locks
// are released as each statement completes.
func (r *RepoPGS) LockMany(ctx context.Context, ids []string) (map[string]domain.LockedAccount, error) {
	l := zerolog.Ctx(ctx)

	unique := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	sorted := make([]string, 0, len(unique))
	for id := range unique {
		sorted = append(sorted, id)
	}

	sort.Strings(sorted)

	locked := make(map[string]domain.LockedAccount, len(sorted))

	for _, id := range sorted {
		var a domain.LockedAccount

		err := r.db.QueryRowContext(ctx, lockQuery, id).Scan(&a.ID, &a.Name, &a.Type)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, domain.ErrAccountNotFound
			}

			l.Error().Err(err).Send()

			return nil, errorspkg.ErrInternal
		}

		// The balance read is covered by the row lock above: no other
		// transaction can add postings for this account until commit.
		err = r.db.QueryRowContext(ctx, lockedBalanceQuery, id).Scan(&a.Balance)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		locked[id] = a
	}

	return locked, nil
}
