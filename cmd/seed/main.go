// Package main seeds the ledger schema and the system accounts.
//
// The script is idempotent: rerunning it leaves existing rows untouched.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/points-wallet/internal/middleware"
	"github.com/go-petr/points-wallet/pkg/configpkg"
	"github.com/go-petr/points-wallet/pkg/dbpkg"

	_ "github.com/lib/pq"
)

const seedQuery = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS accounts (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    name text UNIQUE NOT NULL,
    type text NOT NULL CHECK (type IN ('ASSET', 'LIABILITY', 'EXPENSE', 'REVENUE')),
    created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS transactions (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    idempotency_key text UNIQUE NOT NULL,
    description text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS postings (
    id bigserial PRIMARY KEY,
    transaction_id uuid NOT NULL REFERENCES transactions (id),
    account_id uuid NOT NULL REFERENCES accounts (id),
    amount numeric NOT NULL,
    created_at timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS postings_account_id_idx ON postings (account_id);

INSERT INTO accounts (name, type)
VALUES
    ('Cash_Reserve', 'ASSET'),
    ('Marketing_Expense', 'EXPENSE'),
    ('Revenue', 'REVENUE'),
    ('User_Wallet_001', 'LIABILITY'),
    ('User_Wallet_002', 'LIABILITY')
ON CONFLICT (name) DO NOTHING;
`

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer db.Close()

	if _, err := db.Exec(seedQuery); err != nil {
		logger.Fatal().Err(err).Msg("cannot seed database")
	}

	logger.Info().Msg("database seeded")
}
