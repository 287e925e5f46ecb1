// Package walletservice manages business logic layer of the points wallet.
package walletservice

import (
	"context"

	"github.com/go-petr/points-wallet/internal/domain"
	"github.com/go-petr/points-wallet/pkg/errorspkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Statuses reported in wallet transaction summaries.
const (
	StatusTopUp    = "Top-up successful"
	StatusBonus    = "Bonus awarded successfully"
	StatusSpend    = "Spend successful"
	StatusReplayed = "Transaction already processed (idempotent replay)"
)

// Repo provides data access layer interface needed by wallet service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package walletservice
type Repo interface {
	TopUpTx(ctx context.Context, arg domain.WalletTxParams) (domain.WalletTxResult, error)
	BonusTx(ctx context.Context, arg domain.WalletTxParams) (domain.WalletTxResult, error)
	SpendTx(ctx context.Context, arg domain.WalletTxParams) (domain.WalletTxResult, error)
	GetByIdempotencyKey(ctx context.Context, key string) (domain.Transaction, error)
}

// AccountRepo provides account data access interface needed by wallet service layer.
type AccountRepo interface {
	Get(ctx context.Context, id string) (domain.Account, error)
	GetByName(ctx context.Context, name string) (domain.Account, error)
	ListByType(ctx context.Context, accountType string) ([]domain.Account, error)
}

// PostingRepo provides posting data access interface needed by wallet service layer.
type PostingRepo interface {
	ListByTransaction(ctx context.Context, transactionID string) ([]domain.Posting, error)
	SumByAccount(ctx context.Context, accountID string) (string, error)
}

// SystemAccounts holds the ids of the well-known counterpart accounts.
//
// System accounts are never renamed in normal operation, so the name to
// id mapping is resolved once at process start instead of per request.
type SystemAccounts struct {
	CashReserveID      string
	MarketingExpenseID string
	RevenueID          string
}

// ResolveSystemAccounts looks up the system counterpart accounts by
// their well-known names.
func ResolveSystemAccounts(ctx context.Context, accountRepo AccountRepo) (SystemAccounts, error) {
	var sa SystemAccounts

	cash, err := accountRepo.GetByName(ctx, domain.CashReserveAccount)
	if err != nil {
		return sa, err
	}

	marketing, err := accountRepo.GetByName(ctx, domain.MarketingExpenseAccount)
	if err != nil {
		return sa, err
	}

	revenue, err := accountRepo.GetByName(ctx, domain.RevenueAccount)
	if err != nil {
		return sa, err
	}

	sa.CashReserveID = cash.ID
	sa.MarketingExpenseID = marketing.ID
	sa.RevenueID = revenue.ID

	return sa, nil
}

// Service facilitates wallet service layer logic.
type Service struct {
	repo        Repo
	accountRepo AccountRepo
	postingRepo PostingRepo
	system      SystemAccounts
}

// New returns wallet service struct to manage wallet business logic.
func New(repo Repo, accountRepo AccountRepo, postingRepo PostingRepo, system SystemAccounts) *Service {
	return &Service{
		repo:        repo,
		accountRepo: accountRepo,
		postingRepo: postingRepo,
		system:      system,
	}
}

func validAmount(ctx context.Context, amount string) error {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		l.Info().Msgf("non-positive amount: %v", amount)
		return domain.ErrNegativeAmount
	}

	return nil
}

// replay returns the summary of the transaction already committed with
// the given key. The amount is recovered from the stored postings since
// balances and amounts are never persisted outside the ledger.
func (s *Service) replay(ctx context.Context, key string) (domain.WalletTxSummary, error) {
	l := zerolog.Ctx(ctx)

	var summary domain.WalletTxSummary

	transaction, err := s.repo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		return summary, err
	}

	postings, err := s.postingRepo.ListByTransaction(ctx, transaction.ID)
	if err != nil {
		return summary, err
	}

	if len(postings) == 0 {
		l.Error().Msgf("transaction %v has no postings", transaction.ID)
		return summary, errorspkg.ErrInternal
	}

	amount, err := decimal.NewFromString(postings[0].Amount)
	if err != nil {
		l.Error().Err(err).Send()
		return summary, errorspkg.ErrInternal
	}

	summary = domain.WalletTxSummary{
		TransactionID: transaction.ID,
		Status:        StatusReplayed,
		Amount:        amount.Abs().String(),
		Replayed:      true,
		CreatedAt:     transaction.CreatedAt,
	}

	return summary, nil
}

// execute runs the wallet transaction unless the idempotency key is
// already used, in which case the stored summary is replayed.
//
// The pre-check leaves a race window for concurrent requests with the
// same key; the unique constraint at insert time is the authoritative
// guard, and losing that race resolves to a replay as well.
func (s *Service) execute(
	ctx context.Context,
	userID, amount, key string,
	run func(context.Context, domain.WalletTxParams) (domain.WalletTxResult, error),
	counterpartID, status string,
) (domain.WalletTxSummary, error) {
	if err := validAmount(ctx, amount); err != nil {
		return domain.WalletTxSummary{}, err
	}

	summary, err := s.replay(ctx, key)
	if err == nil {
		return summary, nil
	}

	if err != domain.ErrTransactionNotFound {
		return domain.WalletTxSummary{}, err
	}

	arg := domain.WalletTxParams{
		UserID:         userID,
		CounterpartID:  counterpartID,
		Amount:         amount,
		IdempotencyKey: key,
	}

	result, err := run(ctx, arg)
	if err == domain.ErrDuplicateIdempotencyKey {
		if summary, replayErr := s.replay(ctx, key); replayErr == nil {
			return summary, nil
		}

		return domain.WalletTxSummary{}, err
	}

	if err != nil {
		return domain.WalletTxSummary{}, err
	}

	return domain.WalletTxSummary{
		TransactionID:    result.Transaction.ID,
		Status:           status,
		Amount:           amount,
		RemainingBalance: result.RemainingBalance,
		CreatedAt:        result.Transaction.CreatedAt,
	}, nil
}

// TopUp credits the user wallet with points bought for cash.
func (s *Service) TopUp(ctx context.Context, userID, amount, key string) (domain.WalletTxSummary, error) {
	return s.execute(ctx, userID, amount, key, s.repo.TopUpTx, s.system.CashReserveID, StatusTopUp)
}

// Bonus credits the user wallet with points from the marketing budget.
func (s *Service) Bonus(ctx context.Context, userID, amount, key string) (domain.WalletTxSummary, error) {
	return s.execute(ctx, userID, amount, key, s.repo.BonusTx, s.system.MarketingExpenseID, StatusBonus)
}

// Spend debits the user wallet against the revenue account.
func (s *Service) Spend(ctx context.Context, userID, amount, key string) (domain.WalletTxSummary, error) {
	return s.execute(ctx, userID, amount, key, s.repo.SpendTx, s.system.RevenueID, StatusSpend)
}

// GetBalance derives the account balance from its full posting history.
// For LIABILITY accounts the negated sum is reported as available points.
func (s *Service) GetBalance(ctx context.Context, accountID string) (domain.AccountBalance, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		return domain.AccountBalance{}, err
	}

	balance, err := s.postingRepo.SumByAccount(ctx, accountID)
	if err != nil {
		return domain.AccountBalance{}, err
	}

	res := domain.AccountBalance{
		AccountID: account.ID,
		Name:      account.Name,
		Type:      account.Type,
		Balance:   balance,
	}

	if account.Type == domain.Liability {
		balanceDecimal, err := decimal.NewFromString(balance)
		if err != nil {
			l.Error().Err(err).Send()
			return domain.AccountBalance{}, errorspkg.ErrInternal
		}

		res.AvailablePoints = balanceDecimal.Neg().String()
	}

	return res, nil
}

// ListLiabilityAccounts returns all user wallet accounts ordered by name.
func (s *Service) ListLiabilityAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListByType(ctx, domain.Liability)
}

// LookupByIdempotencyKey returns the summary of a previously committed
// transaction or domain.ErrTransactionNotFound.
func (s *Service) LookupByIdempotencyKey(ctx context.Context, key string) (domain.WalletTxSummary, error) {
	return s.replay(ctx, key)
}
