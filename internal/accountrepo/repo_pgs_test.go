//go:build integration

package accountrepo_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-petr/points-wallet/internal/accountrepo"
	"github.com/go-petr/points-wallet/internal/domain"
	"github.com/go-petr/points-wallet/internal/integrationtest"
	"github.com/go-petr/points-wallet/internal/integrationtest/helpers"
	"github.com/go-petr/points-wallet/internal/middleware"
	"github.com/go-petr/points-wallet/pkg/configpkg"
	"github.com/go-petr/points-wallet/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	_ "github.com/lib/pq"
)

var (
	dbDriver string
	dbSource string
	ctx      context.Context
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	logger := middleware.CreateLogger(config)
	ctx = logger.WithContext(context.Background())

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(tx)

	name := randompkg.AccountName()

	account, err := accountRepo.Create(ctx, name, domain.Liability)
	if err != nil {
		t.Fatalf("accountRepo.Create(ctx, %v, %v) returned error: %v", name, domain.Liability, err)
	}

	if account.ID == "" {
		t.Error("account.ID is empty, want non-empty")
	}

	if account.Name != name || account.Type != domain.Liability {
		t.Errorf("account = %+v, want name %v and type %v", account, name, domain.Liability)
	}

	if _, err := accountRepo.Create(ctx, name, domain.Liability); err != domain.ErrAccountAlreadyExists {
		t.Errorf("accountRepo.Create(ctx, %v, %v) returned error %v, want %v",
			name, domain.Liability, err, domain.ErrAccountAlreadyExists)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(tx)

	want := helpers.SeedUserWallet(t, tx)

	got, err := accountRepo.Get(ctx, want.ID)
	if err != nil {
		t.Fatalf("accountRepo.Get(ctx, %v) returned error: %v", want.ID, err)
	}

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, compareCreatedAt); diff != "" {
		t.Errorf("accountRepo.Get(ctx, %v) returned unexpected difference (-want +got):\n%s",
			want.ID, diff)
	}

	const missingID = "00000000-0000-0000-0000-000000000000"

	if _, err := accountRepo.Get(ctx, missingID); err != domain.ErrAccountNotFound {
		t.Errorf("accountRepo.Get(ctx, %v) returned error %v, want %v",
			missingID, err, domain.ErrAccountNotFound)
	}
}

func TestGetByName(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(tx)

	want := helpers.SeedUserWallet(t, tx)

	got, err := accountRepo.GetByName(ctx, want.Name)
	if err != nil {
		t.Fatalf("accountRepo.GetByName(ctx, %v) returned error: %v", want.Name, err)
	}

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, compareCreatedAt); diff != "" {
		t.Errorf("accountRepo.GetByName(ctx, %v) returned unexpected difference (-want +got):\n%s",
			want.Name, diff)
	}

	if _, err := accountRepo.GetByName(ctx, "no_such_account"); err != domain.ErrAccountNotFound {
		t.Errorf("accountRepo.GetByName(ctx, no_such_account) returned error %v, want %v",
			err, domain.ErrAccountNotFound)
	}
}

func TestListByType(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(tx)

	seeded := []domain.Account{
		helpers.SeedUserWallet(t, tx),
		helpers.SeedUserWallet(t, tx),
		helpers.SeedUserWallet(t, tx),
	}

	got, err := accountRepo.ListByType(ctx, domain.Liability)
	if err != nil {
		t.Fatalf("accountRepo.ListByType(ctx, %v) returned error: %v", domain.Liability, err)
	}

	if len(got) < len(seeded) {
		t.Fatalf("len(got) = %v, want at least %v", len(got), len(seeded))
	}

	for i := 1; i < len(got); i++ {
		if got[i-1].Name > got[i].Name {
			t.Errorf("accounts are not ordered by name: %v > %v", got[i-1].Name, got[i].Name)
		}
	}

	for _, a := range got {
		if a.Type != domain.Liability {
			t.Errorf("account %v has type %v, want %v", a.Name, a.Type, domain.Liability)
		}
	}
}

func TestLockMany(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(tx)

	system := helpers.SeedSystemAccounts(t, tx)
	user := helpers.SeedUserWallet(t, tx)

	helpers.SeedTopUp(t, tx, user.ID, system.CashReserve.ID, "500")

	testCases := []struct {
		name    string
		ids     []string
		wantErr error
		check   func(locked map[string]domain.LockedAccount)
	}{
		{
			name: "DerivedBalances",
			ids:  []string{system.CashReserve.ID, user.ID},
			check: func(locked map[string]domain.LockedAccount) {
				if len(locked) != 2 {
					t.Fatalf("len(locked) = %v, want 2", len(locked))
				}
				if locked[user.ID].Balance != "-500" {
					t.Errorf("user balance = %v, want -500", locked[user.ID].Balance)
				}
				if locked[system.CashReserve.ID].Balance != "500" {
					t.Errorf("cash reserve balance = %v, want 500", locked[system.CashReserve.ID].Balance)
				}
			},
		},
		{
			name: "DeduplicatesIds",
			ids:  []string{user.ID, user.ID, user.ID},
			check: func(locked map[string]domain.LockedAccount) {
				if len(locked) != 1 {
					t.Fatalf("len(locked) = %v, want 1", len(locked))
				}
				if locked[user.ID].Name != user.Name {
					t.Errorf("locked name = %v, want %v", locked[user.ID].Name, user.Name)
				}
			},
		},
		{
			name: "ZeroBalanceWithoutPostings",
			ids:  []string{system.Revenue.ID},
			check: func(locked map[string]domain.LockedAccount) {
				if locked[system.Revenue.ID].Balance != "0" {
					t.Errorf("revenue balance = %v, want 0", locked[system.Revenue.ID].Balance)
				}
			},
		},
		{
			name:    "AccountNotFound",
			ids:     []string{user.ID, "00000000-0000-0000-0000-000000000000"},
			wantErr: domain.ErrAccountNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			locked, err := accountRepo.LockMany(ctx, tc.ids)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf("accountRepo.LockMany(ctx, %v) returned error: %v", tc.ids, err)
			}

			if tc.wantErr != nil {
				t.Fatalf("accountRepo.LockMany(ctx, %v) returned nil error, want %v", tc.ids, tc.wantErr)
			}

			tc.check(locked)
		})
	}
}

// TestLockManyOppositeOrders locks the same account pair from two
// concurrent transactions that pass the ids in opposite orders. The
// deterministic lock order inside LockMany must prevent the
// circular wait that would otherwise deadlock the pair.
func TestLockManyOppositeOrders(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)

	system := helpers.SeedSystemAccounts(t, db)
	user := helpers.SeedUserWallet(t, db)

	pairAB := []string{system.CashReserve.ID, user.ID}
	pairBA := []string{user.ID, system.CashReserve.ID}

	const rounds = 20

	for i := 0; i < rounds; i++ {
		var wg sync.WaitGroup

		errs := make(chan error, 2)

		for _, ids := range [][]string{pairAB, pairBA} {
			wg.Add(1)

			go func(ids []string) {
				defer wg.Done()

				tx, err := db.BeginTx(ctx, nil)
				if err != nil {
					errs <- err
					return
				}

				accountRepo := accountrepo.NewRepoPGS(tx)

				if _, err := accountRepo.LockMany(ctx, ids); err != nil {
					_ = tx.Rollback()
					errs <- err

					return
				}

				errs <- tx.Commit()
			}(ids)
		}

		wg.Wait()
		close(errs)

		for err := range errs {
			if err != nil {
				t.Fatalf("concurrent LockMany returned error: %v", err)
			}
		}
	}
}
