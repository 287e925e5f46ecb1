// Package walletdelivery manages delivery layer of the points wallet.
package walletdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/points-wallet/internal/domain"
	"github.com/go-petr/points-wallet/pkg/errorspkg"
	"github.com/go-petr/points-wallet/pkg/jsonresponse"
)

// IdempotencyKeyHeader carries the client supplied deduplication token.
const IdempotencyKeyHeader = "Idempotency-Key"

// ErrMissingIdempotencyKey indicates that the Idempotency-Key header is absent.
var ErrMissingIdempotencyKey = errors.New("Idempotency-Key header is required")

// Service provides service layer interface needed by wallet delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package walletdelivery
type Service interface {
	TopUp(ctx context.Context, userID, amount, key string) (domain.WalletTxSummary, error)
	Bonus(ctx context.Context, userID, amount, key string) (domain.WalletTxSummary, error)
	Spend(ctx context.Context, userID, amount, key string) (domain.WalletTxSummary, error)
	GetBalance(ctx context.Context, accountID string) (domain.AccountBalance, error)
	ListLiabilityAccounts(ctx context.Context) ([]domain.Account, error)
	LookupByIdempotencyKey(ctx context.Context, key string) (domain.WalletTxSummary, error)
}

// Handler facilitates wallet delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns wallet handler.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

type request struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Amount string `json:"amount" binding:"required,points"`
}

type data struct {
	Transaction domain.WalletTxSummary `json:"transaction"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

func writeError(gctx *gin.Context, err error) {
	switch err {
	case
		domain.ErrInvalidAmount,
		domain.ErrNegativeAmount,
		domain.ErrInsufficientFunds:
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	case
		domain.ErrAccountNotFound,
		domain.ErrTransactionNotFound:
		gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))

		return
	case domain.ErrDuplicateIdempotencyKey:
		gctx.JSON(http.StatusConflict, jsonresponse.Error(err))

		return
	}

	gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
}

func (h *Handler) executeWalletTx(
	gctx *gin.Context,
	op func(ctx context.Context, userID, amount, key string) (domain.WalletTxSummary, error),
) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	key := gctx.GetHeader(IdempotencyKeyHeader)
	if key == "" {
		l.Info().Err(ErrMissingIdempotencyKey).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(ErrMissingIdempotencyKey))

		return
	}

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	summary, err := op(ctx, req.UserID, req.Amount, key)
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	statusCode := http.StatusCreated
	if summary.Replayed {
		statusCode = http.StatusOK
	}

	gctx.JSON(statusCode, response{Data: data{summary}})
}

// TopUp handles http request to buy points for the user wallet.
func (h *Handler) TopUp(gctx *gin.Context) {
	h.executeWalletTx(gctx, h.service.TopUp)
}

// Bonus handles http request to award bonus points to the user wallet.
func (h *Handler) Bonus(gctx *gin.Context) {
	h.executeWalletTx(gctx, h.service.Bonus)
}

// Spend handles http request to spend points from the user wallet.
func (h *Handler) Spend(gctx *gin.Context) {
	h.executeWalletTx(gctx, h.service.Spend)
}

// GetBalance handles http request to read the derived balance of an account.
func (h *Handler) GetBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req struct {
		ID string `uri:"id" binding:"required,uuid"`
	}

	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	balance, err := h.service.GetBalance(ctx, req.ID)
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, struct {
		Data domain.AccountBalance `json:"data"`
	}{balance})
}

// ListAccounts handles http request to list user wallet accounts.
func (h *Handler) ListAccounts(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	accounts, err := h.service.ListLiabilityAccounts(ctx)
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, struct {
		Data []domain.Account `json:"data"`
	}{accounts})
}

// LookupTransaction handles http request to look up a committed
// transaction by its idempotency key.
func (h *Handler) LookupTransaction(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req struct {
		Key string `uri:"key" binding:"required"`
	}

	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	summary, err := h.service.LookupByIdempotencyKey(ctx, req.Key)
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{summary}})
}
