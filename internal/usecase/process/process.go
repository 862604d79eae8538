package process

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
	"github.com/Xausdorf/mem-ledger/internal/domain/repository"
)

// UseCase applies a single dequeued transaction to the account store.
type UseCase struct {
	accounts repository.AccountStore
	logger   *slog.Logger
}

func NewUseCase(accounts repository.AccountStore, logger *slog.Logger) *UseCase {
	return &UseCase{accounts: accounts, logger: logger}
}

// Execute decides the outcome of one attempt. A rejected transaction has its
// reason set on tx; the caller reports the outcome to the ledger.
func (uc *UseCase) Execute(ctx context.Context, tx *entity.Transaction) entity.Outcome {
	logger := uc.logger.With("transaction_id", tx.ID(), "type", tx.Type(), "attempt", tx.Attempts())

	ids, err := tx.Participants()
	if err != nil {
		return uc.reject(ctx, logger, tx, err)
	}

	if existing := uc.accounts.Find(ids); len(existing) != len(ids) {
		return uc.reject(ctx, logger, tx, repository.ErrAccountNotFound)
	}

	locked, err := uc.accounts.Lock(ids)
	switch {
	case errors.Is(err, repository.ErrLockContended):
		logger.DebugContext(ctx, "accounts busy, postponing", "accounts", ids)
		return entity.OutcomePostponed
	case err != nil:
		return uc.reject(ctx, logger, tx, err)
	}
	defer uc.accounts.Unlock(ids)

	if err := tx.Apply(locked); err != nil {
		return uc.reject(ctx, logger, tx, err)
	}

	changed := make([]*entity.Account, 0, len(locked))
	for _, acc := range locked {
		changed = append(changed, acc)
	}
	if err := uc.accounts.Update(changed); err != nil {
		logger.WarnContext(ctx, "update failed after lock, postponing", "error", err)
		return entity.OutcomePostponed
	}

	logger.DebugContext(ctx, "transaction applied", "amount", tx.Amount().String())
	return entity.OutcomeFinished
}

func (uc *UseCase) reject(ctx context.Context, logger *slog.Logger, tx *entity.Transaction, err error) entity.Outcome {
	tx.Reject(err)
	logger.InfoContext(ctx, "transaction rejected", "reason", err.Error())
	return entity.OutcomeRejected
}
