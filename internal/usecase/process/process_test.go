package process_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
	"github.com/Xausdorf/mem-ledger/internal/domain/repository"
	"github.com/Xausdorf/mem-ledger/internal/usecase/process"
	"github.com/Xausdorf/mem-ledger/internal/usecase/process/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func account(id uuid.UUID, balance int64) *entity.Account {
	return entity.ReconstructAccount(id, "name", "mail@example.com", decimal.NewFromInt(balance))
}

func TestProcessUseCase_Execute_Deposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountStore(ctrl)
	uc := process.NewUseCase(accounts, discardLogger())

	id := uuid.New()
	ids := []uuid.UUID{id}
	tx := entity.NewTransaction(entity.TypeDeposit, id, uuid.Nil, decimal.NewFromInt(10))

	accounts.EXPECT().Find(ids).Return(map[uuid.UUID]*entity.Account{id: account(id, 0)})
	accounts.EXPECT().Lock(ids).Return(map[uuid.UUID]*entity.Account{id: account(id, 0)}, nil)
	accounts.EXPECT().Update(gomock.Any()).DoAndReturn(func(changed []*entity.Account) error {
		require.Len(t, changed, 1)
		assert.True(t, decimal.NewFromInt(10).Equal(changed[0].Balance()))
		return nil
	})
	accounts.EXPECT().Unlock(ids)

	outcome := uc.Execute(context.Background(), tx)

	assert.Equal(t, entity.OutcomeFinished, outcome)
	assert.Empty(t, tx.Reason())
}

func TestProcessUseCase_Execute_Transfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountStore(ctrl)
	uc := process.NewUseCase(accounts, discardLogger())

	fromID := uuid.New()
	toID := uuid.New()
	ids := []uuid.UUID{fromID, toID}
	tx := entity.NewTransaction(entity.TypeTransfer, fromID, toID, decimal.NewFromInt(40))

	accounts.EXPECT().Find(ids).Return(map[uuid.UUID]*entity.Account{
		fromID: account(fromID, 100),
		toID:   account(toID, 0),
	})
	accounts.EXPECT().Lock(ids).Return(map[uuid.UUID]*entity.Account{
		fromID: account(fromID, 100),
		toID:   account(toID, 0),
	}, nil)
	accounts.EXPECT().Update(gomock.Any()).DoAndReturn(func(changed []*entity.Account) error {
		require.Len(t, changed, 2)
		balances := map[uuid.UUID]decimal.Decimal{}
		for _, a := range changed {
			balances[a.ID()] = a.Balance()
		}
		assert.True(t, decimal.NewFromInt(60).Equal(balances[fromID]))
		assert.True(t, decimal.NewFromInt(40).Equal(balances[toID]))
		return nil
	})
	accounts.EXPECT().Unlock(ids)

	assert.Equal(t, entity.OutcomeFinished, uc.Execute(context.Background(), tx))
}

func TestProcessUseCase_Execute_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountStore(ctrl)
	uc := process.NewUseCase(accounts, discardLogger())

	id := uuid.New()
	ids := []uuid.UUID{id}
	tx := entity.NewTransaction(entity.TypeWithdrawal, id, uuid.Nil, decimal.NewFromInt(100000))

	accounts.EXPECT().Find(ids).Return(map[uuid.UUID]*entity.Account{id: account(id, 0)})
	accounts.EXPECT().Lock(ids).Return(map[uuid.UUID]*entity.Account{id: account(id, 0)}, nil)
	accounts.EXPECT().Unlock(ids)

	outcome := uc.Execute(context.Background(), tx)

	assert.Equal(t, entity.OutcomeRejected, outcome)
	assert.Equal(t, "insufficient funds", tx.Reason())
}

func TestProcessUseCase_Execute_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountStore(ctrl)
	uc := process.NewUseCase(accounts, discardLogger())

	fromID := uuid.New()
	toID := uuid.New()
	tx := entity.NewTransaction(entity.TypeTransfer, fromID, toID, decimal.NewFromInt(1))

	accounts.EXPECT().Find([]uuid.UUID{fromID, toID}).Return(map[uuid.UUID]*entity.Account{
		fromID: account(fromID, 100),
	})

	outcome := uc.Execute(context.Background(), tx)

	assert.Equal(t, entity.OutcomeRejected, outcome)
	assert.Equal(t, repository.ErrAccountNotFound.Error(), tx.Reason())
}

func TestProcessUseCase_Execute_LockContended(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountStore(ctrl)
	uc := process.NewUseCase(accounts, discardLogger())

	id := uuid.New()
	ids := []uuid.UUID{id}
	tx := entity.NewTransaction(entity.TypeDeposit, id, uuid.Nil, decimal.NewFromInt(5))

	accounts.EXPECT().Find(ids).Return(map[uuid.UUID]*entity.Account{id: account(id, 0)})
	accounts.EXPECT().Lock(ids).Return(map[uuid.UUID]*entity.Account{}, repository.ErrLockContended)

	assert.Equal(t, entity.OutcomePostponed, uc.Execute(context.Background(), tx))
	assert.Empty(t, tx.Reason())
}

func TestProcessUseCase_Execute_UpdateLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountStore(ctrl)
	uc := process.NewUseCase(accounts, discardLogger())

	id := uuid.New()
	ids := []uuid.UUID{id}
	tx := entity.NewTransaction(entity.TypeDeposit, id, uuid.Nil, decimal.NewFromInt(5))

	accounts.EXPECT().Find(ids).Return(map[uuid.UUID]*entity.Account{id: account(id, 0)})
	accounts.EXPECT().Lock(ids).Return(map[uuid.UUID]*entity.Account{id: account(id, 0)}, nil)
	accounts.EXPECT().Update(gomock.Any()).Return(repository.ErrNotLocked)
	accounts.EXPECT().Unlock(ids)

	assert.Equal(t, entity.OutcomePostponed, uc.Execute(context.Background(), tx))
}

func TestProcessUseCase_Execute_InvalidTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountStore(ctrl)
	uc := process.NewUseCase(accounts, discardLogger())

	id := uuid.New()

	self := entity.NewTransaction(entity.TypeTransfer, id, id, decimal.NewFromInt(1))
	assert.Equal(t, entity.OutcomeRejected, uc.Execute(context.Background(), self))
	assert.Equal(t, entity.ErrSameAccount.Error(), self.Reason())

	noReceiver := entity.NewTransaction(entity.TypeTransfer, id, uuid.Nil, decimal.NewFromInt(1))
	assert.Equal(t, entity.OutcomeRejected, uc.Execute(context.Background(), noReceiver))
	assert.Equal(t, entity.ErrMissingReceiver.Error(), noReceiver.Reason())
}
