package entity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
)

func TestAccount_Debit(t *testing.T) {
	acc := entity.ReconstructAccount(uuid.New(), "a", "a@example.com", decimal.RequireFromString("10.50"))

	require.NoError(t, acc.Debit(decimal.RequireFromString("0.50")))
	assert.True(t, decimal.NewFromInt(10).Equal(acc.Balance()))

	assert.ErrorIs(t, acc.Debit(decimal.NewFromInt(11)), entity.ErrInsufficientFunds)
	assert.ErrorIs(t, acc.Debit(decimal.Zero), entity.ErrNonPositiveAmount)
	assert.ErrorIs(t, acc.Debit(decimal.NewFromInt(-1)), entity.ErrNonPositiveAmount)
	assert.True(t, decimal.NewFromInt(10).Equal(acc.Balance()))
}

func TestAccount_Credit(t *testing.T) {
	acc := entity.NewAccount("a", "a@example.com")

	require.NoError(t, acc.Credit(decimal.NewFromInt(3)))
	assert.ErrorIs(t, acc.Credit(decimal.NewFromInt(-3)), entity.ErrNonPositiveAmount)
	assert.True(t, decimal.NewFromInt(3).Equal(acc.Balance()))
}

func TestTransaction_ApplyTransfer(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	accounts := map[uuid.UUID]*entity.Account{
		from: entity.ReconstructAccount(from, "a", "a", decimal.NewFromInt(30)),
		to:   entity.ReconstructAccount(to, "b", "b", decimal.Zero),
	}

	tx := entity.NewTransaction(entity.TypeTransfer, from, to, decimal.NewFromInt(50))
	require.ErrorIs(t, tx.Apply(accounts), entity.ErrInsufficientFunds)
	assert.True(t, decimal.NewFromInt(30).Equal(accounts[from].Balance()))
	assert.True(t, accounts[to].Balance().IsZero())

	tx = entity.NewTransaction(entity.TypeTransfer, from, to, decimal.NewFromInt(30))
	require.NoError(t, tx.Apply(accounts))
	assert.True(t, accounts[from].Balance().IsZero())
	assert.True(t, decimal.NewFromInt(30).Equal(accounts[to].Balance()))
}

func TestTransaction_Participants(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids, err := entity.NewTransaction(entity.TypeDeposit, a, b, decimal.NewFromInt(1)).Participants()
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a}, ids, "receiver is ignored outside transfers")

	ids, err = entity.NewTransaction(entity.TypeTransfer, a, b, decimal.NewFromInt(1)).Participants()
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	_, err = entity.NewTransaction("REFUND", a, uuid.Nil, decimal.NewFromInt(1)).Participants()
	assert.ErrorIs(t, err, entity.ErrUnknownType)
}

func TestTransaction_ApplyWithoutParticipant(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	accounts := map[uuid.UUID]*entity.Account{
		from: entity.ReconstructAccount(from, "a", "a", decimal.NewFromInt(30)),
	}

	tx := entity.NewTransaction(entity.TypeTransfer, from, to, decimal.NewFromInt(10))
	require.ErrorIs(t, tx.Apply(accounts), entity.ErrParticipantMissing)
	assert.True(t, decimal.NewFromInt(30).Equal(accounts[from].Balance()))

	tx = entity.NewTransaction(entity.TypeDeposit, to, uuid.Nil, decimal.NewFromInt(10))
	require.ErrorIs(t, tx.Apply(accounts), entity.ErrParticipantMissing)
}
