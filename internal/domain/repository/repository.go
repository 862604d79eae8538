package repository

//go:generate mockgen -source=repository.go -destination=../../usecase/process/mocks/repository.go -package=mocks

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrLockContended       = errors.New("account is locked by another transaction")
	ErrNotLocked           = errors.New("account is not locked")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotHeld             = errors.New("transaction is not held")
)

// AccountStore owns every account record. Mutation is only possible through
// Lock, Update and Unlock.
type AccountStore interface {
	Create(accounts []*entity.Account) []*entity.Account
	List() []*entity.Account
	Find(ids []uuid.UUID) map[uuid.UUID]*entity.Account
	Lock(ids []uuid.UUID) (map[uuid.UUID]*entity.Account, error)
	Update(accounts []*entity.Account) error
	Unlock(ids []uuid.UUID)
}

// TransactionLedger owns the pending queue and the status of every
// transaction it has accepted.
type TransactionLedger interface {
	Enqueue(txs []*entity.Transaction) []uuid.UUID
	Next() (*entity.Transaction, bool)
	Resolve(tx *entity.Transaction, outcome entity.Outcome) error
	Status(ids []uuid.UUID) map[uuid.UUID]entity.TransactionStatus
	Get(id uuid.UUID) (*entity.Transaction, entity.TransactionStatus, error)
	Pending() int
}

// IdempotencyRepository remembers replies by idempotency key. Lock
// serializes requests sharing a key; the returned func releases it.
type IdempotencyRepository interface {
	Find(key string) *entity.IdempotencyRecord
	Save(record *entity.IdempotencyRecord)
	Lock(key string) (unlock func())
}
