package memory

import (
	"bytes"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
	"github.com/Xausdorf/mem-ledger/internal/domain/repository"
)

type accountRecord struct {
	lock    lockFlag
	account *entity.Account
}

// AccountStore keeps accounts in memory. The per-record lockFlag decides
// which worker may change a record; mu only keeps reads and writes of the
// record fields consistent.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*accountRecord
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[uuid.UUID]*accountRecord)}
}

var _ repository.AccountStore = (*AccountStore)(nil)

func (s *AccountStore) Create(accounts []*entity.Account) []*entity.Account {
	created := make([]*entity.Account, 0, len(accounts))

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range accounts {
		acc := entity.ReconstructAccount(uuid.New(), a.Name(), a.Email(), decimal.Zero)
		s.accounts[acc.ID()] = &accountRecord{account: acc}
		created = append(created, acc.Clone())
	}
	return created
}

func (s *AccountStore) List() []*entity.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*entity.Account, 0, len(s.accounts))
	for _, rec := range s.accounts {
		all = append(all, rec.account.Clone())
	}
	return all
}

func (s *AccountStore) Find(ids []uuid.UUID) map[uuid.UUID]*entity.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[uuid.UUID]*entity.Account, len(ids))
	for _, id := range ids {
		if rec, ok := s.accounts[id]; ok {
			found[id] = rec.account.Clone()
		}
	}
	return found
}

// Lock takes an exclusive hold on every id or on none of them. Ids are
// acquired in byte order so two callers sharing accounts always race for
// the same first lock.
func (s *AccountStore) Lock(ids []uuid.UUID) (map[uuid.UUID]*entity.Account, error) {
	ordered := canonical(ids)

	s.mu.RLock()
	defer s.mu.RUnlock()

	locked := make([]*accountRecord, 0, len(ordered))
	release := func() {
		for _, rec := range locked {
			rec.lock.Unlock()
		}
	}

	found := make(map[uuid.UUID]*entity.Account, len(ordered))
	for _, id := range ordered {
		rec, ok := s.accounts[id]
		if !ok {
			release()
			return map[uuid.UUID]*entity.Account{}, repository.ErrAccountNotFound
		}
		if !rec.lock.TryLock() {
			release()
			return map[uuid.UUID]*entity.Account{}, repository.ErrLockContended
		}
		locked = append(locked, rec)
		found[id] = rec.account.Clone()
	}
	return found, nil
}

// Update writes every account back, or none if any of them is unknown or
// not currently locked. All records change under one write lock so readers
// never see half of a transfer.
func (s *AccountStore) Update(accounts []*entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*accountRecord, 0, len(accounts))
	for _, a := range accounts {
		rec, ok := s.accounts[a.ID()]
		if !ok {
			return repository.ErrAccountNotFound
		}
		if !rec.lock.Held() {
			return repository.ErrNotLocked
		}
		records = append(records, rec)
	}

	for i, a := range accounts {
		records[i].account = entity.ReconstructAccount(a.ID(), a.Name(), a.Email(), a.Balance())
	}
	return nil
}

func (s *AccountStore) Unlock(ids []uuid.UUID) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range ids {
		if rec, ok := s.accounts[id]; ok {
			rec.lock.Unlock()
		}
	}
}

func canonical(ids []uuid.UUID) []uuid.UUID {
	ordered := slices.Clone(ids)
	slices.SortFunc(ordered, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return slices.Compact(ordered)
}
