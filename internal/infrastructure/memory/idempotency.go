package memory

import (
	"sync"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
	"github.com/Xausdorf/mem-ledger/internal/domain/repository"
)

type keyLock struct {
	mu   sync.Mutex
	refs int
}

type IdempotencyStore struct {
	mu      sync.Mutex
	records map[string]*entity.IdempotencyRecord
	locks   map[string]*keyLock
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{
		records: make(map[string]*entity.IdempotencyRecord),
		locks:   make(map[string]*keyLock),
	}
}

var _ repository.IdempotencyRepository = (*IdempotencyStore)(nil)

func (s *IdempotencyStore) Find(key string) *entity.IdempotencyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[key]
}

// Save keeps the first record stored for a key.
func (s *IdempotencyStore) Save(record *entity.IdempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[record.Key()]; !ok {
		s.records[record.Key()] = record
	}
}

func (s *IdempotencyStore) Lock(key string) func() {
	s.mu.Lock()
	kl, ok := s.locks[key]
	if !ok {
		kl = &keyLock{}
		s.locks[key] = kl
	}
	kl.refs++
	s.mu.Unlock()

	kl.mu.Lock()
	return func() {
		kl.mu.Unlock()

		s.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}
