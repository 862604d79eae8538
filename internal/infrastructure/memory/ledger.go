package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
	"github.com/Xausdorf/mem-ledger/internal/domain/repository"
)

type txRecord struct {
	lock lockFlag
	tx   *entity.Transaction
}

// Ledger is the in-memory transaction queue. Every accepted id lives in
// exactly one of waiting, finished or rejected.
type Ledger struct {
	mu       sync.Mutex
	queue    []*txRecord
	waiting  map[uuid.UUID]*txRecord
	finished map[uuid.UUID]*txRecord
	rejected map[uuid.UUID]*txRecord
}

func NewLedger() *Ledger {
	return &Ledger{
		waiting:  make(map[uuid.UUID]*txRecord),
		finished: make(map[uuid.UUID]*txRecord),
		rejected: make(map[uuid.UUID]*txRecord),
	}
}

var _ repository.TransactionLedger = (*Ledger)(nil)

func (l *Ledger) Enqueue(txs []*entity.Transaction) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(txs))

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, t := range txs {
		rec := &txRecord{
			tx: entity.ReconstructTransaction(uuid.New(), t.Type(), t.Sender(), t.Receiver(), t.Amount(), t.CreatedAt()),
		}
		l.waiting[rec.tx.ID()] = rec
		l.queue = append(l.queue, rec)
		ids = append(ids, rec.tx.ID())
	}
	return ids
}

// Next pops the head of the queue and takes the hold on it. A record that
// cannot be held is not put back.
func (l *Ledger) Next() (*entity.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil, false
	}
	rec := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]

	// A held record is dropped here; its holder re-queues it on Resolve.
	if !rec.lock.TryLock() {
		return nil, false
	}
	rec.tx.MarkAttempt()
	return rec.tx.Clone(), true
}

func (l *Ledger) Resolve(tx *entity.Transaction, outcome entity.Outcome) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, _ := l.lookup(tx.ID())
	if rec == nil {
		return repository.ErrTransactionNotFound
	}
	if !rec.lock.Held() {
		return repository.ErrNotHeld
	}
	defer rec.lock.Unlock()

	switch outcome {
	case entity.OutcomeFinished:
		rec.tx.CopyFrom(tx)
		delete(l.waiting, rec.tx.ID())
		l.finished[rec.tx.ID()] = rec
	case entity.OutcomeRejected:
		rec.tx.CopyFrom(tx)
		delete(l.waiting, rec.tx.ID())
		l.rejected[rec.tx.ID()] = rec
	default:
		l.queue = append(l.queue, rec)
	}
	return nil
}

func (l *Ledger) Status(ids []uuid.UUID) map[uuid.UUID]entity.TransactionStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	statuses := make(map[uuid.UUID]entity.TransactionStatus, len(ids))
	for _, id := range ids {
		if rec, status := l.lookup(id); rec != nil {
			statuses[id] = status
		}
	}
	return statuses
}

func (l *Ledger) Get(id uuid.UUID) (*entity.Transaction, entity.TransactionStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, status := l.lookup(id)
	if rec == nil {
		return nil, "", repository.ErrTransactionNotFound
	}
	return rec.tx.Clone(), status, nil
}

func (l *Ledger) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *Ledger) lookup(id uuid.UUID) (*txRecord, entity.TransactionStatus) {
	if rec, ok := l.waiting[id]; ok {
		return rec, entity.StatusWaiting
	}
	if rec, ok := l.finished[id]; ok {
		return rec, entity.StatusFinished
	}
	if rec, ok := l.rejected[id]; ok {
		return rec, entity.StatusRejected
	}
	return nil, ""
}
