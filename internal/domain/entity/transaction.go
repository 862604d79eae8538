package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownType        = errors.New("unknown transaction type")
	ErrMissingReceiver    = errors.New("transfer requires a receiver")
	ErrSameAccount        = errors.New("sender and receiver must differ")
	ErrParticipantMissing = errors.New("participant account not locked")
)

type TransactionType string

const (
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
	TypeTransfer   TransactionType = "TRANSFER"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeTransfer:
		return true
	default:
		return false
	}
}

type TransactionStatus string

const (
	StatusWaiting  TransactionStatus = "WAITING"
	StatusFinished TransactionStatus = "FINISHED"
	StatusRejected TransactionStatus = "REJECTED"
)

// Outcome is the result of one processing attempt. Postponed is never
// stored: the transaction stays waiting and goes back to the queue.
type Outcome int

const (
	OutcomeFinished Outcome = iota
	OutcomeRejected
	OutcomePostponed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFinished:
		return "finished"
	case OutcomeRejected:
		return "rejected"
	case OutcomePostponed:
		return "postponed"
	default:
		return "unknown"
	}
}

type Transaction struct {
	id        uuid.UUID
	kind      TransactionType
	sender    uuid.UUID
	receiver  uuid.UUID
	amount    decimal.Decimal
	attempts  int
	reason    string
	createdAt time.Time
}

// NewTransaction describes a transaction to be enqueued. Receiver is only
// meaningful for transfers; pass uuid.Nil otherwise.
func NewTransaction(kind TransactionType, sender, receiver uuid.UUID, amount decimal.Decimal) *Transaction {
	return &Transaction{
		kind:      kind,
		sender:    sender,
		receiver:  receiver,
		amount:    amount,
		createdAt: time.Now(),
	}
}

func ReconstructTransaction(
	id uuid.UUID,
	kind TransactionType,
	sender, receiver uuid.UUID,
	amount decimal.Decimal,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:        id,
		kind:      kind,
		sender:    sender,
		receiver:  receiver,
		amount:    amount,
		createdAt: createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID {
	return t.id
}

func (t *Transaction) Type() TransactionType {
	return t.kind
}

func (t *Transaction) Sender() uuid.UUID {
	return t.sender
}

func (t *Transaction) Receiver() uuid.UUID {
	return t.receiver
}

func (t *Transaction) Amount() decimal.Decimal {
	return t.amount
}

// Attempts is the number of times the transaction has been dequeued.
func (t *Transaction) Attempts() int {
	return t.attempts
}

func (t *Transaction) Reason() string {
	return t.reason
}

func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Transaction) Clone() *Transaction {
	c := *t
	return &c
}

// Reject records why the transaction could not be applied.
func (t *Transaction) Reject(err error) {
	t.reason = err.Error()
}

// MarkAttempt is called by the ledger each time the transaction is dequeued.
func (t *Transaction) MarkAttempt() {
	t.attempts++
}

// CopyFrom takes over the fields a worker may change while holding the
// transaction.
func (t *Transaction) CopyFrom(other *Transaction) {
	t.reason = other.reason
}

// Participants returns the accounts the transaction touches: the sender,
// plus the receiver for transfers.
func (t *Transaction) Participants() ([]uuid.UUID, error) {
	switch t.kind {
	case TypeDeposit, TypeWithdrawal:
		return []uuid.UUID{t.sender}, nil
	case TypeTransfer:
		if t.receiver == uuid.Nil {
			return nil, ErrMissingReceiver
		}
		if t.sender == t.receiver {
			return nil, ErrSameAccount
		}
		return []uuid.UUID{t.sender, t.receiver}, nil
	default:
		return nil, ErrUnknownType
	}
}

// Apply runs the balance rule against the locked account copies. On error
// no account in the map has been modified.
func (t *Transaction) Apply(accounts map[uuid.UUID]*Account) error {
	sender, ok := accounts[t.sender]
	if !ok {
		return ErrParticipantMissing
	}

	switch t.kind {
	case TypeDeposit:
		return sender.Credit(t.amount)
	case TypeWithdrawal:
		return sender.Debit(t.amount)
	case TypeTransfer:
		receiver, ok := accounts[t.receiver]
		if !ok {
			return ErrParticipantMissing
		}
		if err := sender.Debit(t.amount); err != nil {
			return err
		}
		return receiver.Credit(t.amount)
	default:
		return ErrUnknownType
	}
}
