package entity

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

type Account struct {
	id      uuid.UUID
	name    string
	email   string
	balance decimal.Decimal
}

// NewAccount describes an account to be created. The store assigns the id
// and starts the balance at zero.
func NewAccount(name, email string) *Account {
	return &Account{
		name:    name,
		email:   email,
		balance: decimal.Zero,
	}
}

func ReconstructAccount(id uuid.UUID, name, email string, balance decimal.Decimal) *Account {
	return &Account{
		id:      id,
		name:    name,
		email:   email,
		balance: balance,
	}
}

func (a *Account) ID() uuid.UUID {
	return a.id
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Clone() *Account {
	c := *a
	return &c
}

func (a *Account) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}
