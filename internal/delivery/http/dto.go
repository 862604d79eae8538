package http

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
)

type AccountRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AccountResponse struct {
	AccountNumber string          `json:"account_number"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Balance       decimal.Decimal `json:"balance"`
}

type TransactionRequest struct {
	Type     entity.TransactionType `json:"transaction_type"`
	Sender   string                 `json:"sender"`
	Receiver string                 `json:"receiver,omitempty"`
	Amount   decimal.Decimal        `json:"amount"`
}

type TransactionResponse struct {
	ID        string                   `json:"id"`
	Type      entity.TransactionType   `json:"transaction_type"`
	Sender    string                   `json:"sender"`
	Receiver  string                   `json:"receiver,omitempty"`
	Amount    decimal.Decimal          `json:"amount"`
	Status    entity.TransactionStatus `json:"status"`
	Attempts  int                      `json:"attempts"`
	Reason    string                   `json:"reason,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Pending int    `json:"pending"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		AccountNumber: a.ID().String(),
		Name:          a.Name(),
		Email:         a.Email(),
		Balance:       a.Balance(),
	}
}

func toTransactionResponse(t *entity.Transaction, status entity.TransactionStatus) TransactionResponse {
	resp := TransactionResponse{
		ID:        t.ID().String(),
		Type:      t.Type(),
		Sender:    t.Sender().String(),
		Amount:    t.Amount(),
		Status:    status,
		Attempts:  t.Attempts(),
		Reason:    t.Reason(),
		CreatedAt: t.CreatedAt(),
	}
	if t.Type() == entity.TypeTransfer {
		resp.Receiver = t.Receiver().String()
	}
	return resp
}
