package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
	"github.com/Xausdorf/mem-ledger/internal/domain/repository"
)

type Handler struct {
	accounts repository.AccountStore
	ledger   repository.TransactionLedger
	logger   *slog.Logger
}

func NewHandler(accounts repository.AccountStore, ledger repository.TransactionLedger, logger *slog.Logger) *Handler {
	return &Handler{
		accounts: accounts,
		ledger:   ledger,
		logger:   logger,
	}
}

func (h *Handler) HandleCreateAccounts(w http.ResponseWriter, r *http.Request) {
	var req []AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	in := make([]*entity.Account, 0, len(req))
	for _, a := range req {
		in = append(in, entity.NewAccount(a.Name, a.Email))
	}

	created := h.accounts.Create(in)
	h.logger.InfoContext(r.Context(), "accounts created", "count", len(created))
	writeJSON(w, http.StatusOK, accountList(created))
}

func (h *Handler) HandleListAccounts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, accountList(h.accounts.List()))
}

func (h *Handler) HandleGetAccounts(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeIDs(w, r)
	if !ok {
		return
	}

	found := h.accounts.Find(ids)
	resp := make(map[string]AccountResponse, len(found))
	for id, a := range found {
		resp[id.String()] = toAccountResponse(a)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleSubmitTransactions(w http.ResponseWriter, r *http.Request) {
	var req []TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	txs := make([]*entity.Transaction, 0, len(req))
	for i, t := range req {
		tx, err := parseTransaction(t)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("transaction %d: %v", i, err))
			return
		}
		txs = append(txs, tx)
	}

	ids := h.ledger.Enqueue(txs)
	h.logger.InfoContext(r.Context(), "transactions queued", "count", len(ids), "pending", h.ledger.Pending())

	resp := make([]string, len(ids))
	for i, id := range ids {
		resp[i] = id.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleTransactionStatus(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeIDs(w, r)
	if !ok {
		return
	}

	statuses := h.ledger.Status(ids)
	resp := make(map[string]entity.TransactionStatus, len(statuses))
	for id, s := range statuses {
		resp[id.String()] = s
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	tx, status, err := h.ledger.Get(id)
	if errors.Is(err, repository.ErrTransactionNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(tx, status))
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Pending: h.ledger.Pending()})
}

func parseTransaction(t TransactionRequest) (*entity.Transaction, error) {
	if !t.Type.Valid() {
		return nil, entity.ErrUnknownType
	}
	if !t.Amount.IsPositive() {
		return nil, entity.ErrNonPositiveAmount
	}

	sender, err := uuid.Parse(t.Sender)
	if err != nil {
		return nil, errors.New("invalid sender")
	}

	receiver := uuid.Nil
	if t.Type == entity.TypeTransfer {
		if t.Receiver == "" {
			return nil, entity.ErrMissingReceiver
		}
		if receiver, err = uuid.Parse(t.Receiver); err != nil {
			return nil, errors.New("invalid receiver")
		}
		if receiver == sender {
			return nil, entity.ErrSameAccount
		}
	}

	return entity.NewTransaction(t.Type, sender, receiver, t.Amount), nil
}

func decodeIDs(w http.ResponseWriter, r *http.Request) ([]uuid.UUID, bool) {
	var raw []string
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return nil, false
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id "+s)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func accountList(accounts []*entity.Account) []AccountResponse {
	resp := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toAccountResponse(a)
	}
	return resp
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
