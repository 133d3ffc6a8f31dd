// Package api exposes the exchange service and spousal provisioning over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/accounts"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ExchangeService is what the handlers need from the exchange service.
type ExchangeService interface {
	Financials(ctx context.Context, exchangeID string) (models.ExchangeFinancials, error)
	Balance(ctx context.Context, exchangeID string) (decimal.Decimal, error)
	RuleStatus(ctx context.Context, exchangeID string) (models.ExchangeRuleStatus, error)
	CanAddProperty(ctx context.Context, exchangeID string, value decimal.Decimal) (models.AddPropertyCheck, error)
	TaxAccountYTD(ctx context.Context, taxAccountID string, start, end time.Time) (models.YTDMetrics, error)
	RecordEntry(ctx context.Context, entry models.LedgerEntry) (models.LedgerEntry, error)
}

// AccountProvisioner creates joint tax accounts.
type AccountProvisioner interface {
	CreateSpousalAccount(ctx context.Context, req accounts.SpousalAccountRequest) (models.TaxAccount, error)
}

type Handler struct {
	exchanges   ExchangeService
	provisioner AccountProvisioner
	logger      *slog.Logger
}

func NewHandler(exchanges ExchangeService, provisioner AccountProvisioner, logger *slog.Logger) *Handler {
	return &Handler{exchanges: exchanges, provisioner: provisioner, logger: logger}
}

// Routes registers every endpoint on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /exchanges/financials", h.financials)
	mux.HandleFunc("GET /exchanges/balance", h.balance)
	mux.HandleFunc("GET /exchanges/rule-status", h.ruleStatus)
	mux.HandleFunc("GET /exchanges/can-add-property", h.canAddProperty)
	mux.HandleFunc("POST /ledger-entries", h.recordEntry)
	mux.HandleFunc("GET /tax-accounts/ytd", h.taxAccountYTD)
	mux.HandleFunc("POST /tax-accounts/spousal", h.createSpousalAccount)

	return mux
}

func (h *Handler) financials(w http.ResponseWriter, r *http.Request) {
	exchangeID := r.URL.Query().Get("exchange_id")

	financials, err := h.exchanges.Financials(r.Context(), exchangeID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, financials)
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	exchangeID := r.URL.Query().Get("exchange_id")

	balance, err := h.exchanges.Balance(r.Context(), exchangeID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		ExchangeID string          `json:"exchange_id"`
		Balance    decimal.Decimal `json:"balance"`
	}{
		ExchangeID: exchangeID,
		Balance:    balance,
	})
}

func (h *Handler) ruleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.exchanges.RuleStatus(r.Context(), r.URL.Query().Get("exchange_id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) canAddProperty(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	value, err := decimal.NewFromString(query.Get("value"))
	if err != nil {
		http.Error(w, "value must be a decimal amount", http.StatusBadRequest)
		return
	}

	check, err := h.exchanges.CanAddProperty(r.Context(), query.Get("exchange_id"), value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

func (h *Handler) recordEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.LedgerEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := h.exchanges.RecordEntry(r.Context(), entry)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) taxAccountYTD(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := time.Parse(time.DateOnly, query.Get("start"))
	if err != nil {
		http.Error(w, "start must be a YYYY-MM-DD date", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(time.DateOnly, query.Get("end"))
	if err != nil {
		http.Error(w, "end must be a YYYY-MM-DD date", http.StatusBadRequest)
		return
	}

	metrics, err := h.exchanges.TaxAccountYTD(r.Context(), query.Get("tax_account_id"), start, end)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (h *Handler) createSpousalAccount(w http.ResponseWriter, r *http.Request) {
	var req accounts.SpousalAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.provisioner.CreateSpousalAccount(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("http.request_failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrExchangeIDRequired),
		errors.Is(err, models.ErrTaxAccountIDRequired),
		errors.Is(err, models.ErrInvalidDateRange),
		errors.Is(err, models.ErrInvalidEntryType),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrProfileIDRequired):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrTaxAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAccountNumberTaken),
		errors.Is(err, models.ErrDuplicateEntry):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
