package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

//go:generate mockgen -source=history.go -destination=history_mock.go -package=handlers

// HistoryLister defines the interface that the history service must implement.
type HistoryLister interface {
	ListTransactions(ctx context.Context, walletAddress string, params models.ListParams) ([]models.Transaction, *models.Pagination, error)
	ListPayins(ctx context.Context, receiverID string, params models.ListParams) (*models.PayinPage, error)
}

// TransactionListResponse represents a page of payouts sent from a wallet
// swagger:model TransactionListResponse
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   models.Pagination    `json:"pagination"`
}

// PayinListResponse represents a page of payins
// swagger:model PayinListResponse
type PayinListResponse struct {
	Payins     []models.Payin    `json:"payins"`
	Pagination models.Pagination `json:"pagination"`
}

// NewListTransactionsHandler returns an HTTP handler listing offramp history for a wallet.
// @Summary List transactions
// @Description Lists payouts whose sender wallet matches wallet_address, case-insensitively
// @Tags history
// @Produce json
// @Param wallet_address query string true "Sender wallet address"
// @Param limit query int false "Page size (1-100)"
// @Param offset query int false "Rows to skip"
// @Param starting_after query string false "Cursor"
// @Param ending_before query string false "Cursor"
// @Success 200 {object} TransactionListResponse "Transactions"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Provider failure"
// @Router /payouts [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc HistoryLister, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		wallet := strings.TrimSpace(r.URL.Query().Get("wallet_address"))
		if wallet == "" {
			writeBadRequest(w, "wallet_address is required")
			return
		}

		params, err := parseListParams(r)
		if err != nil {
			writeError(w, err)
			return
		}

		txs, page, err := svc.ListTransactions(r.Context(), wallet, params)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := TransactionListResponse{Transactions: txs}
		if resp.Transactions == nil {
			resp.Transactions = []models.Transaction{}
		}
		if page != nil {
			resp.Pagination = *page
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewListPayinsHandler returns an HTTP handler listing onramp history.
// @Summary List payins
// @Tags history
// @Produce json
// @Param receiver_id query string false "Receiver id, defaults to the caller's receiver"
// @Param limit query int false "Page size (1-100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} PayinListResponse "Payins"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Provider failure"
// @Router /payins [get]
// @Security BearerAuth
func NewListPayinsHandler(svc HistoryLister, profiles ProfileReader, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		params, err := parseListParams(r)
		if err != nil {
			writeError(w, err)
			return
		}

		receiverID, err := receiverFor(r.Context(), r, profiles, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		page, err := svc.ListPayins(r.Context(), receiverID, params)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := PayinListResponse{Payins: page.Data, Pagination: page.Pagination}
		if resp.Payins == nil {
			resp.Payins = []models.Payin{}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
