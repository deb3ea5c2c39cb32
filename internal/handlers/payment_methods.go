package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

//go:generate mockgen -source=payment_methods.go -destination=payment_methods_mock.go -package=handlers

// PaymentMethodResolver returns both payment method lists of a receiver.
type PaymentMethodResolver interface {
	Resolve(ctx context.Context, receiverID string) (*models.PaymentMethods, error)
}

// BankAccountManager manages a receiver's bank accounts.
type BankAccountManager interface {
	ListBankAccounts(ctx context.Context, receiverID string) ([]models.BankAccount, error)
	CreateBankAccount(ctx context.Context, receiverID string, account models.BankAccount) (*models.BankAccount, error)
	DeleteBankAccount(ctx context.Context, receiverID, bankAccountID string) error
	BankingDetails(ctx context.Context, bankAccountID string) (*models.BankAccount, error)
}

// BlockchainWalletManager manages a receiver's blockchain wallets.
type BlockchainWalletManager interface {
	ListBlockchainWallets(ctx context.Context, receiverID string) ([]models.BlockchainWallet, error)
	CreateBlockchainWallet(ctx context.Context, receiverID string, wallet models.NewBlockchainWallet) (*models.BlockchainWallet, error)
	DeleteBlockchainWallet(ctx context.Context, receiverID, walletID string) error
	WalletSignMessage(ctx context.Context, receiverID string) (string, error)
}

// PaymentMethodsResponse represents the payment methods of a receiver
// swagger:model PaymentMethodsResponse
type PaymentMethodsResponse struct {
	// Receiver id
	ReceiverID string `json:"receiver_id"`

	// Fiat payout destinations
	BankAccounts []models.BankAccount `json:"bank_accounts"`

	// On-chain destinations
	BlockchainWallets []models.BlockchainWallet `json:"blockchain_wallets"`

	HasBankAccounts      bool `json:"has_bank_accounts"`
	HasBlockchainWallets bool `json:"has_blockchain_wallets"`
	HasPaymentMethods    bool `json:"has_payment_methods"`
}

// BankAccountListResponse represents a receiver's bank accounts
// swagger:model BankAccountListResponse
type BankAccountListResponse struct {
	BankAccounts []models.BankAccount `json:"bank_accounts"`
}

// BlockchainWalletListResponse represents a receiver's blockchain wallets
// swagger:model BlockchainWalletListResponse
type BlockchainWalletListResponse struct {
	BlockchainWallets []models.BlockchainWallet `json:"blockchain_wallets"`
}

// SignMessageResponse represents the message a wallet must sign to prove ownership
// swagger:model SignMessageResponse
type SignMessageResponse struct {
	// Message to sign
	// default: I am the owner of this wallet
	Message string `json:"message"`
}

// receiverFor returns the receiver_id query parameter, or the receiver bound to the user.
func receiverFor(ctx context.Context, r *http.Request, profiles ProfileReader, userID string) (string, error) {
	if id := strings.TrimSpace(r.URL.Query().Get("receiver_id")); id != "" {
		return id, nil
	}
	profile, err := profiles.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if !profile.KYCComplete() {
		return "", fmt.Errorf("%w: no receiver bound to user, complete KYC first", models.ErrNotFound)
	}
	return profile.ReceiverID, nil
}

// NewGetPaymentMethodsHandler returns an HTTP handler listing bank accounts and blockchain wallets.
// @Summary Get payment methods
// @Description Lists the bank accounts and blockchain wallets of a receiver
// @Tags payment-methods
// @Produce json
// @Param receiver_id query string false "Receiver id, defaults to the caller's receiver"
// @Success 200 {object} PaymentMethodsResponse "Payment methods"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No receiver bound"
// @Failure 502 {object} ErrorResponse "Provider failure"
// @Router /payment-methods [get]
// @Security BearerAuth
func NewGetPaymentMethodsHandler(svc PaymentMethodResolver, profiles ProfileReader, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		receiverID, err := receiverFor(r.Context(), r, profiles, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		methods, err := svc.Resolve(r.Context(), receiverID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PaymentMethodsResponse{
			ReceiverID:           methods.ReceiverID,
			BankAccounts:         methods.BankAccounts,
			BlockchainWallets:    methods.BlockchainWallets,
			HasBankAccounts:      methods.HasBankAccounts(),
			HasBlockchainWallets: methods.HasBlockchainWallets(),
			HasPaymentMethods:    methods.HasPaymentMethods(),
		})
	}
}

// NewListBankAccountsHandler returns an HTTP handler listing bank accounts.
// @Summary List bank accounts
// @Tags payment-methods
// @Produce json
// @Param receiver_id query string false "Receiver id, defaults to the caller's receiver"
// @Success 200 {object} BankAccountListResponse "Bank accounts"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Provider failure"
// @Router /bank-accounts [get]
// @Security BearerAuth
func NewListBankAccountsHandler(svc BankAccountManager, profiles ProfileReader, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		receiverID, err := receiverFor(r.Context(), r, profiles, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		accounts, err := svc.ListBankAccounts(r.Context(), receiverID)
		if err != nil {
			writeError(w, err)
			return
		}
		if accounts == nil {
			accounts = []models.BankAccount{}
		}

		writeJSON(w, http.StatusOK, BankAccountListResponse{BankAccounts: accounts})
	}
}

// NewCreateBankAccountHandler returns an HTTP handler registering a bank account.
// @Summary Create bank account
// @Description Registers a bank account with the provider. Accounts are never updated; delete and recreate instead
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param receiver_id query string false "Receiver id, defaults to the caller's receiver"
// @Param request body models.BankAccount true "Bank account"
// @Success 201 {object} models.BankAccount "Created bank account"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Provider failure"
// @Router /bank-accounts [post]
// @Security BearerAuth
func NewCreateBankAccountHandler(svc BankAccountManager, profiles ProfileReader, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		var account models.BankAccount
		if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		receiverID, err := receiverFor(r.Context(), r, profiles, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		created, err := svc.CreateBankAccount(r.Context(), receiverID, account)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewDeleteBankAccountHandler returns an HTTP handler removing a bank account.
// @Summary Delete bank account
// @Tags payment-methods
// @Param id path string true "Bank account id"
// @Param receiver_id query string false "Receiver id, defaults to the caller's receiver"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Router /bank-accounts/{id} [delete]
// @Security BearerAuth
func NewDeleteBankAccountHandler(svc BankAccountManager, profiles ProfileReader, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		receiverID, err := receiverFor(r.Context(), r, profiles, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.DeleteBankAccount(r.Context(), receiverID, chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewGetBankingDetailsHandler returns an HTTP handler exposing the ACH details of a bank account.
// @Summary Get banking details
// @Description Returns routing and account numbers of a bank account, 422 when either is missing
// @Tags payment-methods
// @Produce json
// @Param id path string true "Bank account id"
// @Success 200 {object} models.BankAccount "Bank account"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Failure 422 {object} ErrorResponse "Incomplete bank account"
// @Router /bank-accounts/{id}/banking-details [get]
// @Security BearerAuth
func NewGetBankingDetailsHandler(svc BankAccountManager, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		account, err := svc.BankingDetails(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, account)
	}
}

// NewListBlockchainWalletsHandler returns an HTTP handler listing blockchain wallets.
// @Summary List blockchain wallets
// @Tags payment-methods
// @Produce json
// @Param receiver_id query string false "Receiver id, defaults to the caller's receiver"
// @Success 200 {object} BlockchainWalletListResponse "Blockchain wallets"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Provider failure"
// @Router /blockchain-wallets [get]
// @Security BearerAuth
func NewListBlockchainWalletsHandler(svc BlockchainWalletManager, profiles ProfileReader, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		receiverID, err := receiverFor(r.Context(), r, profiles, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		wallets, err := svc.ListBlockchainWallets(r.Context(), receiverID)
		if err != nil {
			writeError(w, err)
			return
		}
		if wallets == nil {
			wallets = []models.BlockchainWallet{}
		}

		writeJSON(w, http.StatusOK, BlockchainWalletListResponse{BlockchainWallets: wallets})
	}
}

// NewCreateBlockchainWalletHandler returns an HTTP handler registering a blockchain wallet.
// @Summary Create blockchain wallet
// @Description Registers a wallet directly by address, or with a signed ownership proof
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param receiver_id query string false "Receiver id, defaults to the caller's receiver"
// @Param request body models.NewBlockchainWallet true "Blockchain wallet"
// @Success 201 {object} models.BlockchainWallet "Created blockchain wallet"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Provider failure"
// @Router /blockchain-wallets [post]
// @Security BearerAuth
func NewCreateBlockchainWalletHandler(svc BlockchainWalletManager, profiles ProfileReader, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		var wallet models.NewBlockchainWallet
		if err := json.NewDecoder(r.Body).Decode(&wallet); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		receiverID, err := receiverFor(r.Context(), r, profiles, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		created, err := svc.CreateBlockchainWallet(r.Context(), receiverID, wallet)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewDeleteBlockchainWalletHandler returns an HTTP handler removing a blockchain wallet.
// @Summary Delete blockchain wallet
// @Tags payment-methods
// @Param id path string true "Blockchain wallet id"
// @Param receiver_id query string false "Receiver id, defaults to the caller's receiver"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Blockchain wallet not found"
// @Router /blockchain-wallets/{id} [delete]
// @Security BearerAuth
func NewDeleteBlockchainWalletHandler(svc BlockchainWalletManager, profiles ProfileReader, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		receiverID, err := receiverFor(r.Context(), r, profiles, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.DeleteBlockchainWallet(r.Context(), receiverID, chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewGetWalletSignMessageHandler returns an HTTP handler fetching the ownership message to sign.
// @Summary Get wallet sign message
// @Tags payment-methods
// @Produce json
// @Param receiver_id query string false "Receiver id, defaults to the caller's receiver"
// @Success 200 {object} SignMessageResponse "Message to sign"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Provider failure"
// @Router /blockchain-wallets/sign-message [get]
// @Security BearerAuth
func NewGetWalletSignMessageHandler(svc BlockchainWalletManager, profiles ProfileReader, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		receiverID, err := receiverFor(r.Context(), r, profiles, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		message, err := svc.WalletSignMessage(r.Context(), receiverID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SignMessageResponse{Message: message})
	}
}
