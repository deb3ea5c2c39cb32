package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

func TestGetPaymentMethodsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := NewMockPaymentMethodResolver(ctrl)
	mockProfiles := NewMockProfileReader(ctrl)

	tests := []struct {
		name           string
		query          string
		setup          func()
		expectedStatus int
		check          func(t *testing.T, resp PaymentMethodsResponse)
	}{
		{
			name:  "receiver from profile",
			query: "",
			setup: func() {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), "user-1").
					Return(&models.Profile{UserID: "user-1", ReceiverID: "re_1"}, nil)
				mockResolver.EXPECT().Resolve(gomock.Any(), "re_1").
					Return(&models.PaymentMethods{
						ReceiverID:        "re_1",
						BankAccounts:      []models.BankAccount{{ID: "ba_1", Type: "ach"}},
						BlockchainWallets: []models.BlockchainWallet{},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp PaymentMethodsResponse) {
				assert.Equal(t, "re_1", resp.ReceiverID)
				assert.True(t, resp.HasBankAccounts)
				assert.False(t, resp.HasBlockchainWallets)
				assert.True(t, resp.HasPaymentMethods)
				assert.NotNil(t, resp.BlockchainWallets)
			},
		},
		{
			name:  "explicit receiver with no methods",
			query: "?receiver_id=re_2",
			setup: func() {
				mockResolver.EXPECT().Resolve(gomock.Any(), "re_2").
					Return(&models.PaymentMethods{
						ReceiverID:        "re_2",
						BankAccounts:      []models.BankAccount{},
						BlockchainWallets: []models.BlockchainWallet{},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp PaymentMethodsResponse) {
				assert.False(t, resp.HasPaymentMethods)
				assert.Empty(t, resp.BankAccounts)
			},
		},
		{
			name: "no receiver bound",
			setup: func() {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), "user-1").
					Return(&models.Profile{UserID: "user-1"}, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "provider failure",
			query: "?receiver_id=re_3",
			setup: func() {
				mockResolver.EXPECT().Resolve(gomock.Any(), "re_3").
					Return(nil, &models.ProviderError{StatusCode: http.StatusServiceUnavailable, Summary: "down"})
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			handler := NewGetPaymentMethodsHandler(mockResolver, mockProfiles, userIDGetter("user-1"))
			req := httptest.NewRequest(http.MethodGet, "/payment-methods"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.check != nil {
				var got PaymentMethodsResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				tt.check(t, got)
			}
		})
	}
}

func TestBankAccountHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := NewMockBankAccountManager(ctrl)
	mockProfiles := NewMockProfileReader(ctrl)
	getter := userIDGetter("user-1")

	router := chi.NewRouter()
	router.Get("/bank-accounts", NewListBankAccountsHandler(mockAccounts, mockProfiles, getter))
	router.Post("/bank-accounts", NewCreateBankAccountHandler(mockAccounts, mockProfiles, getter))
	router.Delete("/bank-accounts/{id}", NewDeleteBankAccountHandler(mockAccounts, mockProfiles, getter))
	router.Get("/bank-accounts/{id}/banking-details", NewGetBankingDetailsHandler(mockAccounts, getter))

	account := models.BankAccount{
		ID:            "ba_1",
		Type:          "ach",
		Name:          "Checking",
		RoutingNumber: "021000021",
		AccountNumber: "123456789",
	}

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		setup          func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/bank-accounts?receiver_id=re_1",
			setup: func() {
				mockAccounts.EXPECT().ListBankAccounts(gomock.Any(), "re_1").Return([]models.BankAccount{account}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/bank-accounts?receiver_id=re_1",
			body:   `{"type":"ach","name":"Checking","routing_number":"021000021","account_number":"123456789"}`,
			setup: func() {
				mockAccounts.EXPECT().CreateBankAccount(gomock.Any(), "re_1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, in models.BankAccount) (*models.BankAccount, error) {
						assert.Equal(t, "021000021", in.RoutingNumber)
						return &account, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create with invalid json",
			method:         http.MethodPost,
			target:         "/bank-accounts?receiver_id=re_1",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeValidation,
		},
		{
			name:   "create rejected by validation",
			method: http.MethodPost,
			target: "/bank-accounts?receiver_id=re_1",
			body:   `{"type":"ach","name":"Checking"}`,
			setup: func() {
				mockAccounts.EXPECT().CreateBankAccount(gomock.Any(), "re_1", gomock.Any()).
					Return(nil, models.ValidationError("routing_number is required for ach"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeValidation,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/bank-accounts/ba_1?receiver_id=re_1",
			setup: func() {
				mockAccounts.EXPECT().DeleteBankAccount(gomock.Any(), "re_1", "ba_1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "delete unknown",
			method: http.MethodDelete,
			target: "/bank-accounts/ba_x?receiver_id=re_1",
			setup: func() {
				mockAccounts.EXPECT().DeleteBankAccount(gomock.Any(), "re_1", "ba_x").
					Return(&models.ProviderError{StatusCode: http.StatusNotFound, Summary: "not found"})
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodeProvider,
		},
		{
			name:   "banking details",
			method: http.MethodGet,
			target: "/bank-accounts/ba_1/banking-details",
			setup: func() {
				mockAccounts.EXPECT().BankingDetails(gomock.Any(), "ba_1").Return(&account, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "banking details incomplete",
			method: http.MethodGet,
			target: "/bank-accounts/ba_2/banking-details",
			setup: func() {
				mockAccounts.EXPECT().BankingDetails(gomock.Any(), "ba_2").Return(nil, models.ErrIncompleteBankAccount)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   CodeIncompleteBankAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				var got ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedCode, got.Code)
			}
		})
	}
}

func TestBlockchainWalletHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallets := NewMockBlockchainWalletManager(ctrl)
	mockProfiles := NewMockProfileReader(ctrl)
	getter := userIDGetter("user-1")

	router := chi.NewRouter()
	router.Get("/blockchain-wallets", NewListBlockchainWalletsHandler(mockWallets, mockProfiles, getter))
	router.Post("/blockchain-wallets", NewCreateBlockchainWalletHandler(mockWallets, mockProfiles, getter))
	router.Get("/blockchain-wallets/sign-message", NewGetWalletSignMessageHandler(mockWallets, mockProfiles, getter))
	router.Delete("/blockchain-wallets/{id}", NewDeleteBlockchainWalletHandler(mockWallets, mockProfiles, getter))

	mockProfiles.EXPECT().GetProfile(gomock.Any(), "user-1").
		AnyTimes().
		Return(&models.Profile{UserID: "user-1", ReceiverID: "re_1"}, nil)

	t.Run("list empty", func(t *testing.T) {
		mockWallets.EXPECT().ListBlockchainWallets(gomock.Any(), "re_1").Return(nil, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blockchain-wallets", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"blockchain_wallets":[]}`, rec.Body.String())
	})

	t.Run("create with signature proof", func(t *testing.T) {
		mockWallets.EXPECT().CreateBlockchainWallet(gomock.Any(), "re_1", models.NewBlockchainWallet{
			Name:            "Main",
			Network:         "base_sepolia",
			Address:         "0x1111111111111111111111111111111111111111",
			SignatureTxHash: "0xabc",
		}).Return(&models.BlockchainWallet{ID: "bw_1", Name: "Main"}, nil)

		body := `{"name":"Main","network":"base_sepolia","address":"0x1111111111111111111111111111111111111111","signature_tx_hash":"0xabc"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/blockchain-wallets", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got models.BlockchainWallet
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "bw_1", got.ID)
	})

	t.Run("sign message", func(t *testing.T) {
		mockWallets.EXPECT().WalletSignMessage(gomock.Any(), "re_1").Return("sign me", nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blockchain-wallets/sign-message", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"sign me"}`, rec.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		mockWallets.EXPECT().DeleteBlockchainWallet(gomock.Any(), "re_1", "bw_1").Return(nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/blockchain-wallets/bw_1", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unauthorized", func(t *testing.T) {
		handler := NewListBlockchainWalletsHandler(mockWallets, mockProfiles, userIDGetter(""))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blockchain-wallets", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
