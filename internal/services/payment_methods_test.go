package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodService_Resolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		receiverID  string
		setup       func(g *MockPaymentMethodGateway)
		wantErr     error
		wantAny     bool
		wantBanks   int
		wantWallets int
	}{
		{
			name:       "both kinds",
			receiverID: "re_1",
			setup: func(g *MockPaymentMethodGateway) {
				g.EXPECT().ListBankAccounts(ctx, "re_1").Return([]models.BankAccount{{ID: "ba_1"}}, nil)
				g.EXPECT().ListBlockchainWallets(ctx, "re_1").Return([]models.BlockchainWallet{{ID: "bw_1"}, {ID: "bw_2"}}, nil)
			},
			wantAny:     true,
			wantBanks:   1,
			wantWallets: 2,
		},
		{
			name:       "nothing on file",
			receiverID: "re_1",
			setup: func(g *MockPaymentMethodGateway) {
				g.EXPECT().ListBankAccounts(ctx, "re_1").Return(nil, nil)
				g.EXPECT().ListBlockchainWallets(ctx, "re_1").Return(nil, nil)
			},
		},
		{
			name:       "bank account listing fails",
			receiverID: "re_1",
			setup: func(g *MockPaymentMethodGateway) {
				g.EXPECT().ListBankAccounts(ctx, "re_1").Return(nil, &models.ProviderError{StatusCode: 500})
			},
			wantErr: models.ErrUpstreamProvider,
		},
		{
			name:    "missing receiver",
			setup:   func(g *MockPaymentMethodGateway) {},
			wantErr: models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gateway := NewMockPaymentMethodGateway(ctrl)
			tt.setup(gateway)

			methods, err := NewPaymentMethodService(gateway).Resolve(ctx, tt.receiverID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAny, methods.HasPaymentMethods())
			assert.Len(t, methods.BankAccounts, tt.wantBanks)
			assert.Len(t, methods.BlockchainWallets, tt.wantWallets)
			assert.NotNil(t, methods.BankAccounts)
		})
	}
}

func TestSelectBankAccount(t *testing.T) {
	two := &models.PaymentMethods{ReceiverID: "re_1", BankAccounts: []models.BankAccount{{ID: "ba_1"}, {ID: "ba_2"}}}
	one := &models.PaymentMethods{ReceiverID: "re_1", BankAccounts: []models.BankAccount{{ID: "ba_1"}}}
	none := &models.PaymentMethods{ReceiverID: "re_1"}

	tests := []struct {
		name    string
		methods *models.PaymentMethods
		id      string
		wantID  string
		wantErr error
	}{
		{name: "single account auto-selected", methods: one, wantID: "ba_1"},
		{name: "explicit id", methods: two, id: "ba_2", wantID: "ba_2"},
		{name: "several need a choice", methods: two, wantErr: models.ErrSelectionRequired},
		{name: "unknown id", methods: two, id: "ba_9", wantErr: models.ErrNotFound},
		{name: "no accounts", methods: none, wantErr: models.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := SelectBankAccount(tt.methods, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, account.ID)
		})
	}
}

func TestSelectBlockchainWallet(t *testing.T) {
	one := &models.PaymentMethods{BlockchainWallets: []models.BlockchainWallet{{ID: "bw_1"}}}
	two := &models.PaymentMethods{BlockchainWallets: []models.BlockchainWallet{{ID: "bw_1"}, {ID: "bw_2"}}}

	w, err := SelectBlockchainWallet(one, "")
	require.NoError(t, err)
	assert.Equal(t, "bw_1", w.ID)

	_, err = SelectBlockchainWallet(two, "")
	var serr *models.SelectionError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, []string{"bw_1", "bw_2"}, serr.Options)

	_, err = SelectBlockchainWallet(&models.PaymentMethods{}, "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPaymentMethodService_BankingDetails(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		account *models.BankAccount
		err     error
		wantErr error
	}{
		{name: "complete", account: &models.BankAccount{ID: "ba_1", RoutingNumber: "021000021", AccountNumber: "1234"}},
		{name: "missing routing number", account: &models.BankAccount{ID: "ba_1", AccountNumber: "1234"}, wantErr: models.ErrIncompleteBankAccount},
		{name: "provider error", err: &models.ProviderError{StatusCode: 404}, wantErr: models.ErrUpstreamProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gateway := NewMockPaymentMethodGateway(ctrl)
			gateway.EXPECT().GetBankAccount(ctx, "ba_1").Return(tt.account, tt.err)

			account, err := NewPaymentMethodService(gateway).BankingDetails(ctx, "ba_1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "021000021", account.RoutingNumber)
		})
	}
}

func TestPaymentMethodService_CreateBlockchainWallet(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		wallet  models.NewBlockchainWallet
		expect  bool
		wantErr error
	}{
		{
			name:   "direct registration",
			wallet: models.NewBlockchainWallet{Name: "Main", Network: "base_sepolia", Address: testWallet},
			expect: true,
		},
		{
			name:   "signed registration",
			wallet: models.NewBlockchainWallet{Name: "Main", Network: "base_sepolia", Address: testWallet, SignatureTxHash: "0xsig"},
			expect: true,
		},
		{
			name:    "invalid address",
			wallet:  models.NewBlockchainWallet{Name: "Main", Network: "base_sepolia", Address: "nope"},
			wantErr: models.ErrValidation,
		},
		{
			name:    "missing name",
			wallet:  models.NewBlockchainWallet{Network: "base_sepolia", Address: testWallet},
			wantErr: models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gateway := NewMockPaymentMethodGateway(ctrl)
			if tt.expect {
				gateway.EXPECT().CreateBlockchainWallet(ctx, "re_1", tt.wallet).
					Return(&models.BlockchainWallet{ID: "bw_1", Address: tt.wallet.Address}, nil)
			}

			w, err := NewPaymentMethodService(gateway).CreateBlockchainWallet(ctx, "re_1", tt.wallet)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bw_1", w.ID)
		})
	}
}

func TestPaymentMethodService_CreateBankAccount(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := NewMockPaymentMethodGateway(ctrl)
	svc := NewPaymentMethodService(gateway)

	_, err := svc.CreateBankAccount(ctx, "re_1", models.BankAccount{Type: "ach", Name: "Checking"})
	assert.ErrorIs(t, err, models.ErrValidation)

	account := models.BankAccount{Type: "ach", Name: "Checking", RoutingNumber: "021000021", AccountNumber: "1234"}
	gateway.EXPECT().CreateBankAccount(ctx, "re_1", account).Return(&models.BankAccount{ID: "ba_1"}, nil)
	created, err := svc.CreateBankAccount(ctx, "re_1", account)
	require.NoError(t, err)
	assert.Equal(t, "ba_1", created.ID)

	gateway.EXPECT().DeleteBankAccount(ctx, "re_1", "ba_1").Return(nil)
	assert.NoError(t, svc.DeleteBankAccount(ctx, "re_1", "ba_1"))
}
