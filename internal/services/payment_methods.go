package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

//go:generate mockgen -source=payment_methods.go -destination=payment_methods_mock.go -package=services

// PaymentMethodGateway is the provider side of payment method management.
type PaymentMethodGateway interface {
	ListBankAccounts(ctx context.Context, receiverID string) ([]models.BankAccount, error)                                              // Lists a receiver's bank accounts
	GetBankAccount(ctx context.Context, bankAccountID string) (*models.BankAccount, error)                                              // Fetches one bank account
	CreateBankAccount(ctx context.Context, receiverID string, account models.BankAccount) (*models.BankAccount, error)                  // Registers a bank account
	DeleteBankAccount(ctx context.Context, receiverID, bankAccountID string) error                                                      // Removes a bank account
	ListBlockchainWallets(ctx context.Context, receiverID string) ([]models.BlockchainWallet, error)                                    // Lists a receiver's wallets
	CreateBlockchainWallet(ctx context.Context, receiverID string, wallet models.NewBlockchainWallet) (*models.BlockchainWallet, error) // Registers a wallet
	DeleteBlockchainWallet(ctx context.Context, receiverID, walletID string) error                                                      // Removes a wallet
	GetWalletSignMessage(ctx context.Context, receiverID string) (string, error)                                                        // Message to sign for ownership proof
}

// PaymentMethodService resolves and manages a receiver's payment methods.
type PaymentMethodService struct {
	gateway PaymentMethodGateway
}

// NewPaymentMethodService creates a new PaymentMethodService.
func NewPaymentMethodService(gateway PaymentMethodGateway) *PaymentMethodService {
	return &PaymentMethodService{gateway: gateway}
}

// Resolve lists both payment method kinds for a receiver. The two lists are
// fetched by independent calls; either failing fails the whole resolution.
func (s *PaymentMethodService) Resolve(ctx context.Context, receiverID string) (*models.PaymentMethods, error) {
	if receiverID == "" {
		return nil, models.ValidationError("receiver_id is required")
	}

	accounts, err := s.gateway.ListBankAccounts(ctx, receiverID)
	if err != nil {
		logger.Log.Errorw("failed to list bank accounts", "receiver_id", receiverID, "error", err)
		return nil, err
	}

	wallets, err := s.gateway.ListBlockchainWallets(ctx, receiverID)
	if err != nil {
		logger.Log.Errorw("failed to list blockchain wallets", "receiver_id", receiverID, "error", err)
		return nil, err
	}

	if accounts == nil {
		accounts = []models.BankAccount{}
	}
	if wallets == nil {
		wallets = []models.BlockchainWallet{}
	}

	logger.Log.Infow("payment methods resolved",
		"receiver_id", receiverID,
		"bank_accounts", len(accounts),
		"blockchain_wallets", len(wallets),
	)

	return &models.PaymentMethods{
		ReceiverID:        receiverID,
		BankAccounts:      accounts,
		BlockchainWallets: wallets,
	}, nil
}

// SelectBankAccount picks the bank account a conversion pays out to. An explicit
// id must belong to the receiver; without one, a single account is selected
// automatically and several require the caller to choose.
func SelectBankAccount(methods *models.PaymentMethods, id string) (*models.BankAccount, error) {
	if len(methods.BankAccounts) == 0 {
		return nil, fmt.Errorf("%w: receiver %s has no bank account", models.ErrNotFound, methods.ReceiverID)
	}
	if id == "" {
		if len(methods.BankAccounts) == 1 {
			return &methods.BankAccounts[0], nil
		}
		return nil, &models.SelectionError{Kind: models.KindBankAccount, Options: methods.IDs(models.KindBankAccount)}
	}
	for i := range methods.BankAccounts {
		if methods.BankAccounts[i].ID == id {
			return &methods.BankAccounts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: bank account %s does not belong to receiver %s", models.ErrNotFound, id, methods.ReceiverID)
}

// SelectBlockchainWallet is SelectBankAccount for blockchain wallets.
func SelectBlockchainWallet(methods *models.PaymentMethods, id string) (*models.BlockchainWallet, error) {
	if len(methods.BlockchainWallets) == 0 {
		return nil, fmt.Errorf("%w: receiver %s has no blockchain wallet", models.ErrNotFound, methods.ReceiverID)
	}
	if id == "" {
		if len(methods.BlockchainWallets) == 1 {
			return &methods.BlockchainWallets[0], nil
		}
		return nil, &models.SelectionError{Kind: models.KindBlockchainWallet, Options: methods.IDs(models.KindBlockchainWallet)}
	}
	for i := range methods.BlockchainWallets {
		if methods.BlockchainWallets[i].ID == id {
			return &methods.BlockchainWallets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: blockchain wallet %s does not belong to receiver %s", models.ErrNotFound, id, methods.ReceiverID)
}

// ListBankAccounts returns the receiver's bank accounts.
func (s *PaymentMethodService) ListBankAccounts(ctx context.Context, receiverID string) ([]models.BankAccount, error) {
	if receiverID == "" {
		return nil, models.ValidationError("receiver_id is required")
	}
	return s.gateway.ListBankAccounts(ctx, receiverID)
}

// CreateBankAccount validates and registers a bank account.
func (s *PaymentMethodService) CreateBankAccount(ctx context.Context, receiverID string, account models.BankAccount) (*models.BankAccount, error) {
	switch {
	case receiverID == "":
		return nil, models.ValidationError("receiver_id is required")
	case account.Type == "":
		return nil, models.ValidationError("type is required")
	case account.Name == "":
		return nil, models.ValidationError("name is required")
	case account.Type == "ach" && !account.Complete():
		return nil, models.ValidationError("routing_number and account_number are required for ach")
	}

	created, err := s.gateway.CreateBankAccount(ctx, receiverID, account)
	if err != nil {
		logger.Log.Errorw("failed to create bank account", "receiver_id", receiverID, "error", err)
		return nil, err
	}
	logger.Log.Infow("bank account created", "receiver_id", receiverID, "bank_account_id", created.ID)
	return created, nil
}

// DeleteBankAccount removes a bank account.
func (s *PaymentMethodService) DeleteBankAccount(ctx context.Context, receiverID, bankAccountID string) error {
	if receiverID == "" || bankAccountID == "" {
		return models.ValidationError("receiver_id and bank account id are required")
	}
	if err := s.gateway.DeleteBankAccount(ctx, receiverID, bankAccountID); err != nil {
		logger.Log.Errorw("failed to delete bank account", "receiver_id", receiverID, "bank_account_id", bankAccountID, "error", err)
		return err
	}
	logger.Log.Infow("bank account deleted", "receiver_id", receiverID, "bank_account_id", bankAccountID)
	return nil
}

// BankingDetails returns a bank account that can receive a transfer.
// Accounts without routing or account number fail with models.ErrIncompleteBankAccount.
func (s *PaymentMethodService) BankingDetails(ctx context.Context, bankAccountID string) (*models.BankAccount, error) {
	if bankAccountID == "" {
		return nil, models.ValidationError("bank account id is required")
	}
	account, err := s.gateway.GetBankAccount(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}
	if !account.Complete() {
		logger.Log.Warnw("bank account is incomplete", "bank_account_id", bankAccountID)
		return nil, fmt.Errorf("%w: %s", models.ErrIncompleteBankAccount, bankAccountID)
	}
	return account, nil
}

// ListBlockchainWallets returns the receiver's blockchain wallets.
func (s *PaymentMethodService) ListBlockchainWallets(ctx context.Context, receiverID string) ([]models.BlockchainWallet, error) {
	if receiverID == "" {
		return nil, models.ValidationError("receiver_id is required")
	}
	return s.gateway.ListBlockchainWallets(ctx, receiverID)
}

// CreateBlockchainWallet validates and registers a wallet.
func (s *PaymentMethodService) CreateBlockchainWallet(ctx context.Context, receiverID string, wallet models.NewBlockchainWallet) (*models.BlockchainWallet, error) {
	wallet.Name = strings.TrimSpace(wallet.Name)
	switch {
	case receiverID == "":
		return nil, models.ValidationError("receiver_id is required")
	case wallet.Name == "":
		return nil, models.ValidationError("name is required")
	case wallet.Network == "":
		return nil, models.ValidationError("network is required")
	case !common.IsHexAddress(wallet.Address):
		return nil, models.ValidationError("address %q is not a valid EVM address", wallet.Address)
	}

	created, err := s.gateway.CreateBlockchainWallet(ctx, receiverID, wallet)
	if err != nil {
		logger.Log.Errorw("failed to create blockchain wallet", "receiver_id", receiverID, "error", err)
		return nil, err
	}
	logger.Log.Infow("blockchain wallet created",
		"receiver_id", receiverID,
		"wallet_id", created.ID,
		"signed", wallet.SignatureTxHash != "",
	)
	return created, nil
}

// DeleteBlockchainWallet removes a wallet.
func (s *PaymentMethodService) DeleteBlockchainWallet(ctx context.Context, receiverID, walletID string) error {
	if receiverID == "" || walletID == "" {
		return models.ValidationError("receiver_id and wallet id are required")
	}
	if err := s.gateway.DeleteBlockchainWallet(ctx, receiverID, walletID); err != nil {
		logger.Log.Errorw("failed to delete blockchain wallet", "receiver_id", receiverID, "wallet_id", walletID, "error", err)
		return err
	}
	logger.Log.Infow("blockchain wallet deleted", "receiver_id", receiverID, "wallet_id", walletID)
	return nil
}

// WalletSignMessage returns the message a wallet signs to prove ownership.
func (s *PaymentMethodService) WalletSignMessage(ctx context.Context, receiverID string) (string, error) {
	if receiverID == "" {
		return "", models.ValidationError("receiver_id is required")
	}
	return s.gateway.GetWalletSignMessage(ctx, receiverID)
}
