package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

func receiverPath(receiverID, suffix string) string {
	return "/receivers/" + url.PathEscape(receiverID) + suffix
}

// ListBankAccounts returns the receiver's bank accounts.
func (f *BlindPayFacade) ListBankAccounts(ctx context.Context, receiverID string) ([]models.BankAccount, error) {
	raw, err := f.do(ctx, "list_bank_accounts", http.MethodGet, receiverPath(receiverID, "/bank-accounts"), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	accounts, err := decodeList[models.BankAccount](raw)
	if err != nil {
		return nil, fmt.Errorf("%w: list_bank_accounts: decode response: %v", models.ErrUpstreamProvider, err)
	}
	return accounts, nil
}

// GetBankAccount fetches a single bank account by id.
func (f *BlindPayFacade) GetBankAccount(ctx context.Context, bankAccountID string) (*models.BankAccount, error) {
	var account models.BankAccount
	if _, err := f.do(ctx, "get_bank_account", http.MethodGet, "/bank_accounts/"+url.PathEscape(bankAccountID), nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateBankAccount registers a bank account for the receiver.
func (f *BlindPayFacade) CreateBankAccount(ctx context.Context, receiverID string, account models.BankAccount) (*models.BankAccount, error) {
	var created models.BankAccount
	if _, err := f.do(ctx, "create_bank_account", http.MethodPost, receiverPath(receiverID, "/bank-accounts"), nil, newBankAccountBody(account), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteBankAccount removes a bank account. There is no update operation.
func (f *BlindPayFacade) DeleteBankAccount(ctx context.Context, receiverID, bankAccountID string) error {
	_, err := f.do(ctx, "delete_bank_account", http.MethodDelete, receiverPath(receiverID, "/bank-accounts/"+url.PathEscape(bankAccountID)), nil, nil, nil)
	return err
}

// ListBlockchainWallets returns the receiver's blockchain wallets.
func (f *BlindPayFacade) ListBlockchainWallets(ctx context.Context, receiverID string) ([]models.BlockchainWallet, error) {
	raw, err := f.do(ctx, "list_blockchain_wallets", http.MethodGet, receiverPath(receiverID, "/blockchain-wallets"), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	wallets, err := decodeList[models.BlockchainWallet](raw)
	if err != nil {
		return nil, fmt.Errorf("%w: list_blockchain_wallets: decode response: %v", models.ErrUpstreamProvider, err)
	}
	return wallets, nil
}

// CreateBlockchainWallet registers a wallet for the receiver, either directly by
// address or with a signed ownership proof.
func (f *BlindPayFacade) CreateBlockchainWallet(ctx context.Context, receiverID string, wallet models.NewBlockchainWallet) (*models.BlockchainWallet, error) {
	raw, err := f.do(ctx, "create_blockchain_wallet", http.MethodPost, receiverPath(receiverID, "/blockchain-wallets"), nil, wallet, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		BlockchainWallet *models.BlockchainWallet `json:"blockchain_wallet"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.BlockchainWallet != nil {
		return envelope.BlockchainWallet, nil
	}

	var created models.BlockchainWallet
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("%w: create_blockchain_wallet: decode response: %v", models.ErrUpstreamProvider, err)
	}
	return &created, nil
}

// DeleteBlockchainWallet removes a blockchain wallet.
func (f *BlindPayFacade) DeleteBlockchainWallet(ctx context.Context, receiverID, walletID string) error {
	_, err := f.do(ctx, "delete_blockchain_wallet", http.MethodDelete, receiverPath(receiverID, "/blockchain-wallets/"+url.PathEscape(walletID)), nil, nil, nil)
	return err
}

// GetWalletSignMessage returns the message a wallet must sign to prove ownership.
func (f *BlindPayFacade) GetWalletSignMessage(ctx context.Context, receiverID string) (string, error) {
	raw, err := f.do(ctx, "get_wallet_sign_message", http.MethodGet, receiverPath(receiverID, "/blockchain-wallets/sign-message"), nil, nil, nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		// plain text body
		return string(bytes.TrimSpace(raw)), nil
	}
	return resp.Message, nil
}

type bankAccountBody struct {
	Type                string `json:"type"`
	Name                string `json:"name"`
	BeneficiaryName     string `json:"beneficiary_name,omitempty"`
	RoutingNumber       string `json:"routing_number,omitempty"`
	AccountNumber       string `json:"account_number,omitempty"`
	AccountType         string `json:"account_type,omitempty"`
	AccountClass        string `json:"account_class,omitempty"`
	AddressLine1        string `json:"address_line_1,omitempty"`
	AddressLine2        string `json:"address_line_2,omitempty"`
	City                string `json:"city,omitempty"`
	StateProvinceRegion string `json:"state_province_region,omitempty"`
	Country             string `json:"country,omitempty"`
	PostalCode          string `json:"postal_code,omitempty"`
}

func newBankAccountBody(a models.BankAccount) bankAccountBody {
	return bankAccountBody{
		Type:                a.Type,
		Name:                a.Name,
		BeneficiaryName:     a.BeneficiaryName,
		RoutingNumber:       a.RoutingNumber,
		AccountNumber:       a.AccountNumber,
		AccountType:         a.AccountType,
		AccountClass:        a.AccountClass,
		AddressLine1:        a.AddressLine1,
		AddressLine2:        a.AddressLine2,
		City:                a.City,
		StateProvinceRegion: a.StateProvinceRegion,
		Country:             a.Country,
		PostalCode:          a.PostalCode,
	}
}
