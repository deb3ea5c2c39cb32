package models

import "time"

// PaymentMethodKind distinguishes the two payment method variants.
type PaymentMethodKind string

const (
	KindBankAccount      PaymentMethodKind = "bank_account"
	KindBlockchainWallet PaymentMethodKind = "blockchain_wallet"
)

// RequiredKind returns the payment method a conversion in direction d pays out to.
func RequiredKind(d Direction) PaymentMethodKind {
	if d == Onramp {
		return KindBlockchainWallet
	}
	return KindBankAccount
}

// BankAccount is a fiat payout destination owned by exactly one receiver.
// There is no update: corrections are a delete followed by a create.
type BankAccount struct {
	ID                  string    `json:"id"`
	ReceiverID          string    `json:"receiver_id,omitempty"`
	Type                string    `json:"type"` // ach, wire, pix, spei_bitso, ...
	Name                string    `json:"name"`
	BeneficiaryName     string    `json:"beneficiary_name,omitempty"`
	BankName            string    `json:"bank_name,omitempty"`
	RoutingNumber       string    `json:"routing_number,omitempty"`
	AccountNumber       string    `json:"account_number,omitempty"`
	AccountType         string    `json:"account_type,omitempty"`  // checking or saving
	AccountClass        string    `json:"account_class,omitempty"` // individual or business
	AddressLine1        string    `json:"address_line_1,omitempty"`
	AddressLine2        string    `json:"address_line_2,omitempty"`
	City                string    `json:"city,omitempty"`
	StateProvinceRegion string    `json:"state_province_region,omitempty"`
	Country             string    `json:"country,omitempty"`
	PostalCode          string    `json:"postal_code,omitempty"`
	CreatedAt           time.Time `json:"created_at,omitempty"`
}

// Complete reports whether the account can receive an ACH transfer.
func (a *BankAccount) Complete() bool {
	return a.RoutingNumber != "" && a.AccountNumber != ""
}

// BlockchainWallet is an on-chain destination owned by exactly one receiver.
type BlockchainWallet struct {
	ID                   string    `json:"id"`
	ReceiverID           string    `json:"receiver_id,omitempty"`
	Name                 string    `json:"name"`
	Network              string    `json:"network"`
	Address              string    `json:"address"`
	IsAccountAbstraction bool      `json:"is_account_abstraction"`
	SignatureTxHash      string    `json:"signature_tx_hash,omitempty"`
	CreatedAt            time.Time `json:"created_at,omitempty"`
}

// NewBlockchainWallet is the body used to register a wallet with the provider.
// Either Address alone (direct) or Address plus SignatureTxHash (signed ownership proof).
type NewBlockchainWallet struct {
	Name                 string `json:"name"`
	Network              string `json:"network"`
	Address              string `json:"address"`
	IsAccountAbstraction bool   `json:"is_account_abstraction"`
	SignatureTxHash      string `json:"signature_tx_hash,omitempty"`
}

// PaymentMethods is a point-in-time view of a receiver's payment methods.
// The two lists come from independent calls and are not a consistent snapshot.
type PaymentMethods struct {
	ReceiverID        string             `json:"receiver_id"`
	BankAccounts      []BankAccount      `json:"bank_accounts"`
	BlockchainWallets []BlockchainWallet `json:"blockchain_wallets"`
}

func (m *PaymentMethods) HasBankAccounts() bool      { return len(m.BankAccounts) > 0 }
func (m *PaymentMethods) HasBlockchainWallets() bool { return len(m.BlockchainWallets) > 0 }
func (m *PaymentMethods) HasPaymentMethods() bool {
	return m.HasBankAccounts() || m.HasBlockchainWallets()
}

// IDs returns the ids of the given kind in provider order.
func (m *PaymentMethods) IDs(kind PaymentMethodKind) []string {
	var ids []string
	switch kind {
	case KindBankAccount:
		for _, a := range m.BankAccounts {
			ids = append(ids, a.ID)
		}
	case KindBlockchainWallet:
		for _, w := range m.BlockchainWallets {
			ids = append(ids, w.ID)
		}
	}
	return ids
}
