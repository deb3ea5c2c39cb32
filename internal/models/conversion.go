package models

import (
	"encoding/json"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the way value moves through a conversion.
type Direction string

const (
	// Offramp converts stablecoins held in the user's wallet into fiat paid to a bank account.
	Offramp Direction = "offramp"
	// Onramp converts a fiat bank transfer into stablecoins delivered to a blockchain wallet.
	Onramp Direction = "onramp"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == Offramp || d == Onramp
}

// State is a step of the conversion state machine.
type State string

const (
	StateIdle              State = "idle"
	StateQuoteRequested    State = "quote_requested"
	StateQuoteCreated      State = "quote_created"
	StateApprovalPending   State = "approval_pending"
	StateApprovalConfirmed State = "approval_confirmed"
	StatePayoutRequested   State = "payout_requested"
	StatePayinInitiated    State = "payin_initiated"
	StateCompleted         State = "completed"
	StateFailed            State = "failed"
)

// Terminal reports whether no further transition can leave s.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// ConversionStatus is the provider-facing status of a finished conversion.
type ConversionStatus string

const (
	StatusProcessing ConversionStatus = "processing"
	StatusCompleted  ConversionStatus = "completed"
	StatusFailed     ConversionStatus = "failed"
)

// ConversionRequest describes a single conversion attempt. It is passed by value
// and never modified once submitted.
type ConversionRequest struct {
	Direction       Direction       `json:"direction"`         // offramp or onramp
	FromCurrency    string          `json:"from_currency"`     // e.g. USDB for offramp, USD for onramp
	ToCurrency      string          `json:"to_currency"`       // e.g. USD for offramp, USDC for onramp
	Amount          decimal.Decimal `json:"amount"`            // human units, two decimals significant
	WalletAddress   string          `json:"wallet_address"`    // connected wallet, signs approvals
	ReceiverID      string          `json:"receiver_id"`       // KYC'd provider identity
	PaymentMethodID string          `json:"payment_method_id"` // bank account id (offramp) or blockchain wallet id (onramp)

	// PreferredBankAccountID is the caller's saved bank account. Unlike
	// PaymentMethodID it is dropped when the receiver no longer has it.
	PreferredBankAccountID string `json:"-"`
}

// Token returns the stablecoin side of the request.
func (r ConversionRequest) Token() string {
	if r.Direction == Onramp {
		return r.ToCurrency
	}
	return r.FromCurrency
}

// FeeBreakdown lists the provider fees attached to a quote, in minor units.
type FeeBreakdown struct {
	PartnerFee int64 `json:"partner_fee"`
	FlatFee    int64 `json:"flat_fee"`
	TotalFee   int64 `json:"total_fee"`
}

// ContractDetails is the on-chain approval a payout quote may require before
// the provider can pull the tokens.
type ContractDetails struct {
	Address        string   `json:"address"`         // token contract
	SpenderAddress string   `json:"spender_address"` // provider contract allowed to pull funds
	Amount         *big.Int `json:"amount"`          // token base units, already scaled by the provider
	Network        string   `json:"network,omitempty"`
}

// Quote is a short-lived, single-use price issued by the provider.
type Quote struct {
	ID              string           `json:"id"`
	RequestedAmount int64            `json:"requested_amount"` // minor units
	SenderAmount    int64            `json:"sender_amount"`    // minor units
	ReceiverAmount  int64            `json:"receiver_amount"`  // minor units
	Fees            FeeBreakdown     `json:"fees"`
	ExpiresAt       time.Time        `json:"expires_at"`
	Contract        *ContractDetails `json:"contract,omitempty"`
	Raw             json.RawMessage  `json:"-"`
}

// Expired reports whether the quote can no longer be executed at now.
// A quote without an expiry never expires locally; the provider still decides.
func (q *Quote) Expired(now time.Time) bool {
	return !q.ExpiresAt.IsZero() && !now.Before(q.ExpiresAt)
}

// ApprovalReceipt proves an ERC-20 approval was mined.
type ApprovalReceipt struct {
	TransactionHash string `json:"transaction_hash"`
	ConfirmedBlock  uint64 `json:"confirmed_block"`
}

// BankingInstructions tell the user where to send an ACH transfer for an onramp.
type BankingInstructions struct {
	BankName           string `json:"bank_name,omitempty"`
	RoutingNumber      string `json:"routing_number"`
	AccountNumber      string `json:"account_number"`
	AccountType        string `json:"account_type,omitempty"`
	BeneficiaryName    string `json:"beneficiary_name,omitempty"`
	BeneficiaryAddress string `json:"beneficiary_address,omitempty"`
	SwiftCode          string `json:"swift_code,omitempty"`
	MemoCode           string `json:"memo_code"`
}

// ConversionResult is the terminal record of a successful conversion flow.
type ConversionResult struct {
	ID                  string               `json:"id"`
	Direction           Direction            `json:"direction"`
	QuoteID             string               `json:"quote_id"`
	FromCurrency        string               `json:"from_currency"`
	ToCurrency          string               `json:"to_currency"`
	FromAmount          decimal.Decimal      `json:"from_amount"`
	ToAmount            decimal.Decimal      `json:"to_amount"`
	Status              ConversionStatus     `json:"status"`
	WalletAddress       string               `json:"wallet_address,omitempty"`
	ApprovalTxHash      string               `json:"approval_tx_hash,omitempty"`
	BankingInstructions *BankingInstructions `json:"banking_instructions,omitempty"`
	Trace               []State              `json:"trace"`
	RawProviderPayload  json.RawMessage      `json:"raw_provider_payload,omitempty"`
}

// ConversionRecord is a journal row.
type ConversionRecord struct {
	ConversionID   string    `json:"conversion_id" db:"conversion_id"`
	ProviderID     string    `json:"provider_id" db:"provider_id"` // payout or payin id, empty when the flow failed before execution
	UserID         string    `json:"user_id" db:"user_id"`
	Direction      string    `json:"direction" db:"direction"`
	QuoteID        string    `json:"quote_id" db:"quote_id"`
	FromCurrency   string    `json:"from_currency" db:"from_currency"`
	ToCurrency     string    `json:"to_currency" db:"to_currency"`
	FromAmount     string    `json:"from_amount" db:"from_amount"`
	ToAmount       string    `json:"to_amount" db:"to_amount"`
	Status         string    `json:"status" db:"status"`
	WalletAddress  string    `json:"wallet_address" db:"wallet_address"`
	ApprovalTxHash string    `json:"approval_tx_hash" db:"approval_tx_hash"`
	MemoCode       string    `json:"memo_code" db:"memo_code"`
	FailureReason  string    `json:"failure_reason" db:"failure_reason"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
