package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// TrackingStep is one stage of the provider's payout tracking.
type TrackingStep struct {
	Step                  string `json:"step"`
	Status                string `json:"status,omitempty"`
	TransactionHash       string `json:"transaction_hash,omitempty"`
	CompletedAt           string `json:"completed_at,omitempty"`
	ProviderName          string `json:"provider_name,omitempty"`
	ProviderTransactionID string `json:"provider_transaction_id,omitempty"`
	ProviderStatus        string `json:"provider_status,omitempty"`
	EstimatedTimeArrival  string `json:"estimated_time_of_arrival,omitempty"`
}

// Payout is the provider's payout record. Amounts are minor units.
type Payout struct {
	ID                  string          `json:"id"`
	QuoteID             string          `json:"quote_id"`
	Status              string          `json:"status"`
	Token               string          `json:"token"`
	Currency            string          `json:"currency"`
	Network             string          `json:"network"`
	Description         string          `json:"description,omitempty"`
	SenderWalletAddress string          `json:"sender_wallet_address"`
	SenderAmount        int64           `json:"sender_amount"`
	ReceiverAmount      int64           `json:"receiver_amount"`
	ReceiverLocalAmount int64           `json:"receiver_local_amount,omitempty"`
	PartnerFeeAmount    int64           `json:"partner_fee_amount,omitempty"`
	TotalFeeAmount      int64           `json:"total_fee_amount,omitempty"`
	FirstName           string          `json:"first_name,omitempty"`
	LastName            string          `json:"last_name,omitempty"`
	LegalName           string          `json:"legal_name,omitempty"`
	AccountNumber       string          `json:"account_number,omitempty"`
	RoutingNumber       string          `json:"routing_number,omitempty"`
	Country             string          `json:"country,omitempty"`
	AccountType         string          `json:"account_type,omitempty"`
	Type                string          `json:"type,omitempty"`
	TrackingTransaction *TrackingStep   `json:"tracking_transaction,omitempty"`
	TrackingPayment     *TrackingStep   `json:"tracking_payment,omitempty"`
	TrackingLiquidity   *TrackingStep   `json:"tracking_liquidity,omitempty"`
	TrackingComplete    *TrackingStep   `json:"tracking_complete,omitempty"`
	TrackingPartnerFee  *TrackingStep   `json:"tracking_partner_fee,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	Raw                 json.RawMessage `json:"-"`
}

// PayoutStatus folds the provider status and tracking steps into a conversion status.
func (p *Payout) PayoutStatus() ConversionStatus {
	switch {
	case p.TrackingComplete != nil && p.TrackingComplete.Step == "completed":
		return StatusCompleted
	case p.TrackingTransaction != nil && p.TrackingTransaction.Status == "failed",
		p.TrackingComplete != nil && p.TrackingComplete.Status == "tokens_refunded",
		p.Status == "failed", p.Status == "refunded":
		return StatusFailed
	case p.Status == "completed":
		return StatusCompleted
	default:
		return StatusProcessing
	}
}

// PayinBankDetails is where the provider expects the user's ACH transfer.
type PayinBankDetails struct {
	RoutingNumber string `json:"routing_number"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type,omitempty"`
	SwiftBicCode  string `json:"swift_bic_code,omitempty"`
	Beneficiary   struct {
		Name         string `json:"name"`
		AddressLine1 string `json:"address_line_1,omitempty"`
		AddressLine2 string `json:"address_line_2,omitempty"`
	} `json:"beneficiary"`
	ReceivingBank struct {
		Name         string `json:"name"`
		AddressLine1 string `json:"address_line_1,omitempty"`
		AddressLine2 string `json:"address_line_2,omitempty"`
	} `json:"receiving_bank"`
}

// Payin is the provider's payin record. Amounts are minor units.
type Payin struct {
	ID                 string            `json:"id"`
	PayinQuoteID       string            `json:"payin_quote_id"`
	Status             string            `json:"status"`
	MemoCode           string            `json:"memo_code"`
	Token              string            `json:"token"`
	Currency           string            `json:"currency"`
	Network            string            `json:"network"`
	SenderAmount       int64             `json:"sender_amount"`
	ReceiverAmount     int64             `json:"receiver_amount"`
	ReceiverID         string            `json:"receiver_id,omitempty"`
	BlockchainWalletID string            `json:"blockchain_wallet_id,omitempty"`
	BankDetails        *PayinBankDetails `json:"blindpay_bank_details,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	Raw                json.RawMessage   `json:"-"`
}

// Instructions returns the ACH instructions the user must follow, memo code included.
func (p *Payin) Instructions() *BankingInstructions {
	in := &BankingInstructions{MemoCode: p.MemoCode}
	if p.BankDetails != nil {
		in.BankName = p.BankDetails.ReceivingBank.Name
		in.RoutingNumber = p.BankDetails.RoutingNumber
		in.AccountNumber = p.BankDetails.AccountNumber
		in.AccountType = p.BankDetails.AccountType
		in.BeneficiaryName = p.BankDetails.Beneficiary.Name
		in.BeneficiaryAddress = p.BankDetails.Beneficiary.AddressLine1
		in.SwiftCode = p.BankDetails.SwiftBicCode
	}
	return in
}

// Pagination mirrors the provider's list metadata.
type Pagination struct {
	HasMore    bool   `json:"has_more"`
	NextPage   string `json:"next_page,omitempty"`
	PrevPage   string `json:"prev_page,omitempty"`
	TotalCount int    `json:"total_count,omitempty"`
}

// ListParams are the paging options accepted by list endpoints.
type ListParams struct {
	Limit         int
	Offset        int
	StartingAfter string
	EndingBefore  string
	ReceiverID    string
}

// PayoutPage is one page of payouts.
type PayoutPage struct {
	Data       []Payout   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PayinPage is one page of payins.
type PayinPage struct {
	Data       []Payin    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// TrackingSteps keys payout tracking stages by name.
type TrackingSteps map[string]*TrackingStep

// Transaction is a payout normalised for history display.
type Transaction struct {
	ID                  string           `json:"id"`
	PayoutID            string           `json:"payout_id"`
	QuoteID             string           `json:"quote_id"`
	FromCurrency        string           `json:"from_currency"`
	ToCurrency          string           `json:"to_currency"`
	FromAmount          decimal.Decimal  `json:"from_amount"`
	ToAmount            decimal.Decimal  `json:"to_amount"`
	ReceiverLocalAmount *decimal.Decimal `json:"receiver_local_amount,omitempty"`
	PartnerFeeAmount    *decimal.Decimal `json:"partner_fee_amount,omitempty"`
	TotalFeeAmount      *decimal.Decimal `json:"total_fee_amount,omitempty"`
	Status              ConversionStatus `json:"status"`
	Timestamp           time.Time        `json:"timestamp"`
	TxHash              string           `json:"tx_hash,omitempty"`
	CompletedAt         *time.Time       `json:"completed_at,omitempty"`
	Network             string           `json:"network"`
	Description         string           `json:"description,omitempty"`
	Tracking            TrackingSteps    `json:"tracking"`
	RawPayout           json.RawMessage  `json:"raw_payout,omitempty"`
}
