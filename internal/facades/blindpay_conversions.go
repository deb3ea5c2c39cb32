package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

// baseUnits is a token amount the provider sends either as a JSON string or a number.
type baseUnits struct {
	v *big.Int
}

func (b *baseUnits) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		b.v = nil
		return nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("invalid token amount %q", s)
	}
	b.v = v
	return nil
}

type quoteContract struct {
	Address                 string    `json:"address"`
	BlindpayContractAddress string    `json:"blindpayContractAddress"`
	Amount                  baseUnits `json:"amount"`
	Network                 struct {
		Name string `json:"name"`
	} `json:"network"`
}

type quoteResponse struct {
	ID               string         `json:"id"`
	ExpiresAt        int64          `json:"expires_at"`
	SenderAmount     int64          `json:"sender_amount"`
	ReceiverAmount   int64          `json:"receiver_amount"`
	PartnerFeeAmount int64          `json:"partner_fee_amount"`
	FlatFee          int64          `json:"flat_fee"`
	TotalFeeAmount   int64          `json:"total_fee_amount"`
	Contract         *quoteContract `json:"contract"`
}

func (r *quoteResponse) toModel(requested int64, raw []byte) *models.Quote {
	q := &models.Quote{
		ID:              r.ID,
		RequestedAmount: requested,
		SenderAmount:    r.SenderAmount,
		ReceiverAmount:  r.ReceiverAmount,
		Fees: models.FeeBreakdown{
			PartnerFee: r.PartnerFeeAmount,
			FlatFee:    r.FlatFee,
			TotalFee:   r.TotalFeeAmount,
		},
		ExpiresAt: unixTime(r.ExpiresAt),
		Raw:       json.RawMessage(raw),
	}
	if q.Fees.TotalFee == 0 {
		q.Fees.TotalFee = q.Fees.PartnerFee + q.Fees.FlatFee
	}
	if r.Contract != nil && r.Contract.Address != "" {
		q.Contract = &models.ContractDetails{
			Address:        r.Contract.Address,
			SpenderAddress: r.Contract.BlindpayContractAddress,
			Amount:         r.Contract.Amount.v,
			Network:        r.Contract.Network.Name,
		}
	}
	return q
}

type payoutQuoteRequest struct {
	BankAccountID      string `json:"bank_account_id,omitempty"`
	BlockchainWalletID string `json:"blockchain_wallet_id,omitempty"`
	ReceiverID         string `json:"receiver_id,omitempty"`
	CurrencyType       string `json:"currency_type"`
	CoverFees          bool   `json:"cover_fees"`
	RequestAmount      int64  `json:"request_amount"`
	PaymentMethod      string `json:"payment_method"`
	Token              string `json:"token"`
	Network            string `json:"network,omitempty"`
}

// CreatePayoutQuote requests an offramp quote. params.RequestAmount is already in
// minor units and is sent unchanged.
func (f *BlindPayFacade) CreatePayoutQuote(ctx context.Context, params models.PayoutQuoteParams) (*models.Quote, error) {
	body := payoutQuoteRequest{
		BankAccountID:      params.BankAccountID,
		BlockchainWalletID: params.BlockchainWalletID,
		CurrencyType:       params.CurrencyType,
		CoverFees:          params.CoverFees,
		RequestAmount:      params.RequestAmount,
		PaymentMethod:      params.PaymentMethod,
		Token:              params.Token,
		Network:            params.Network,
	}
	if body.BlockchainWalletID == "" {
		body.ReceiverID = params.ReceiverID
	}

	var resp quoteResponse
	raw, err := f.do(ctx, "create_payout_quote", http.MethodPost, "/quotes", nil, body, &resp)
	if err != nil {
		return nil, err
	}
	return resp.toModel(params.RequestAmount, raw), nil
}

type payinQuoteRequest struct {
	BlockchainWalletID string `json:"blockchain_wallet_id"`
	CurrencyType       string `json:"currency_type"`
	CoverFees          bool   `json:"cover_fees"`
	RequestAmount      int64  `json:"request_amount"`
	PaymentMethod      string `json:"payment_method"`
	Token              string `json:"token"`
}

// CreatePayinQuote requests an onramp quote against a blockchain wallet.
// params.RequestAmount is already in minor units and is sent unchanged.
func (f *BlindPayFacade) CreatePayinQuote(ctx context.Context, params models.PayinQuoteParams) (*models.Quote, error) {
	body := payinQuoteRequest{
		BlockchainWalletID: params.BlockchainWalletID,
		CurrencyType:       params.CurrencyType,
		CoverFees:          params.CoverFees,
		RequestAmount:      params.RequestAmount,
		PaymentMethod:      params.PaymentMethod,
		Token:              params.Token,
	}

	var resp quoteResponse
	raw, err := f.do(ctx, "create_payin_quote", http.MethodPost, "/payin-quotes", nil, body, &resp)
	if err != nil {
		return nil, err
	}
	return resp.toModel(params.RequestAmount, raw), nil
}

type payoutRequest struct {
	QuoteID             string `json:"quote_id"`
	SenderWalletAddress string `json:"sender_wallet_address"`
	ApprovalTxHash      string `json:"approval_tx_hash,omitempty"`
}

// InitiatePayout executes a payout quote. Amounts in the returned payout are minor units.
func (f *BlindPayFacade) InitiatePayout(ctx context.Context, quoteID, senderWallet, approvalTxHash string) (*models.Payout, error) {
	body := payoutRequest{
		QuoteID:             quoteID,
		SenderWalletAddress: senderWallet,
		ApprovalTxHash:      approvalTxHash,
	}

	var payout models.Payout
	raw, err := f.do(ctx, "initiate_payout", http.MethodPost, "/payouts/evm", nil, body, &payout)
	if err != nil {
		return nil, err
	}
	payout.Raw = json.RawMessage(raw)
	return &payout, nil
}

type payinRequest struct {
	PayinQuoteID string `json:"payin_quote_id"`
}

// InitiatePayin executes a payin quote. The returned payin carries the bank
// details and memo code the user needs for the ACH transfer.
func (f *BlindPayFacade) InitiatePayin(ctx context.Context, quoteID string) (*models.Payin, error) {
	var payin models.Payin
	raw, err := f.do(ctx, "initiate_payin", http.MethodPost, "/payins/evm", nil, payinRequest{PayinQuoteID: quoteID}, &payin)
	if err != nil {
		return nil, err
	}
	payin.Raw = json.RawMessage(raw)
	return &payin, nil
}
