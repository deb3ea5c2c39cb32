package models

// PayoutQuoteParams is the input of a payout (offramp) quote.
// RequestAmount is already in minor units; the gateway sends it as is.
type PayoutQuoteParams struct {
	BankAccountID      string
	BlockchainWalletID string // used instead of ReceiverID when set
	ReceiverID         string
	CurrencyType       string // "sender" fixes the sent amount, "receiver" the received one
	CoverFees          bool
	RequestAmount      int64
	PaymentMethod      string // ach, wire, pix, ...
	Token              string
	Network            string
}

// PayinQuoteParams is the input of a payin (onramp) quote.
// RequestAmount is already in minor units; the gateway sends it as is.
type PayinQuoteParams struct {
	BlockchainWalletID string
	CurrencyType       string
	CoverFees          bool
	RequestAmount      int64
	PaymentMethod      string
	Token              string
}
