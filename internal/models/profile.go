package models

// Profile binds a wallet-connected user identity to a provider receiver.
// It lives in an external key-value store and is read fresh for every flow.
type Profile struct {
	UserID     string `json:"user_id"`               // identity from the wallet provider's token
	ReceiverID string `json:"receiver_id,omitempty"` // KYC'd provider receiver
	BankingID  string `json:"banking_id,omitempty"`  // preferred bank account, optional
}

// KYCComplete reports whether a receiver has been bound.
func (p *Profile) KYCComplete() bool {
	return p != nil && p.ReceiverID != ""
}

// KYC message types posted by the provider's hosted onboarding page.
const (
	KYCMessageReceiverCreated = "receiver_created"
	KYCMessageCompleted       = "kyc_completed"
)

// KYCMessage is the typed payload of a KYC completion notification.
type KYCMessage struct {
	Type       string `json:"type"`
	ReceiverID string `json:"receiverId,omitempty"`
}
