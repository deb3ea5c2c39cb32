package models

// Conversion event types published to the event stream.
const (
	EventConversionCompleted     = "conversion.completed"
	EventConversionFailed        = "conversion.failed"
	EventConversionStatusChanged = "conversion.status_changed"
)

// ConversionEvent is the message published for each conversion outcome.
type ConversionEvent struct {
	EventID      string           `json:"event_id"`
	Type         string           `json:"type"`
	Timestamp    int64            `json:"timestamp"` // unix seconds
	UserID       string           `json:"user_id,omitempty"`
	ConversionID string           `json:"conversion_id"`
	ProviderID   string           `json:"provider_id,omitempty"`
	Direction    Direction        `json:"direction"`
	Status       ConversionStatus `json:"status"`
	FromCurrency string           `json:"from_currency"`
	ToCurrency   string           `json:"to_currency"`
	FromAmount   string           `json:"from_amount"`
	ToAmount     string           `json:"to_amount,omitempty"`
	FailedState  State            `json:"failed_state,omitempty"`
	Error        string           `json:"error,omitempty"`
}
