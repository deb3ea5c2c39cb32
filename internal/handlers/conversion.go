package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

//go:generate mockgen -source=conversion.go -destination=conversion_mock.go -package=handlers

// Converter defines the interface that the conversion service must implement.
type Converter interface {
	Submit(ctx context.Context, userID string, req models.ConversionRequest) (*models.ConversionResult, error)
	Resubmit(ctx context.Context, userID string, req models.ConversionRequest) (*models.ConversionResult, error)
	ListConversions(ctx context.Context, userID string, limit, offset int) ([]models.ConversionRecord, error)
}

// ProfileReader returns the receiver binding of a user.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
}

// CurrencyDefaults fill in currencies a conversion request leaves empty.
type CurrencyDefaults struct {
	Token string // stablecoin symbol, e.g. USDB
	Fiat  string // fiat symbol, e.g. USD
}

// ConversionRequest represents the request body for starting a conversion
// swagger:model ConversionRequest
type ConversionRequest struct {
	// Conversion direction, offramp or onramp; empty means offramp
	// default: offramp
	Direction string `json:"direction"`

	// Source currency, defaults to the token for offramp and fiat for onramp
	// default: USDB
	FromCurrency string `json:"from_currency,omitempty"`

	// Target currency, defaults to fiat for offramp and the token for onramp
	// default: USD
	ToCurrency string `json:"to_currency,omitempty"`

	// Amount in human units
	// required: true
	// default: 100.00
	Amount decimal.Decimal `json:"amount"`

	// Connected wallet address
	// default: 0x1111111111111111111111111111111111111111
	WalletAddress string `json:"wallet_address,omitempty"`

	// Receiver id, defaults to the receiver bound to the caller
	ReceiverID string `json:"receiver_id,omitempty"`

	// Bank account id for offramp or blockchain wallet id for onramp
	PaymentMethodID string `json:"payment_method_id,omitempty"`
}

// ConversionListResponse represents a page of journaled conversions
// swagger:model ConversionListResponse
type ConversionListResponse struct {
	Conversions []models.ConversionRecord `json:"conversions"`
}

// NewSubmitConversionHandler returns an HTTP handler that runs a conversion flow.
// @Summary Start conversion
// @Description Quotes and executes an offramp (token to fiat) or onramp (fiat to token) conversion
// @Tags conversions
// @Accept json
// @Produce json
// @Param request body ConversionRequest true "Conversion request"
// @Success 200 {object} models.ConversionResult "Conversion result"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Receiver or payment method not found"
// @Failure 409 {object} ErrorResponse "Payment method selection required or quote consumed"
// @Failure 410 {object} ErrorResponse "Quote expired"
// @Failure 502 {object} ErrorResponse "Provider or approval failure"
// @Router /conversions [post]
// @Security BearerAuth
func NewSubmitConversionHandler(
	svc Converter,
	profiles ProfileReader,
	userIDGetter UserIDGetter,
	defaults CurrencyDefaults,
) http.HandlerFunc {
	return conversionHandler(svc.Submit, profiles, userIDGetter, defaults)
}

// NewResubmitConversionHandler returns an HTTP handler that retries a conversion with a fresh quote.
// @Summary Retry conversion
// @Description Runs the conversion flow again from the start, always requesting a new quote
// @Tags conversions
// @Accept json
// @Produce json
// @Param request body ConversionRequest true "Conversion request"
// @Success 200 {object} models.ConversionResult "Conversion result"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Provider or approval failure"
// @Router /conversions/resubmit [post]
// @Security BearerAuth
func NewResubmitConversionHandler(
	svc Converter,
	profiles ProfileReader,
	userIDGetter UserIDGetter,
	defaults CurrencyDefaults,
) http.HandlerFunc {
	return conversionHandler(svc.Resubmit, profiles, userIDGetter, defaults)
}

type submitFunc func(ctx context.Context, userID string, req models.ConversionRequest) (*models.ConversionResult, error)

func conversionHandler(
	submit submitFunc,
	profiles ProfileReader,
	userIDGetter UserIDGetter,
	defaults CurrencyDefaults,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		var body ConversionRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		req := body.toModel(defaults)
		if err := fillFromProfile(r.Context(), profiles, userID, &req); err != nil {
			writeError(w, err)
			return
		}

		result, err := submit(r.Context(), userID, req)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func (b ConversionRequest) toModel(defaults CurrencyDefaults) models.ConversionRequest {
	req := models.ConversionRequest{
		Direction:       models.Direction(strings.ToLower(strings.TrimSpace(b.Direction))),
		FromCurrency:    strings.ToUpper(strings.TrimSpace(b.FromCurrency)),
		ToCurrency:      strings.ToUpper(strings.TrimSpace(b.ToCurrency)),
		Amount:          b.Amount,
		WalletAddress:   strings.TrimSpace(b.WalletAddress),
		ReceiverID:      strings.TrimSpace(b.ReceiverID),
		PaymentMethodID: strings.TrimSpace(b.PaymentMethodID),
	}

	if req.Direction == "" {
		req.Direction = models.Offramp
	}

	from, to := defaults.Token, defaults.Fiat
	if req.Direction == models.Onramp {
		from, to = defaults.Fiat, defaults.Token
	}
	if req.FromCurrency == "" {
		req.FromCurrency = from
	}
	if req.ToCurrency == "" {
		req.ToCurrency = to
	}
	return req
}

// fillFromProfile defaults the receiver and, for offramp, the saved bank account.
func fillFromProfile(ctx context.Context, profiles ProfileReader, userID string, req *models.ConversionRequest) error {
	if req.ReceiverID != "" && (req.PaymentMethodID != "" || req.Direction != models.Offramp) {
		return nil
	}

	profile, err := profiles.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if req.ReceiverID == "" {
		if !profile.KYCComplete() {
			return models.ValidationError("receiver_id is required until KYC is complete")
		}
		req.ReceiverID = profile.ReceiverID
	}
	if req.Direction == models.Offramp && req.PaymentMethodID == "" && req.ReceiverID == profile.ReceiverID {
		req.PreferredBankAccountID = profile.BankingID
	}
	return nil
}

// NewListConversionsHandler returns an HTTP handler listing the caller's journaled conversions.
// @Summary List conversions
// @Description Returns the caller's conversions, newest first
// @Tags conversions
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} ConversionListResponse "Conversions"
// @Failure 400 {object} ErrorResponse "Invalid paging parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /conversions [get]
// @Security BearerAuth
func NewListConversionsHandler(svc Converter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		params, err := parseListParams(r)
		if err != nil {
			writeError(w, err)
			return
		}

		records, err := svc.ListConversions(r.Context(), userID, params.Limit, params.Offset)
		if err != nil {
			writeError(w, err)
			return
		}
		if records == nil {
			records = []models.ConversionRecord{}
		}

		writeJSON(w, http.StatusOK, ConversionListResponse{Conversions: records})
	}
}
