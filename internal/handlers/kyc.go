package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

//go:generate mockgen -source=kyc.go -destination=kyc_mock.go -package=handlers

// IdentityBinder defines the interface that the identity service must implement.
type IdentityBinder interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	BindReceiver(ctx context.Context, userID, receiverID string) (*models.Profile, error)
	BindBankingID(ctx context.Context, userID, bankingID string) (*models.Profile, error)
	Clear(ctx context.Context, userID string) error
	HandleKYCMessage(ctx context.Context, userID, origin string, msg models.KYCMessage) (*models.Profile, error)
}

// BindReceiverRequest represents the request body for binding a receiver
// swagger:model BindReceiverRequest
type BindReceiverRequest struct {
	// Receiver id issued by the provider after KYC
	// default: re_000000000000
	ReceiverID string `json:"receiver_id,omitempty"`

	// Preferred bank account id for offramp
	BankingID string `json:"banking_id,omitempty"`
}

// KYCMessageRequest represents a message relayed from the hosted KYC page
// swagger:model KYCMessageRequest
type KYCMessageRequest struct {
	// Origin of the page that posted the message
	// required: true
	// default: https://app.blindpay.com
	Origin string `json:"origin"`

	// Message payload
	Data models.KYCMessage `json:"data"`
}

// NewGetProfileHandler returns an HTTP handler reading the caller's receiver binding.
// @Summary Get KYC profile
// @Tags kyc
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /kyc/receiver [get]
// @Security BearerAuth
func NewGetProfileHandler(svc IdentityBinder, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewBindReceiverHandler returns an HTTP handler binding a receiver and preferred bank account.
// @Summary Bind receiver
// @Tags kyc
// @Accept json
// @Produce json
// @Param request body BindReceiverRequest true "Binding"
// @Success 200 {object} models.Profile "Profile"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /kyc/receiver [put]
// @Security BearerAuth
func NewBindReceiverHandler(svc IdentityBinder, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		var req BindReceiverRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		req.ReceiverID = strings.TrimSpace(req.ReceiverID)
		req.BankingID = strings.TrimSpace(req.BankingID)
		if req.ReceiverID == "" && req.BankingID == "" {
			writeBadRequest(w, "receiver_id or banking_id is required")
			return
		}

		var (
			profile *models.Profile
			err     error
		)
		if req.ReceiverID != "" {
			if profile, err = svc.BindReceiver(r.Context(), userID, req.ReceiverID); err != nil {
				writeError(w, err)
				return
			}
		}
		if req.BankingID != "" {
			if profile, err = svc.BindBankingID(r.Context(), userID, req.BankingID); err != nil {
				writeError(w, err)
				return
			}
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewClearProfileHandler returns an HTTP handler removing the caller's receiver binding.
// @Summary Clear KYC profile
// @Tags kyc
// @Success 204 "Cleared"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /kyc/receiver [delete]
// @Security BearerAuth
func NewClearProfileHandler(svc IdentityBinder, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		if err := svc.Clear(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewKYCMessageHandler returns an HTTP handler accepting completion messages from the hosted KYC page.
// @Summary Relay KYC message
// @Description Binds the receiver announced by the hosted KYC page. Messages from origins outside the allow list are rejected
// @Tags kyc
// @Accept json
// @Produce json
// @Param request body KYCMessageRequest true "KYC message"
// @Success 200 {object} models.Profile "Profile"
// @Failure 400 {object} ErrorResponse "Invalid message"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Origin not allowed"
// @Router /kyc/messages [post]
// @Security BearerAuth
func NewKYCMessageHandler(svc IdentityBinder, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok || userID == "" {
			writeUnauthorized(w)
			return
		}

		var req KYCMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		profile, err := svc.HandleKYCMessage(r.Context(), userID, req.Origin, req.Data)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
