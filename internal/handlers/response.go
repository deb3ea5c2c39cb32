package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeConfiguration         = "CONFIGURATION_ERROR"
	CodeProvider              = "PROVIDER_ERROR"
	CodeApprovalFailed        = "APPROVAL_FAILED"
	CodeQuoteExpired          = "QUOTE_EXPIRED"
	CodeNotFound              = "NOT_FOUND"
	CodeSelectionRequired     = "SELECTION_REQUIRED"
	CodeIncompleteBankAccount = "INCOMPLETE_BANK_ACCOUNT"
	CodeForbiddenOrigin       = "FORBIDDEN_ORIGIN"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeInternal              = "INTERNAL_ERROR"
)

// ErrorResponse represents an error returned by any endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: invalid request
	Error string `json:"error"`

	// Machine readable error kind
	// default: VALIDATION_ERROR
	Code string `json:"code"`

	// Conversion state the flow stopped in, for conversion failures
	State models.State `json:"state,omitempty"`

	// States visited before failing
	Trace []models.State `json:"trace,omitempty"`

	// Candidate payment method ids when a selection is required
	Options []string `json:"options,omitempty"`

	// Status returned by the payments provider
	ProviderStatus int `json:"provider_status,omitempty"`

	// Provider error body, parsed JSON or raw text
	Details any `json:"details,omitempty"`
}

// UserIDGetter returns the authenticated user id stored in the request context.
type UserIDGetter func(ctx context.Context) (string, bool)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Code: CodeUnauthorized})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Code: CodeValidation})
}

// writeError maps an error kind onto its HTTP status.
func writeError(w http.ResponseWriter, err error) {
	status, resp := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Errorw("request failed", "status", status, "code", resp.Code, "error", err)
	}
	writeJSON(w, status, resp)
}

func errorResponse(err error) (int, ErrorResponse) {
	resp := ErrorResponse{Error: err.Error()}

	var cerr *models.ConversionError
	if errors.As(err, &cerr) {
		resp.State = cerr.State
		resp.Trace = cerr.Trace
	}

	var perr *models.ProviderError
	var serr *models.SelectionError

	switch {
	case errors.As(err, &perr):
		resp.Code = CodeProvider
		resp.ProviderStatus = perr.StatusCode
		resp.Details = perr.Body
		status := perr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return status, resp
	case errors.As(err, &serr):
		resp.Code = CodeSelectionRequired
		resp.Options = serr.Options
		return http.StatusConflict, resp
	case errors.Is(err, models.ErrValidation):
		resp.Code = CodeValidation
		return http.StatusBadRequest, resp
	case errors.Is(err, models.ErrConfiguration):
		resp.Code = CodeConfiguration
		return http.StatusInternalServerError, resp
	case errors.Is(err, models.ErrUpstreamProvider):
		resp.Code = CodeProvider
		return http.StatusBadGateway, resp
	case errors.Is(err, models.ErrApprovalFailed):
		resp.Code = CodeApprovalFailed
		return http.StatusBadGateway, resp
	case errors.Is(err, models.ErrQuoteExpired):
		resp.Code = CodeQuoteExpired
		return http.StatusGone, resp
	case errors.Is(err, models.ErrNotFound):
		resp.Code = CodeNotFound
		return http.StatusNotFound, resp
	case errors.Is(err, models.ErrIncompleteBankAccount):
		resp.Code = CodeIncompleteBankAccount
		return http.StatusUnprocessableEntity, resp
	case errors.Is(err, models.ErrForbiddenOrigin):
		resp.Code = CodeForbiddenOrigin
		return http.StatusForbidden, resp
	default:
		resp.Code = CodeInternal
		resp.Error = "Internal server error"
		return http.StatusInternalServerError, resp
	}
}

// parseListParams reads limit, offset and cursor query parameters.
// An absent limit is left zero so the service default applies.
func parseListParams(r *http.Request) (models.ListParams, error) {
	q := r.URL.Query()
	params := models.ListParams{
		StartingAfter: q.Get("starting_after"),
		EndingBefore:  q.Get("ending_before"),
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > 100 {
			return params, models.ValidationError("limit must be between 1 and 100")
		}
		params.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return params, models.ValidationError("offset must be a non-negative integer")
		}
		params.Offset = offset
	}
	return params, nil
}
