package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderError_Unwrap(t *testing.T) {
	err := fmt.Errorf("initiate payout: %w", &ProviderError{StatusCode: 409, Summary: "quote already used"})

	assert.True(t, errors.Is(err, ErrUpstreamProvider))

	var perr *ProviderError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, 409, perr.StatusCode)
	assert.Contains(t, err.Error(), "quote already used")
}

func TestConversionError_Unwrap(t *testing.T) {
	err := &ConversionError{
		State: StateApprovalPending,
		Trace: []State{StateIdle, StateQuoteRequested, StateQuoteCreated, StateApprovalPending, StateFailed},
		Err:   fmt.Errorf("%w: reverted", ErrApprovalFailed),
	}

	assert.True(t, errors.Is(err, ErrApprovalFailed))
	assert.False(t, errors.Is(err, ErrUpstreamProvider))
	assert.Contains(t, err.Error(), "approval_pending")
}

func TestSelectionError(t *testing.T) {
	err := &SelectionError{Kind: KindBankAccount, Options: []string{"ba_1", "ba_2"}}

	assert.True(t, errors.Is(err, ErrSelectionRequired))
	assert.Equal(t, "2 bank_account candidates, choose one of: ba_1, ba_2", err.Error())
}

func TestValidationError(t *testing.T) {
	err := ValidationError("amount must be at least %s", MinAmount)

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "invalid request: amount must be at least 0.01", err.Error())
}
