package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

func TestListTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := NewMockHistoryLister(ctrl)
	const wallet = "0xAbC0000000000000000000000000000000000001"

	tests := []struct {
		name           string
		userID         string
		query          string
		setup          func()
		expectedStatus int
		expectedCount  int
	}{
		{
			name:   "success",
			userID: "user-1",
			query:  "?wallet_address=" + wallet + "&limit=25&starting_after=po_9",
			setup: func() {
				mockHistory.EXPECT().
					ListTransactions(gomock.Any(), wallet, models.ListParams{Limit: 25, StartingAfter: "po_9"}).
					Return([]models.Transaction{{
						ID:         "po_1",
						FromAmount: decimal.RequireFromString("100"),
						Status:     models.StatusProcessing,
					}}, &models.Pagination{HasMore: true, NextPage: "po_1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:   "no pagination and nil list",
			userID: "user-1",
			query:  "?wallet_address=" + wallet,
			setup: func() {
				mockHistory.EXPECT().ListTransactions(gomock.Any(), wallet, models.ListParams{}).Return(nil, nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "missing wallet",
			userID:         "user-1",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid limit",
			userID:         "user-1",
			query:          "?wallet_address=" + wallet + "&limit=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "provider failure",
			userID: "user-1",
			query:  "?wallet_address=" + wallet,
			setup: func() {
				mockHistory.EXPECT().ListTransactions(gomock.Any(), wallet, gomock.Any()).
					Return(nil, nil, &models.ProviderError{StatusCode: http.StatusInternalServerError, Summary: "boom"})
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "unauthorized",
			query:          "?wallet_address=" + wallet,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			handler := NewListTransactionsHandler(mockHistory, userIDGetter(tt.userID))
			req := httptest.NewRequest(http.MethodGet, "/payouts"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var got TransactionListResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.NotNil(t, got.Transactions)
				assert.Len(t, got.Transactions, tt.expectedCount)
			}
		})
	}
}

func TestListPayinsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := NewMockHistoryLister(ctrl)
	mockProfiles := NewMockProfileReader(ctrl)

	mockProfiles.EXPECT().GetProfile(gomock.Any(), "user-1").
		Return(&models.Profile{UserID: "user-1", ReceiverID: "re_1"}, nil)
	mockHistory.EXPECT().ListPayins(gomock.Any(), "re_1", models.ListParams{Offset: 5}).
		Return(&models.PayinPage{
			Data:       []models.Payin{{ID: "pi_1", MemoCode: "BP1"}},
			Pagination: models.Pagination{HasMore: false},
		}, nil)

	handler := NewListPayinsHandler(mockHistory, mockProfiles, userIDGetter("user-1"))
	req := httptest.NewRequest(http.MethodGet, "/payins?offset=5", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got PayinListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Payins, 1)
	assert.Equal(t, "pi_1", got.Payins[0].ID)
}
