package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

func listQuery(p models.ListParams) url.Values {
	q := url.Values{}
	limit := p.Limit
	if limit <= 0 {
		limit = 50
	}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(p.Offset))
	if p.StartingAfter != "" {
		q.Set("starting_after", p.StartingAfter)
	}
	if p.EndingBefore != "" {
		q.Set("ending_before", p.EndingBefore)
	}
	if p.ReceiverID != "" {
		q.Set("receiver_id", p.ReceiverID)
	}
	return q
}

// ListPayouts returns one page of payouts. Amounts are minor units.
func (f *BlindPayFacade) ListPayouts(ctx context.Context, params models.ListParams) (*models.PayoutPage, error) {
	var page struct {
		Data       []json.RawMessage `json:"data"`
		Pagination models.Pagination `json:"pagination"`
	}
	if _, err := f.do(ctx, "list_payouts", http.MethodGet, "/payouts", listQuery(params), nil, &page); err != nil {
		return nil, err
	}

	out := &models.PayoutPage{Data: make([]models.Payout, 0, len(page.Data)), Pagination: page.Pagination}
	for _, item := range page.Data {
		var p models.Payout
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, fmt.Errorf("%w: list_payouts: decode payout: %v", models.ErrUpstreamProvider, err)
		}
		p.Raw = item
		out.Data = append(out.Data, p)
	}
	return out, nil
}

// ListPayins returns one page of payins. Amounts are minor units.
func (f *BlindPayFacade) ListPayins(ctx context.Context, params models.ListParams) (*models.PayinPage, error) {
	var page struct {
		Data       []json.RawMessage `json:"data"`
		Pagination models.Pagination `json:"pagination"`
	}
	if _, err := f.do(ctx, "list_payins", http.MethodGet, "/payins", listQuery(params), nil, &page); err != nil {
		return nil, err
	}

	out := &models.PayinPage{Data: make([]models.Payin, 0, len(page.Data)), Pagination: page.Pagination}
	for _, item := range page.Data {
		var p models.Payin
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, fmt.Errorf("%w: list_payins: decode payin: %v", models.ErrUpstreamProvider, err)
		}
		p.Raw = item
		out.Data = append(out.Data, p)
	}
	return out, nil
}
