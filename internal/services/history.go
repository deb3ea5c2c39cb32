package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stable-ramp/internal/metrics"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

//go:generate mockgen -source=history.go -destination=history_mock.go -package=services

const (
	refreshPageSize = 100 // payouts per provider page
	refreshMaxPages = 20  // upper bound on pages read by one refresh
)

// HistoryGateway lists provider payouts and payins.
type HistoryGateway interface {
	ListPayouts(ctx context.Context, params models.ListParams) (*models.PayoutPage, error) // One page of payouts
	ListPayins(ctx context.Context, params models.ListParams) (*models.PayinPage, error)   // One page of payins
}

// ConversionStatusUpdater updates journaled statuses from provider data.
type ConversionStatusUpdater interface {
	// UpdateStatusByProviderID returns the updated record, or nil when no
	// record exists or the status was already current.
	UpdateStatusByProviderID(ctx context.Context, providerID, status string) (*models.ConversionRecord, error)
}

// HistoryService lists transactions and keeps in-flight payouts up to date.
type HistoryService struct {
	gateway     HistoryGateway
	journal     ConversionStatusUpdater
	kafkaWriter KafkaWriter

	mu      sync.Mutex
	watched map[string]struct{}
}

// NewHistoryService creates a new HistoryService. journal and kafkaWriter may be nil.
func NewHistoryService(gateway HistoryGateway, journal ConversionStatusUpdater, kafkaWriter KafkaWriter) *HistoryService {
	return &HistoryService{
		gateway:     gateway,
		journal:     journal,
		kafkaWriter: kafkaWriter,
		watched:     make(map[string]struct{}),
	}
}

// ListTransactions returns the payouts sent from walletAddress, normalised for
// display. The address match is case-insensitive.
func (s *HistoryService) ListTransactions(ctx context.Context, walletAddress string, params models.ListParams) ([]models.Transaction, *models.Pagination, error) {
	if walletAddress == "" {
		return nil, nil, models.ValidationError("wallet_address is required")
	}

	page, err := s.gateway.ListPayouts(ctx, params)
	if err != nil {
		logger.Log.Errorw("failed to list payouts", "wallet_address", walletAddress, "error", err)
		return nil, nil, err
	}

	txs := make([]models.Transaction, 0, len(page.Data))
	for _, p := range page.Data {
		if !strings.EqualFold(p.SenderWalletAddress, walletAddress) {
			continue
		}
		txs = append(txs, ToTransaction(p))
	}

	if hasProcessing(txs) {
		s.Watch(walletAddress)
	}
	return txs, &page.Pagination, nil
}

// ListPayins returns one page of payins for a receiver.
func (s *HistoryService) ListPayins(ctx context.Context, receiverID string, params models.ListParams) (*models.PayinPage, error) {
	if receiverID == "" {
		return nil, models.ValidationError("receiver_id is required")
	}
	params.ReceiverID = receiverID

	page, err := s.gateway.ListPayins(ctx, params)
	if err != nil {
		logger.Log.Errorw("failed to list payins", "receiver_id", receiverID, "error", err)
		return nil, err
	}
	return page, nil
}

// Watch adds a wallet to the refresh set.
func (s *HistoryService) Watch(walletAddress string) {
	if walletAddress == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watched[strings.ToLower(walletAddress)] = struct{}{}
	metrics.SetWatchedWallets(len(s.watched))
}

// Unwatch removes a wallet from the refresh set.
func (s *HistoryService) Unwatch(walletAddress string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.watched, strings.ToLower(walletAddress))
	metrics.SetWatchedWallets(len(s.watched))
}

// Watched returns the wallets currently refreshed.
func (s *HistoryService) Watched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.watched))
	for w := range s.watched {
		out = append(out, w)
	}
	return out
}

// Refresh pages through the provider's payouts, updates the journal for every
// payout sent from a watched wallet and stops watching wallets with nothing
// left in flight. A wallet is only unwatched once the whole payout list has
// been read; when the page limit stops the scan early every wallet stays
// watched. With no watched wallets it does nothing.
func (s *HistoryService) Refresh(ctx context.Context) error {
	wallets := s.Watched()
	if len(wallets) == 0 {
		logger.Log.Debugw("history refresh skipped, nothing in flight")
		return nil
	}

	inFlight := make(map[string]bool, len(wallets))
	for _, w := range wallets {
		inFlight[w] = false
	}

	params := models.ListParams{Limit: refreshPageSize}
	exhausted := false
	for pages := 0; pages < refreshMaxPages; pages++ {
		page, err := s.gateway.ListPayouts(ctx, params)
		if err != nil {
			logger.Log.Errorw("history refresh failed", "page", pages, "error", err)
			return err
		}

		for _, p := range page.Data {
			wallet := strings.ToLower(p.SenderWalletAddress)
			if _, ok := inFlight[wallet]; !ok {
				continue
			}
			status := p.PayoutStatus()
			if status == models.StatusProcessing {
				inFlight[wallet] = true
			}
			s.updateStatus(ctx, p, status)
		}

		if !page.Pagination.HasMore || len(page.Data) == 0 {
			exhausted = true
			break
		}
		params.StartingAfter = page.Data[len(page.Data)-1].ID
	}

	if !exhausted {
		logger.Log.Warnw("history refresh stopped at page limit, keeping watch set",
			"pages", refreshMaxPages, "watched", len(wallets))
		return nil
	}

	for wallet, processing := range inFlight {
		if !processing {
			logger.Log.Infow("wallet has no payouts in flight, unwatching", "wallet_address", wallet)
			s.Unwatch(wallet)
		}
	}
	return nil
}

func (s *HistoryService) updateStatus(ctx context.Context, p models.Payout, status models.ConversionStatus) {
	if s.journal == nil {
		return
	}
	rec, err := s.journal.UpdateStatusByProviderID(ctx, p.ID, string(status))
	if err != nil {
		logger.Log.Errorw("failed to update conversion status", "payout_id", p.ID, "status", status, "error", err)
		return
	}
	if rec == nil {
		return
	}

	logger.Log.Infow("conversion status changed", "conversion_id", rec.ConversionID, "payout_id", p.ID, "status", status)
	if status != models.StatusProcessing {
		metrics.ObserveConversion(rec.Direction, string(status))
	}

	publishConversionEvent(ctx, s.kafkaWriter, models.ConversionEvent{
		EventID:      uuid.NewString(),
		Type:         models.EventConversionStatusChanged,
		Timestamp:    time.Now().Unix(),
		UserID:       rec.UserID,
		ConversionID: rec.ConversionID,
		ProviderID:   p.ID,
		Direction:    models.Direction(rec.Direction),
		Status:       status,
		FromCurrency: rec.FromCurrency,
		ToCurrency:   rec.ToCurrency,
		FromAmount:   rec.FromAmount,
		ToAmount:     rec.ToAmount,
	})
}

// ToTransaction normalises a provider payout into a history row.
func ToTransaction(p models.Payout) models.Transaction {
	tx := models.Transaction{
		ID:           p.ID,
		PayoutID:     p.ID,
		QuoteID:      p.QuoteID,
		FromCurrency: p.Token,
		ToCurrency:   p.Currency,
		FromAmount:   models.FromMinorUnits(p.SenderAmount),
		ToAmount:     models.FromMinorUnits(p.ReceiverAmount),
		Status:       p.PayoutStatus(),
		Timestamp:    p.CreatedAt,
		Network:      p.Network,
		Description:  p.Description,
		Tracking:     models.TrackingSteps{},
		RawPayout:    p.Raw,
	}

	if p.ReceiverLocalAmount != 0 {
		v := models.FromMinorUnits(p.ReceiverLocalAmount)
		tx.ReceiverLocalAmount = &v
	}
	if p.PartnerFeeAmount != 0 {
		v := models.FromMinorUnits(p.PartnerFeeAmount)
		tx.PartnerFeeAmount = &v
	}
	if p.TotalFeeAmount != 0 {
		v := models.FromMinorUnits(p.TotalFeeAmount)
		tx.TotalFeeAmount = &v
	}

	steps := map[string]*models.TrackingStep{
		"transaction": p.TrackingTransaction,
		"payment":     p.TrackingPayment,
		"liquidity":   p.TrackingLiquidity,
		"complete":    p.TrackingComplete,
		"partner_fee": p.TrackingPartnerFee,
	}
	for name, step := range steps {
		if step != nil {
			tx.Tracking[name] = step
		}
	}

	if p.TrackingTransaction != nil {
		tx.TxHash = p.TrackingTransaction.TransactionHash
	}
	if p.TrackingComplete != nil && p.TrackingComplete.CompletedAt != "" {
		if t, err := time.Parse(time.RFC3339, p.TrackingComplete.CompletedAt); err == nil {
			tx.CompletedAt = &t
		}
	}
	return tx
}

func hasProcessing(txs []models.Transaction) bool {
	for _, tx := range txs {
		if tx.Status == models.StatusProcessing {
			return true
		}
	}
	return false
}
