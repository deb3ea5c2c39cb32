package services

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stable-ramp/internal/metrics"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=conversion.go -destination=conversion_mock.go -package=services

// ConversionGateway creates and executes provider quotes.
type ConversionGateway interface {
	CreatePayoutQuote(ctx context.Context, params models.PayoutQuoteParams) (*models.Quote, error)            // Offramp quote
	CreatePayinQuote(ctx context.Context, params models.PayinQuoteParams) (*models.Quote, error)              // Onramp quote
	InitiatePayout(ctx context.Context, quoteID, senderWallet, approvalTxHash string) (*models.Payout, error) // Executes an offramp quote
	InitiatePayin(ctx context.Context, quoteID string) (*models.Payin, error)                                 // Executes an onramp quote
}

// TokenApprover grants the provider an ERC-20 allowance and waits for it to be mined.
type TokenApprover interface {
	Approve(ctx context.Context, owner, contract, spender string, amount *big.Int) (*models.ApprovalReceipt, error)
}

// PaymentMethodResolver lists a receiver's payment methods.
type PaymentMethodResolver interface {
	Resolve(ctx context.Context, receiverID string) (*models.PaymentMethods, error)
}

// ConversionJournal stores terminal conversion records.
type ConversionJournal interface {
	Save(ctx context.Context, rec *models.ConversionRecord) error                                        // Inserts or replaces a record
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.ConversionRecord, error) // Newest first
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionWatcher tracks wallets with payouts still in flight.
type TransactionWatcher interface {
	Watch(walletAddress string)
}

// ConversionDefaults are the provider parameters not carried by a request.
type ConversionDefaults struct {
	Network       string // chain the payout quote is priced on
	CurrencyType  string // sender or receiver
	CoverFees     bool
	PaymentMethod string // rail used when the bank account does not name one
}

// ConversionService runs conversion flows one request at a time. Each flow is
// strictly sequential and never retried.
type ConversionService struct {
	gateway     ConversionGateway
	approver    TokenApprover
	resolver    PaymentMethodResolver
	journal     ConversionJournal
	kafkaWriter KafkaWriter
	watcher     TransactionWatcher
	defaults    ConversionDefaults
	now         func() time.Time
}

// ConversionOption configures a ConversionService.
type ConversionOption func(*ConversionService)

// WithClock replaces the clock used for quote expiry checks.
func WithClock(now func() time.Time) ConversionOption {
	return func(s *ConversionService) {
		s.now = now
	}
}

// NewConversionService creates a new ConversionService. journal, kafkaWriter
// and watcher may be nil.
func NewConversionService(
	gateway ConversionGateway,
	approver TokenApprover,
	resolver PaymentMethodResolver,
	journal ConversionJournal,
	kafkaWriter KafkaWriter,
	watcher TransactionWatcher,
	defaults ConversionDefaults,
	opts ...ConversionOption,
) *ConversionService {
	s := &ConversionService{
		gateway:     gateway,
		approver:    approver,
		resolver:    resolver,
		journal:     journal,
		kafkaWriter: kafkaWriter,
		watcher:     watcher,
		defaults:    defaults,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// flow tracks the state machine of one conversion.
type flow struct {
	id        string
	direction models.Direction
	state     models.State
	trace     []models.State
	entered   time.Time
	now       func() time.Time
}

func newFlow(direction models.Direction, now func() time.Time) *flow {
	return &flow{
		id:        uuid.NewString(),
		direction: direction,
		state:     models.StateIdle,
		trace:     []models.State{models.StateIdle},
		entered:   now(),
		now:       now,
	}
}

func (f *flow) enter(next models.State) {
	t := f.now()
	metrics.ObserveStep(string(f.direction), string(f.state), t.Sub(f.entered))
	logger.Log.Infow("conversion state changed",
		"conversion_id", f.id,
		"direction", f.direction,
		"from", f.state,
		"to", next,
	)
	f.state = next
	f.entered = t
	f.trace = append(f.trace, next)
}

// fail moves the flow to failed and returns the error describing where it stopped.
func (f *flow) fail(err error) *models.ConversionError {
	last := f.state
	f.enter(models.StateFailed)
	return &models.ConversionError{
		State: last,
		Trace: append([]models.State(nil), f.trace...),
		Err:   err,
	}
}

// Submit runs a conversion from idle to a terminal state. Failures are returned
// as *models.ConversionError wrapping one of the models error kinds.
func (s *ConversionService) Submit(ctx context.Context, userID string, req models.ConversionRequest) (*models.ConversionResult, error) {
	f := newFlow(req.Direction, s.now)

	logger.Log.Infow("conversion submitted",
		"conversion_id", f.id,
		"user_id", userID,
		"direction", req.Direction,
		"from", req.FromCurrency,
		"to", req.ToCurrency,
		"amount", req.Amount.String(),
		"receiver_id", req.ReceiverID,
	)

	if err := validateConversion(req); err != nil {
		return nil, s.failed(ctx, userID, req, f, f.fail(err))
	}

	var (
		result *models.ConversionResult
		cerr   *models.ConversionError
	)
	switch req.Direction {
	case models.Offramp:
		result, cerr = s.offramp(ctx, req, f)
	default:
		result, cerr = s.onramp(ctx, req, f)
	}
	if cerr != nil {
		return nil, s.failed(ctx, userID, req, f, cerr)
	}

	s.completed(ctx, userID, f, result)
	return result, nil
}

// Resubmit starts a fresh flow for a request that previously failed. A new
// quote is always requested; nothing from the earlier attempt is reused.
func (s *ConversionService) Resubmit(ctx context.Context, userID string, req models.ConversionRequest) (*models.ConversionResult, error) {
	logger.Log.Infow("conversion resubmitted", "user_id", userID, "direction", req.Direction)
	return s.Submit(ctx, userID, req)
}

// ListConversions returns the user's journaled conversions, newest first.
func (s *ConversionService) ListConversions(ctx context.Context, userID string, limit, offset int) ([]models.ConversionRecord, error) {
	if s.journal == nil {
		return []models.ConversionRecord{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.journal.ListByUser(ctx, userID, limit, offset)
}

func validateConversion(req models.ConversionRequest) error {
	switch {
	case !req.Direction.Valid():
		return models.ValidationError("direction must be offramp or onramp, got %q", req.Direction)
	case req.FromCurrency == "" || req.ToCurrency == "":
		return models.ValidationError("from_currency and to_currency are required")
	case req.Amount.LessThan(models.MinAmount):
		return models.ValidationError("amount must be at least %s", models.MinAmount.String())
	case !fitsMinorUnits(req.Amount):
		return models.ValidationError("amount %s is out of range", req.Amount.String())
	case req.ReceiverID == "":
		return models.ValidationError("receiver_id is required")
	case req.Direction == models.Offramp && !common.IsHexAddress(req.WalletAddress):
		return models.ValidationError("wallet_address %q is not a valid EVM address", req.WalletAddress)
	}
	return nil
}

// bankAccountChoice returns the explicit payment method, else the saved bank
// account if the receiver still has it. An empty result means auto-select.
func bankAccountChoice(methods *models.PaymentMethods, req models.ConversionRequest) string {
	if req.PaymentMethodID != "" {
		return req.PaymentMethodID
	}
	for _, a := range methods.BankAccounts {
		if a.ID == req.PreferredBankAccountID {
			return a.ID
		}
	}
	if req.PreferredBankAccountID != "" {
		logger.Log.Warnw("saved bank account no longer on receiver, auto-selecting",
			"receiver_id", req.ReceiverID, "bank_account_id", req.PreferredBankAccountID)
	}
	return ""
}

func fitsMinorUnits(amount decimal.Decimal) bool {
	_, err := models.ToMinorUnits(amount)
	return err == nil
}

func (s *ConversionService) offramp(ctx context.Context, req models.ConversionRequest, f *flow) (*models.ConversionResult, *models.ConversionError) {
	requestAmount, err := models.ToMinorUnits(req.Amount)
	if err != nil {
		return nil, f.fail(err)
	}
	methods, err := s.resolver.Resolve(ctx, req.ReceiverID)
	if err != nil {
		return nil, f.fail(err)
	}
	account, err := SelectBankAccount(methods, bankAccountChoice(methods, req))
	if err != nil {
		return nil, f.fail(err)
	}

	paymentMethod := account.Type
	if paymentMethod == "" {
		paymentMethod = s.defaults.PaymentMethod
	}

	f.enter(models.StateQuoteRequested)
	quote, err := s.gateway.CreatePayoutQuote(ctx, models.PayoutQuoteParams{
		BankAccountID: account.ID,
		ReceiverID:    req.ReceiverID,
		CurrencyType:  s.defaults.CurrencyType,
		CoverFees:     s.defaults.CoverFees,
		RequestAmount: requestAmount,
		PaymentMethod: paymentMethod,
		Token:         req.Token(),
		Network:       s.defaults.Network,
	})
	if err != nil {
		return nil, f.fail(err)
	}
	f.enter(models.StateQuoteCreated)

	var approvalTxHash string
	if quote.Contract != nil {
		f.enter(models.StateApprovalPending)
		if err := s.checkExpiry(quote); err != nil {
			return nil, f.fail(err)
		}
		receipt, err := s.approver.Approve(ctx, req.WalletAddress, quote.Contract.Address, quote.Contract.SpenderAddress, quote.Contract.Amount)
		if err != nil {
			return nil, f.fail(err)
		}
		approvalTxHash = receipt.TransactionHash
		f.enter(models.StateApprovalConfirmed)
	}

	if err := s.checkExpiry(quote); err != nil {
		return nil, f.fail(err)
	}
	f.enter(models.StatePayoutRequested)
	payout, err := s.gateway.InitiatePayout(ctx, quote.ID, req.WalletAddress, approvalTxHash)
	if err != nil {
		return nil, f.fail(err)
	}
	f.enter(models.StateCompleted)

	status := payout.PayoutStatus()
	if status == models.StatusProcessing && s.watcher != nil {
		s.watcher.Watch(req.WalletAddress)
	}

	return &models.ConversionResult{
		ID:                 payout.ID,
		Direction:          models.Offramp,
		QuoteID:            quote.ID,
		FromCurrency:       req.FromCurrency,
		ToCurrency:         req.ToCurrency,
		FromAmount:         quotedAmount(quote.SenderAmount, req.Amount),
		ToAmount:           models.FromMinorUnits(quote.ReceiverAmount),
		Status:             status,
		WalletAddress:      req.WalletAddress,
		ApprovalTxHash:     approvalTxHash,
		Trace:              append([]models.State(nil), f.trace...),
		RawProviderPayload: payout.Raw,
	}, nil
}

func (s *ConversionService) onramp(ctx context.Context, req models.ConversionRequest, f *flow) (*models.ConversionResult, *models.ConversionError) {
	requestAmount, err := models.ToMinorUnits(req.Amount)
	if err != nil {
		return nil, f.fail(err)
	}
	methods, err := s.resolver.Resolve(ctx, req.ReceiverID)
	if err != nil {
		return nil, f.fail(err)
	}
	wallet, err := SelectBlockchainWallet(methods, req.PaymentMethodID)
	if err != nil {
		return nil, f.fail(err)
	}

	f.enter(models.StateQuoteRequested)
	quote, err := s.gateway.CreatePayinQuote(ctx, models.PayinQuoteParams{
		BlockchainWalletID: wallet.ID,
		CurrencyType:       s.defaults.CurrencyType,
		CoverFees:          s.defaults.CoverFees,
		RequestAmount:      requestAmount,
		PaymentMethod:      s.defaults.PaymentMethod,
		Token:              req.Token(),
	})
	if err != nil {
		return nil, f.fail(err)
	}
	f.enter(models.StateQuoteCreated)

	if err := s.checkExpiry(quote); err != nil {
		return nil, f.fail(err)
	}
	f.enter(models.StatePayinInitiated)
	payin, err := s.gateway.InitiatePayin(ctx, quote.ID)
	if err != nil {
		return nil, f.fail(err)
	}
	f.enter(models.StateCompleted)

	// fiat arrives later by ACH, the flow ends with the user holding instructions
	return &models.ConversionResult{
		ID:                  payin.ID,
		Direction:           models.Onramp,
		QuoteID:             quote.ID,
		FromCurrency:        req.FromCurrency,
		ToCurrency:          req.ToCurrency,
		FromAmount:          quotedAmount(quote.SenderAmount, req.Amount),
		ToAmount:            models.FromMinorUnits(quote.ReceiverAmount),
		Status:              models.StatusProcessing,
		WalletAddress:       wallet.Address,
		BankingInstructions: payin.Instructions(),
		Trace:               append([]models.State(nil), f.trace...),
		RawProviderPayload:  payin.Raw,
	}, nil
}

func (s *ConversionService) checkExpiry(q *models.Quote) error {
	if q.Expired(s.now()) {
		logger.Log.Warnw("quote expired", "quote_id", q.ID, "expires_at", q.ExpiresAt)
		return models.ErrQuoteExpired
	}
	return nil
}

// quotedAmount prefers the provider's figure and falls back to what was asked for.
func quotedAmount(minor int64, requested decimal.Decimal) decimal.Decimal {
	if minor == 0 {
		return requested
	}
	return models.FromMinorUnits(minor)
}

func (s *ConversionService) completed(ctx context.Context, userID string, f *flow, result *models.ConversionResult) {
	metrics.ObserveConversion(string(result.Direction), string(result.Status))

	rec := &models.ConversionRecord{
		ConversionID:   f.id,
		ProviderID:     result.ID,
		UserID:         userID,
		Direction:      string(result.Direction),
		QuoteID:        result.QuoteID,
		FromCurrency:   result.FromCurrency,
		ToCurrency:     result.ToCurrency,
		FromAmount:     result.FromAmount.String(),
		ToAmount:       result.ToAmount.String(),
		Status:         string(result.Status),
		WalletAddress:  strings.ToLower(result.WalletAddress),
		ApprovalTxHash: result.ApprovalTxHash,
	}
	if result.BankingInstructions != nil {
		rec.MemoCode = result.BankingInstructions.MemoCode
	}
	s.record(ctx, rec)

	s.publishEvent(ctx, models.ConversionEvent{
		EventID:      uuid.NewString(),
		Type:         models.EventConversionCompleted,
		Timestamp:    s.now().Unix(),
		UserID:       userID,
		ConversionID: f.id,
		ProviderID:   result.ID,
		Direction:    result.Direction,
		Status:       result.Status,
		FromCurrency: result.FromCurrency,
		ToCurrency:   result.ToCurrency,
		FromAmount:   result.FromAmount.String(),
		ToAmount:     result.ToAmount.String(),
	})

	logger.Log.Infow("conversion completed",
		"conversion_id", f.id,
		"provider_id", result.ID,
		"status", result.Status,
		"trace", result.Trace,
	)
}

func (s *ConversionService) failed(ctx context.Context, userID string, req models.ConversionRequest, f *flow, cerr *models.ConversionError) error {
	metrics.ObserveConversion(string(req.Direction), string(models.StatusFailed))

	logger.Log.Errorw("conversion failed",
		"conversion_id", f.id,
		"state", cerr.State,
		"trace", cerr.Trace,
		"error", cerr.Err,
	)

	// requests rejected before leaving idle are not journaled
	if cerr.State != models.StateIdle {
		s.record(ctx, &models.ConversionRecord{
			ConversionID:  f.id,
			UserID:        userID,
			Direction:     string(req.Direction),
			FromCurrency:  req.FromCurrency,
			ToCurrency:    req.ToCurrency,
			FromAmount:    req.Amount.String(),
			Status:        string(models.StatusFailed),
			WalletAddress: strings.ToLower(req.WalletAddress),
			FailureReason: cerr.Err.Error(),
		})
	}

	s.publishEvent(ctx, models.ConversionEvent{
		EventID:      uuid.NewString(),
		Type:         models.EventConversionFailed,
		Timestamp:    s.now().Unix(),
		UserID:       userID,
		ConversionID: f.id,
		Direction:    req.Direction,
		Status:       models.StatusFailed,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		FromAmount:   req.Amount.String(),
		FailedState:  cerr.State,
		Error:        cerr.Err.Error(),
	})

	return cerr
}

func (s *ConversionService) record(ctx context.Context, rec *models.ConversionRecord) {
	if s.journal == nil {
		return
	}
	now := s.now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if err := s.journal.Save(ctx, rec); err != nil {
		logger.Log.Errorw("failed to journal conversion", "conversion_id", rec.ConversionID, "error", err)
	}
}

// publishEvent publishes a conversion event to Kafka.
func (s *ConversionService) publishEvent(ctx context.Context, event models.ConversionEvent) {
	publishConversionEvent(ctx, s.kafkaWriter, event)
}

func publishConversionEvent(ctx context.Context, w KafkaWriter, event models.ConversionEvent) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "conversion_id", event.ConversionID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal conversion event for Kafka", "conversion_id", event.ConversionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ConversionID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		metrics.IncEventPublishErrors()
		logger.Log.Errorw("Failed to publish conversion event to Kafka", "conversion_id", event.ConversionID, "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("Conversion event published to Kafka", "conversion_id", event.ConversionID, "type", event.Type)
	}
}
