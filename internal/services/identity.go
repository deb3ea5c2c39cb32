package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

//go:generate mockgen -source=identity.go -destination=identity_mock.go -package=services

// ProfileStore persists the user to receiver binding.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)    // Returns an empty profile when none is stored
	SetReceiverID(ctx context.Context, userID, receiverID string) error // Binds a receiver
	SetBankingID(ctx context.Context, userID, bankingID string) error   // Stores the preferred bank account
	Delete(ctx context.Context, userID string) error                    // Removes the profile
}

// IdentityService binds wallet-connected users to KYC'd provider receivers.
type IdentityService struct {
	store          ProfileStore
	allowedOrigins map[string]struct{}
}

// NewIdentityService creates a new IdentityService accepting KYC messages from
// the given origins only.
func NewIdentityService(store ProfileStore, allowedOrigins []string) *IdentityService {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = normalizeOrigin(o); o != "" {
			origins[o] = struct{}{}
		}
	}
	return &IdentityService{store: store, allowedOrigins: origins}
}

func normalizeOrigin(origin string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
}

// GetProfile returns the user's profile, read fresh from the store.
func (s *IdentityService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	if userID == "" {
		return nil, models.ValidationError("user id is required")
	}
	profile, err := s.store.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to read profile", "user_id", userID, "error", err)
		return nil, err
	}
	return profile, nil
}

// ReceiverID returns the receiver bound to the user, or models.ErrNotFound
// when KYC has not been completed.
func (s *IdentityService) ReceiverID(ctx context.Context, userID string) (string, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if !profile.KYCComplete() {
		return "", fmt.Errorf("%w: no receiver bound to user %s", models.ErrNotFound, userID)
	}
	return profile.ReceiverID, nil
}

// BindReceiver stores the receiver for the user.
func (s *IdentityService) BindReceiver(ctx context.Context, userID, receiverID string) (*models.Profile, error) {
	receiverID = strings.TrimSpace(receiverID)
	if userID == "" || receiverID == "" {
		return nil, models.ValidationError("user id and receiver_id are required")
	}
	if err := s.store.SetReceiverID(ctx, userID, receiverID); err != nil {
		logger.Log.Errorw("failed to bind receiver", "user_id", userID, "receiver_id", receiverID, "error", err)
		return nil, err
	}
	logger.Log.Infow("receiver bound", "user_id", userID, "receiver_id", receiverID)
	return s.GetProfile(ctx, userID)
}

// BindBankingID stores the user's preferred bank account.
func (s *IdentityService) BindBankingID(ctx context.Context, userID, bankingID string) (*models.Profile, error) {
	if userID == "" || bankingID == "" {
		return nil, models.ValidationError("user id and banking_id are required")
	}
	if err := s.store.SetBankingID(ctx, userID, bankingID); err != nil {
		logger.Log.Errorw("failed to bind banking id", "user_id", userID, "error", err)
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// Clear removes the user's binding.
func (s *IdentityService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return models.ValidationError("user id is required")
	}
	if err := s.store.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to clear profile", "user_id", userID, "error", err)
		return err
	}
	logger.Log.Infow("profile cleared", "user_id", userID)
	return nil
}

// HandleKYCMessage applies a message posted by the hosted KYC page. Messages
// from origins outside the allow-list are rejected with models.ErrForbiddenOrigin.
func (s *IdentityService) HandleKYCMessage(ctx context.Context, userID, origin string, msg models.KYCMessage) (*models.Profile, error) {
	if _, ok := s.allowedOrigins[normalizeOrigin(origin)]; !ok {
		logger.Log.Warnw("kyc message from disallowed origin", "user_id", userID, "origin", origin)
		return nil, fmt.Errorf("%w: %s", models.ErrForbiddenOrigin, origin)
	}

	switch msg.Type {
	case models.KYCMessageReceiverCreated:
		if msg.ReceiverID == "" {
			return nil, models.ValidationError("receiverId is required for %s", msg.Type)
		}
		return s.BindReceiver(ctx, userID, msg.ReceiverID)
	case models.KYCMessageCompleted:
		if msg.ReceiverID != "" {
			return s.BindReceiver(ctx, userID, msg.ReceiverID)
		}
		logger.Log.Infow("kyc completed", "user_id", userID)
		return s.GetProfile(ctx, userID)
	default:
		return nil, models.ValidationError("unknown kyc message type %q", msg.Type)
	}
}
