package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

const (
	profileReceiverField = "receiver_id"
	profileBankingField  = "banking_id"
)

// ProfileRepository stores user profiles as Redis hashes keyed by user id.
type ProfileRepository struct {
	client *redis.Client
}

// NewProfileRepository creates a new repository instance.
func NewProfileRepository(client *redis.Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

func profileKey(userID string) string {
	return "profile:" + userID
}

// Get returns the user's profile. A user without a stored profile gets an
// empty one.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	key := profileKey(userID)

	fields, err := r.client.HGetAll(ctx, key).Result()

	logger.Log.Infow("profile get",
		"key", key,
		"result", fields,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &models.Profile{
		UserID:     userID,
		ReceiverID: fields[profileReceiverField],
		BankingID:  fields[profileBankingField],
	}, nil
}

// SetReceiverID binds a receiver to the user.
func (r *ProfileRepository) SetReceiverID(ctx context.Context, userID, receiverID string) error {
	return r.set(ctx, userID, profileReceiverField, receiverID)
}

// SetBankingID stores the user's preferred bank account.
func (r *ProfileRepository) SetBankingID(ctx context.Context, userID, bankingID string) error {
	return r.set(ctx, userID, profileBankingField, bankingID)
}

func (r *ProfileRepository) set(ctx context.Context, userID, field, value string) error {
	key := profileKey(userID)
	err := r.client.HSet(ctx, key, field, value).Err()

	logger.Log.Infow("profile set",
		"key", key,
		"field", field,
		"value", value,
		"error", err,
	)

	return err
}

// Delete removes the user's profile.
func (r *ProfileRepository) Delete(ctx context.Context, userID string) error {
	key := profileKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("profile delete",
		"key", key,
		"error", err,
	)

	return err
}
