package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

// ConversionsSchema creates the conversion journal table.
const ConversionsSchema = `
	CREATE TABLE IF NOT EXISTS conversions (
		conversion_id UUID PRIMARY KEY,
		provider_id VARCHAR(64) NOT NULL DEFAULT '',
		user_id VARCHAR(128) NOT NULL,
		direction VARCHAR(16) NOT NULL,
		quote_id VARCHAR(64) NOT NULL DEFAULT '',
		from_currency VARCHAR(16) NOT NULL,
		to_currency VARCHAR(16) NOT NULL,
		from_amount NUMERIC(20,2) NOT NULL,
		to_amount NUMERIC(20,2),
		status VARCHAR(16) NOT NULL,
		wallet_address VARCHAR(64) NOT NULL DEFAULT '',
		approval_tx_hash VARCHAR(80) NOT NULL DEFAULT '',
		memo_code VARCHAR(64) NOT NULL DEFAULT '',
		failure_reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS conversions_user_created_idx ON conversions (user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS conversions_provider_idx ON conversions (provider_id) WHERE provider_id <> '';
`

const conversionColumns = `conversion_id, provider_id, user_id, direction, quote_id,
	from_currency, to_currency, from_amount::TEXT AS from_amount, COALESCE(to_amount::TEXT, '') AS to_amount,
	status, wallet_address, approval_tx_hash, memo_code, failure_reason, created_at, updated_at`

// Migrate creates the journal schema if it does not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, ConversionsSchema)
	logger.Log.Infow("journal migration", "error", err)
	return err
}

// ConversionRepository is the Postgres conversion journal.
type ConversionRepository struct {
	db *sqlx.DB
}

func NewConversionRepository(db *sqlx.DB) *ConversionRepository {
	return &ConversionRepository{db: db}
}

// Save inserts a record, replacing the outcome fields when it already exists.
func (r *ConversionRepository) Save(ctx context.Context, rec *models.ConversionRecord) error {
	query := `
		INSERT INTO conversions (
			conversion_id, provider_id, user_id, direction, quote_id,
			from_currency, to_currency, from_amount, to_amount,
			status, wallet_address, approval_tx_hash, memo_code, failure_reason,
			created_at, updated_at
		)
		VALUES (
			:conversion_id, :provider_id, :user_id, :direction, :quote_id,
			:from_currency, :to_currency, CAST(:from_amount AS NUMERIC), CAST(NULLIF(:to_amount, '') AS NUMERIC),
			:status, :wallet_address, :approval_tx_hash, :memo_code, :failure_reason,
			:created_at, :updated_at
		)
		ON CONFLICT (conversion_id) DO UPDATE SET
			provider_id = EXCLUDED.provider_id,
			status = EXCLUDED.status,
			to_amount = EXCLUDED.to_amount,
			approval_tx_hash = EXCLUDED.approval_tx_hash,
			memo_code = EXCLUDED.memo_code,
			failure_reason = EXCLUDED.failure_reason,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.NamedExecContext(ctx, query, rec)

	logger.Log.Infow("journal save",
		"query", strings.Join(strings.Fields(query), " "),
		"conversion_id", rec.ConversionID,
		"status", rec.Status,
		"error", err,
	)

	return err
}

// UpdateStatusByProviderID sets the status of the record created for a provider
// payout or payin. It returns nil when no record exists or the status is unchanged.
func (r *ConversionRepository) UpdateStatusByProviderID(ctx context.Context, providerID, status string) (*models.ConversionRecord, error) {
	query := `
		UPDATE conversions
		SET status = $2, updated_at = NOW()
		WHERE provider_id = $1 AND status <> $2
		RETURNING ` + conversionColumns

	var rec models.ConversionRecord
	err := r.db.GetContext(ctx, &rec, query, providerID, status)

	logger.Log.Infow("journal status update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{providerID, status},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByUser returns the user's records, newest first.
func (r *ConversionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.ConversionRecord, error) {
	query := `
		SELECT ` + conversionColumns + `
		FROM conversions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	records := []models.ConversionRecord{}
	err := r.db.SelectContext(ctx, &records, query, userID, limit, offset)

	logger.Log.Infow("journal list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"result", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return records, nil
}
