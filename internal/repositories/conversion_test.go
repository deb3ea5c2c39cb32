package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var recordColumns = []string{
	"conversion_id", "provider_id", "user_id", "direction", "quote_id",
	"from_currency", "to_currency", "from_amount", "to_amount",
	"status", "wallet_address", "approval_tx_hash", "memo_code", "failure_reason", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

func TestConversionRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConversionRepository(db)
	now := time.Now().UTC()

	rec := &models.ConversionRecord{
		ConversionID: uuid.NewString(),
		ProviderID:   "po_1",
		UserID:       "user-1",
		Direction:    "offramp",
		QuoteID:      "qu_1",
		FromCurrency: "USDB",
		ToCurrency:   "USD",
		FromAmount:   "100",
		ToAmount:     "98.5",
		Status:       "processing",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO conversions").
		WithArgs(
			rec.ConversionID, "po_1", "user-1", "offramp", "qu_1",
			"USDB", "USD", "100", "98.5",
			"processing", "", "", "", "",
			now, now,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversionRepository_UpdateStatusByProviderID(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		wantNil bool
		wantErr bool
	}{
		{
			name: "status changed",
			rows: sqlmock.NewRows(recordColumns).AddRow(
				"c1", "po_1", "user-1", "offramp", "qu_1", "USDB", "USD", "100.00", "98.50",
				"completed", "0xabc", "", "", "", now, now,
			),
		},
		{
			name:    "unchanged or unknown",
			rows:    sqlmock.NewRows(recordColumns),
			wantNil: true,
		},
		{
			name:    "database error",
			err:     errors.New("connection reset"),
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewConversionRepository(db)

			q := mock.ExpectQuery("UPDATE conversions").WithArgs("po_1", "completed")
			if tt.err != nil {
				q.WillReturnError(tt.err)
			} else {
				q.WillReturnRows(tt.rows)
			}

			rec, err := repo.UpdateStatusByProviderID(context.Background(), "po_1", "completed")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, rec)
			} else {
				require.NotNil(t, rec)
				assert.Equal(t, "c1", rec.ConversionID)
				assert.Equal(t, "completed", rec.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConversionRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConversionRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM conversions WHERE user_id = \\$1").
		WithArgs("user-1", 10, 0).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("c2", "pi_1", "user-1", "onramp", "pq_1", "USD", "USDB", "10.01", "9.50", "processing", "", "", "BP1", "", now, now).
			AddRow("c1", "", "user-1", "offramp", "", "USDB", "USD", "5.00", "", "failed", "0xabc", "", "", "quote expired", now, now))

	records, err := repo.ListByUser(context.Background(), "user-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "BP1", records[0].MemoCode)
	assert.Equal(t, "quote expired", records[1].FailureReason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func setupJournalPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func TestConversionRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}

	db, cleanup := setupJournalPostgres(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewConversionRepository(db)

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := &models.ConversionRecord{
		ConversionID:  uuid.NewString(),
		ProviderID:    "po_1",
		UserID:        "user-1",
		Direction:     "offramp",
		QuoteID:       "qu_1",
		FromCurrency:  "USDB",
		ToCurrency:    "USD",
		FromAmount:    "100",
		ToAmount:      "98.5",
		Status:        "processing",
		WalletAddress: "0xabc",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, repo.Save(ctx, rec))

	failed := &models.ConversionRecord{
		ConversionID:  uuid.NewString(),
		UserID:        "user-1",
		Direction:     "offramp",
		FromCurrency:  "USDB",
		ToCurrency:    "USD",
		FromAmount:    "5",
		Status:        "failed",
		FailureReason: "token approval failed",
		CreatedAt:     now.Add(-time.Minute),
		UpdatedAt:     now.Add(-time.Minute),
	}
	require.NoError(t, repo.Save(ctx, failed))

	records, err := repo.ListByUser(ctx, "user-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, rec.ConversionID, records[0].ConversionID)
	assert.Equal(t, "100.00", records[0].FromAmount)
	assert.Equal(t, "", records[1].ToAmount)

	updated, err := repo.UpdateStatusByProviderID(ctx, "po_1", "completed")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "completed", updated.Status)

	again, err := repo.UpdateStatusByProviderID(ctx, "po_1", "completed")
	require.NoError(t, err)
	assert.Nil(t, again)
}
