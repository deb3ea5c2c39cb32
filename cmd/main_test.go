package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	// Application
	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)

	// PostgreSQL
	assert.Equal(t, "localhost", cfg.PGHost)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	// Redis
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 10, cfg.RedisPoolSize)

	// Kafka
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "conversions", cfg.KafkaTopic)

	// BlindPay
	assert.Equal(t, "https://api.blindpay.com/v1", cfg.BlindPayBaseURL)
	assert.Empty(t, cfg.BlindPayAPIKey)
	assert.Equal(t, 30*time.Second, cfg.BlindPayTimeout)
	assert.Equal(t, "base_sepolia", cfg.BlindPayNetwork)
	assert.Equal(t, "sender", cfg.BlindPayCurrencyType)
	assert.False(t, cfg.BlindPayCoverFees)
	assert.Equal(t, "ach", cfg.BlindPayPaymentMethod)
	assert.Equal(t, "USDB", cfg.Token)
	assert.Equal(t, "USD", cfg.Fiat)

	// Chain
	assert.Equal(t, int64(84532), cfg.ChainID)
	assert.Equal(t, 120*time.Second, cfg.ChainConfirmTimeout)

	// KYC and history
	assert.Equal(t, []string{"https://app.blindpay.com"}, cfg.KYCAllowedOrigins)
	assert.Equal(t, "@every 30s", cfg.HistoryRefreshSchedule)

	// JWT
	assert.Equal(t, "my_super_secret_key", cfg.JWTSecretKey)
	assert.Equal(t, time.Hour, cfg.JWTExp)
	assert.Empty(t, cfg.JWTIssuer)
	assert.Equal(t, 30*time.Second, cfg.JWTLeeway)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_LOG_FORMAT", "console")
	os.Setenv("APP_CORS_ORIGINS", "https://ramp.example.com, https://admin.example.com")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_DB", "2")

	os.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	os.Setenv("KAFKA_TOPIC", "ramp.conversions")

	os.Setenv("BLINDPAY_INSTANCE_ID", "in_123")
	os.Setenv("BLINDPAY_API_KEY", "key")
	os.Setenv("BLINDPAY_COVER_FEES", "true")
	os.Setenv("BLINDPAY_TOKEN", "usdc")

	os.Setenv("CHAIN_ID", "8453")
	os.Setenv("CHAIN_CONFIRM_TIMEOUT_SECOND", "45")

	os.Setenv("KYC_ALLOWED_ORIGINS", "https://app.blindpay.com,https://sandbox.blindpay.com")
	os.Setenv("HISTORY_REFRESH_SCHEDULE", "@every 1m")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")
	os.Setenv("JWT_ISSUER", "privy.io")
	os.Setenv("JWT_LEEWAY_SECOND", "5")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, []string{"https://ramp.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "ramp.conversions", cfg.KafkaTopic)
	assert.Equal(t, "in_123", cfg.BlindPayInstanceID)
	assert.True(t, cfg.BlindPayCoverFees)
	assert.Equal(t, "USDC", cfg.Token)
	assert.Equal(t, int64(8453), cfg.ChainID)
	assert.Equal(t, 45*time.Second, cfg.ChainConfirmTimeout)
	assert.Len(t, cfg.KYCAllowedOrigins, 2)
	assert.Equal(t, "@every 1m", cfg.HistoryRefreshSchedule)
	assert.Equal(t, "supersecret", cfg.JWTSecretKey)
	assert.Equal(t, 300*time.Second, cfg.JWTExp)
	assert.Equal(t, "privy.io", cfg.JWTIssuer)
	assert.Equal(t, 5*time.Second, cfg.JWTLeeway)
}

func TestParseConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"postgres port", "POSTGRES_PORT", "abc"},
		{"redis db", "REDIS_DB", "x"},
		{"provider timeout", "BLINDPAY_TIMEOUT_SECOND", "soon"},
		{"cover fees", "BLINDPAY_COVER_FEES", "maybe"},
		{"chain id", "CHAIN_ID", "base"},
		{"jwt expiration", "JWT_EXP_SECOND", "1h"},
		{"jwt leeway", "JWT_LEEWAY_SECOND", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv()
			os.Setenv(tt.key, tt.val)

			_, err := parseConfig("nonexistent.env")
			assert.Error(t, err)
		})
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	resetEnv()
	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	cfg.AppHost, cfg.AppPort = "127.0.0.1", "8086"
	cfg.LogLevel = "debug"
	cfg.PGHost, cfg.PGPort = pgHost, pgPort.Int()
	cfg.PGUser, cfg.PGPassword, cfg.PGDB = "user", "password", "testdb"
	cfg.RedisHost, cfg.RedisPort = redisHost, redisPort.Int()
	// HTTP RPC endpoints are dialed lazily
	cfg.ChainRPCURL = "http://127.0.0.1:1"

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
