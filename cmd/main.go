package main

import (
	"context"
	"crypto/ecdsa"
	"flag"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-stable-ramp/internal/facades"
	"github.com/sbilibin2017/gw-stable-ramp/internal/handlers"
	"github.com/sbilibin2017/gw-stable-ramp/internal/jwt"
	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stable-ramp/internal/middlewares"
	"github.com/sbilibin2017/gw-stable-ramp/internal/repositories"
	"github.com/sbilibin2017/gw-stable-ramp/internal/scheduler"
	"github.com/sbilibin2017/gw-stable-ramp/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const serviceName = "gw-stable-ramp"

// config holds every setting read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	BlindPayBaseURL       string
	BlindPayInstanceID    string
	BlindPayAPIKey        string
	BlindPayTimeout       time.Duration
	BlindPayNetwork       string
	BlindPayCurrencyType  string
	BlindPayCoverFees     bool
	BlindPayPaymentMethod string
	Token                 string
	Fiat                  string

	ChainRPCURL         string
	ChainID             int64
	ChainPrivateKey     string
	ChainConfirmTimeout time.Duration

	KYCAllowedOrigins []string

	HistoryRefreshSchedule string
	HistoryRefreshTimeout  time.Duration

	JWTSecretKey string
	JWTExp       time.Duration
	JWTIssuer    string
	JWTLeeway    time.Duration
}

// @title gw-stable-ramp API
// @version 1.0.0
// @description Stablecoin and fiat on/off-ramp over the BlindPay payments API
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, storage, messaging, provider, chain and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, v := range strings.Split(getEnv(key, defaultValue), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return time.Duration(n) * time.Second, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")
	cfg.CORSOrigins = getList("APP_CORS_ORIGINS", "*")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config, events are disabled when no broker is set
	cfg.KafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "conversions")

	// BlindPay config
	cfg.BlindPayBaseURL = getEnv("BLINDPAY_BASE_URL", "https://api.blindpay.com/v1")
	cfg.BlindPayInstanceID = getEnv("BLINDPAY_INSTANCE_ID", "")
	cfg.BlindPayAPIKey = getEnv("BLINDPAY_API_KEY", "")
	if cfg.BlindPayTimeout, err = getSeconds("BLINDPAY_TIMEOUT_SECOND", "30"); err != nil {
		return
	}
	cfg.BlindPayNetwork = getEnv("BLINDPAY_NETWORK", "base_sepolia")
	cfg.BlindPayCurrencyType = getEnv("BLINDPAY_CURRENCY_TYPE", "sender")
	if cfg.BlindPayCoverFees, err = strconv.ParseBool(getEnv("BLINDPAY_COVER_FEES", "false")); err != nil {
		return
	}
	cfg.BlindPayPaymentMethod = getEnv("BLINDPAY_PAYMENT_METHOD", "ach")
	cfg.Token = strings.ToUpper(getEnv("BLINDPAY_TOKEN", "USDB"))
	cfg.Fiat = strings.ToUpper(getEnv("BLINDPAY_FIAT", "USD"))

	// Chain config
	cfg.ChainRPCURL = getEnv("CHAIN_RPC_URL", "https://sepolia.base.org")
	if cfg.ChainID, err = strconv.ParseInt(getEnv("CHAIN_ID", "84532"), 10, 64); err != nil {
		return
	}
	cfg.ChainPrivateKey = getEnv("CHAIN_PRIVATE_KEY", "")
	if cfg.ChainConfirmTimeout, err = getSeconds("CHAIN_CONFIRM_TIMEOUT_SECOND", "120"); err != nil {
		return
	}

	// KYC config
	cfg.KYCAllowedOrigins = getList("KYC_ALLOWED_ORIGINS", "https://app.blindpay.com")

	// History refresh config
	cfg.HistoryRefreshSchedule = getEnv("HISTORY_REFRESH_SCHEDULE", "@every 30s")
	if cfg.HistoryRefreshTimeout, err = getSeconds("HISTORY_REFRESH_TIMEOUT_SECOND", "20"); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "")
	if cfg.JWTLeeway, err = getSeconds("JWT_LEEWAY_SECOND", "30"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, chain client and HTTP server.
// It sets up routes, applies middleware, starts the history refresh job and
// handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat, serviceName); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("PostgreSQL migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, conversion events are disabled")
	}

	// Connect to the chain
	chain, err := ethclient.DialContext(ctx, cfg.ChainRPCURL)
	if err != nil {
		return fmt.Errorf("chain RPC connection error: %w", err)
	}
	defer chain.Close()

	token, err := newTokenFacade(chain, cfg)
	if err != nil {
		return err
	}

	// Initialize JWT
	tokener := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithLeeway(cfg.JWTLeeway),
	)

	// Initialize facades
	blindPay := facades.NewBlindPayFacade(cfg.BlindPayBaseURL, cfg.BlindPayInstanceID, cfg.BlindPayAPIKey, cfg.BlindPayTimeout)
	if !blindPay.Configured() {
		logger.Log.Warn("BLINDPAY_INSTANCE_ID or BLINDPAY_API_KEY not set, provider calls will fail")
	} else {
		logger.Log.Infow("provider configured",
			"base_url", cfg.BlindPayBaseURL,
			"instance_id", cfg.BlindPayInstanceID,
			"api_key", logger.Mask(cfg.BlindPayAPIKey),
		)
	}

	// Initialize repositories
	conversionRepo := repositories.NewConversionRepository(db)
	profileRepo := repositories.NewProfileRepository(rdb)

	// Initialize services
	paymentMethodService := services.NewPaymentMethodService(blindPay)
	historyService := services.NewHistoryService(blindPay, conversionRepo, kafkaWriter)
	identityService := services.NewIdentityService(profileRepo, cfg.KYCAllowedOrigins)
	conversionService := services.NewConversionService(
		blindPay,
		token,
		paymentMethodService,
		conversionRepo,
		kafkaWriter,
		historyService,
		services.ConversionDefaults{
			Network:       cfg.BlindPayNetwork,
			CurrencyType:  cfg.BlindPayCurrencyType,
			CoverFees:     cfg.BlindPayCoverFees,
			PaymentMethod: cfg.BlindPayPaymentMethod,
		},
	)

	// Start history refresh job
	refresher := scheduler.New(historyService, cfg.HistoryRefreshSchedule, cfg.HistoryRefreshTimeout)
	if err := refresher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start history refresh: %w", err)
	}
	defer func() { <-refresher.Stop().Done() }()

	// Initialize handlers
	userID := middlewares.UserIDFromContext
	currencies := handlers.CurrencyDefaults{Token: cfg.Token, Fiat: cfg.Fiat}

	submitConversionHandler := handlers.NewSubmitConversionHandler(conversionService, identityService, userID, currencies)
	resubmitConversionHandler := handlers.NewResubmitConversionHandler(conversionService, identityService, userID, currencies)
	listConversionsHandler := handlers.NewListConversionsHandler(conversionService, userID)

	paymentMethodsHandler := handlers.NewGetPaymentMethodsHandler(paymentMethodService, identityService, userID)
	listBankAccountsHandler := handlers.NewListBankAccountsHandler(paymentMethodService, identityService, userID)
	createBankAccountHandler := handlers.NewCreateBankAccountHandler(paymentMethodService, identityService, userID)
	deleteBankAccountHandler := handlers.NewDeleteBankAccountHandler(paymentMethodService, identityService, userID)
	bankingDetailsHandler := handlers.NewGetBankingDetailsHandler(paymentMethodService, userID)
	listWalletsHandler := handlers.NewListBlockchainWalletsHandler(paymentMethodService, identityService, userID)
	createWalletHandler := handlers.NewCreateBlockchainWalletHandler(paymentMethodService, identityService, userID)
	deleteWalletHandler := handlers.NewDeleteBlockchainWalletHandler(paymentMethodService, identityService, userID)
	signMessageHandler := handlers.NewGetWalletSignMessageHandler(paymentMethodService, identityService, userID)

	listTransactionsHandler := handlers.NewListTransactionsHandler(historyService, userID)
	listPayinsHandler := handlers.NewListPayinsHandler(historyService, identityService, userID)

	getProfileHandler := handlers.NewGetProfileHandler(identityService, userID)
	bindReceiverHandler := handlers.NewBindReceiverHandler(identityService, userID)
	clearProfileHandler := handlers.NewClearProfileHandler(identityService, userID)
	kycMessageHandler := handlers.NewKYCMessageHandler(identityService, userID)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Get("/health", handlers.NewHealthHandler())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	// Protected routes with JWT middleware
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))

		r.Post("/conversions", submitConversionHandler)
		r.Post("/conversions/resubmit", resubmitConversionHandler)
		r.Get("/conversions", listConversionsHandler)

		r.Get("/payment-methods", paymentMethodsHandler)
		r.Get("/bank-accounts", listBankAccountsHandler)
		r.Post("/bank-accounts", createBankAccountHandler)
		r.Delete("/bank-accounts/{id}", deleteBankAccountHandler)
		r.Get("/bank-accounts/{id}/banking-details", bankingDetailsHandler)
		r.Get("/blockchain-wallets", listWalletsHandler)
		r.Post("/blockchain-wallets", createWalletHandler)
		r.Get("/blockchain-wallets/sign-message", signMessageHandler)
		r.Delete("/blockchain-wallets/{id}", deleteWalletHandler)

		r.Get("/payouts", listTransactionsHandler)
		r.Get("/payins", listPayinsHandler)

		r.Get("/kyc/receiver", getProfileHandler)
		r.Put("/kyc/receiver", bindReceiverHandler)
		r.Delete("/kyc/receiver", clearProfileHandler)
		r.Post("/kyc/messages", kycMessageHandler)
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newTokenFacade builds the ERC-20 facade. Without CHAIN_PRIVATE_KEY the
// service still starts but offramps that need an approval fail.
func newTokenFacade(chain *ethclient.Client, cfg config) (*facades.ERC20Facade, error) {
	var key *ecdsa.PrivateKey
	if cfg.ChainPrivateKey != "" {
		k, err := facades.ParsePrivateKey(cfg.ChainPrivateKey)
		if err != nil {
			return nil, err
		}
		key = k
	} else {
		logger.Log.Warn("CHAIN_PRIVATE_KEY not set, token approvals are disabled")
	}

	token, err := facades.NewERC20Facade(chain, key, big.NewInt(cfg.ChainID), cfg.ChainConfirmTimeout)
	if err != nil {
		return nil, err
	}
	if key != nil {
		logger.Log.Infow("Token signer configured", "address", token.SignerAddress(), "chain_id", cfg.ChainID)
	}
	return token, nil
}
