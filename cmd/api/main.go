package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-identity/config"
	"wallet-identity/internal/adapter/cache"
	"wallet-identity/internal/adapter/chain"
	httpHandler "wallet-identity/internal/adapter/http/handler"
	"wallet-identity/internal/adapter/relayer"
	"wallet-identity/internal/adapter/storage/memory"
	pgStorage "wallet-identity/internal/adapter/storage/postgres"
	redisStorage "wallet-identity/internal/adapter/storage/redis"
	"wallet-identity/internal/core/domain"
	"wallet-identity/internal/core/ports"
	"wallet-identity/internal/service"
	"wallet-identity/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	printToken := flag.Bool("print-token", false, "print a session token for the local wallet and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	ctx := context.Background()

	// Chain access
	client, err := chain.Dial(ctx, cfg.Chain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to chain RPC")
	}
	defer client.Close()
	backend := chain.NewRateLimitedBackend(client, cfg.Chain.RPCRateLimit, cfg.Chain.RPCBurst)

	wallet, err := chain.NewKeyWallet(backend, cfg.Chain.WalletPrivateKey, chain.WalletOptions{
		ChainID:             cfg.Chain.ChainID,
		ReceiptPollInterval: cfg.Chain.ReceiptPollInterval,
		ReceiptTimeout:      cfg.Chain.ReceiptTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load wallet key")
	}

	if *printToken {
		token, expiry, err := tokenSvc.Generate(wallet.Address())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to generate token")
		}
		fmt.Printf("%s\n# expires %s\n", token, expiry.Format(time.RFC3339))
		return
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("wallet", wallet.Address()).
		Msg("Starting wallet identity service")

	accountsContract := chain.NewAccounts(backend, cfg.Chain.AccountsAddress)
	attestations := chain.NewAttestations(backend, cfg.Chain.AttestationsAddress, chain.AttestationRule{
		Required:  cfg.Identity.AttestationsRequired,
		Threshold: cfg.Identity.AttestationThreshold,
	}, cfg.Identity.WalletLookupConcurrency)
	mtw := chain.NewMetaTxWallet(backend, wallet, cfg.Chain.ChainID)
	balances := chain.NewBalances(backend, cfg.Chain.StableTokenAddress)
	healthCheckers := []ports.HealthChecker{chain.NewHealthCheck(backend)}

	// Storage
	var (
		accountStore ports.AccountStore
		mappingStore ports.MappingStore
	)
	switch cfg.Storage.Driver {
	case "memory":
		accountStore = memory.NewAccountStore(domain.Account{
			WalletAddress: wallet.Address(),
			MTWAddress:    cfg.Chain.MTWAddress,
		})
		mappingStore = memory.NewMappingStore()
		log.Warn().Msg("Using in-memory storage, state is lost on restart")
	default:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply schema")
		}

		var sealer *service.AESKeySealer
		if cfg.Storage.SealingKey == "" && cfg.Storage.SealingPassphrase != "" {
			sealer, err = service.NewPassphraseKeySealer(cfg.Storage.SealingPassphrase, domain.NormalizeAddress(wallet.Address()))
		} else {
			sealer, err = service.NewAESKeySealer(cfg.Storage.SealingKey)
		}
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize key sealer")
		}
		accountRepo := pgStorage.NewAccountRepo(pool, sealer, wallet.Address())
		if err := accountRepo.EnsureAccount(ctx, cfg.Chain.MTWAddress); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize account")
		}
		accountStore = accountRepo
		mappingStore = pgStorage.NewMappingRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	// Caching, rate limiting and the registration lock
	localCache := cache.NewLRU(cfg.Comment.CacheSize, cfg.Comment.CacheTTL)
	var (
		decryptionCache ports.DecryptionCache = localCache
		rateLimitStore  ports.RateLimitStore  = memory.NewRateLimiter()
		locker          ports.Locker          = memory.NewLocker()
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		decryptionCache = cache.NewTiered(localCache, redisStorage.NewDecryptionCache(rdb, cfg.Comment.CacheTTL), log)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		locker = redisStorage.NewLocker(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := service.NewMetrics(registry)

	// Business services
	sigSvc := service.NewHMACSignatureService()
	relayerClient := relayer.NewClient(cfg.Relayer, sigSvc, nil, log)

	dekSvc := service.NewDEKService(
		accountStore,
		accountsContract,
		mtw,
		wallet,
		balances,
		relayerClient,
		locker,
		service.DEKOptions{
			UseDEKForAuth:       cfg.Features.DEKForAuth,
			RegistrationLockTTL: cfg.Chain.ReceiptTimeout + time.Minute,
		},
		metrics,
		log,
	)
	commentSvc := service.NewCommentService(
		service.NewECIESCommentCipher(log),
		dekSvc,
		accountStore,
		decryptionCache,
		service.CommentOptions{
			EncryptionEnabled:    cfg.Features.CommentEncryption,
			PhoneMetadataEnabled: cfg.Features.PhoneMetadata,
			MaxCommentLength:     cfg.Comment.MaxLength,
		},
		metrics,
		log,
	)
	identitySvc := service.NewIdentityService(
		accountStore,
		mappingStore,
		commentSvc,
		attestations,
		accountsContract,
		locker,
		cfg.Identity.WalletLookupConcurrency,
		metrics,
		log,
	)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CommentSvc:     commentSvc,
		IdentitySvc:    identitySvc,
		DEKSvc:         dekSvc,
		TokenSvc:       tokenSvc,
		WalletAddress:  wallet.Address(),
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Registry:       registry,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
