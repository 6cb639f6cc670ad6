package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Relayer  RelayerConfig  `mapstructure:"relayer"`
	Comment  CommentConfig  `mapstructure:"comment"`
	Identity IdentityConfig `mapstructure:"identity"`
	Features FeatureConfig  `mapstructure:"features"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
	// SealingKey is the hex AES-256 key that encrypts the DEK at rest.
	SealingKey string `mapstructure:"sealing_key"`
	// SealingPassphrase derives the key with Argon2id when SealingKey is empty.
	SealingPassphrase string `mapstructure:"sealing_passphrase"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// ChainConfig points the service at a Celo-compatible JSON-RPC node and the
// core contracts it reads and writes.
type ChainConfig struct {
	RPCURL              string        `mapstructure:"rpc_url"`
	ChainID             int64         `mapstructure:"chain_id"`
	AccountsAddress     string        `mapstructure:"accounts_address"`
	AttestationsAddress string        `mapstructure:"attestations_address"`
	StableTokenAddress  string        `mapstructure:"stable_token_address"`
	WalletPrivateKey    string        `mapstructure:"wallet_private_key"`
	MTWAddress          string        `mapstructure:"mtw_address"`
	RPCRateLimit        float64       `mapstructure:"rpc_rate_limit"` // requests per second
	RPCBurst            int           `mapstructure:"rpc_burst"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`
	ReceiptTimeout      time.Duration `mapstructure:"receipt_timeout"`
}

type RelayerConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Secret  string        `mapstructure:"secret"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CommentConfig struct {
	MaxLength int           `mapstructure:"max_length"`
	CacheSize int           `mapstructure:"cache_size"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

type IdentityConfig struct {
	WalletLookupConcurrency int     `mapstructure:"wallet_lookup_concurrency"`
	AttestationsRequired    uint32  `mapstructure:"attestations_required"`
	AttestationThreshold    float64 `mapstructure:"attestation_threshold"`
}

// FeatureConfig toggles optional behaviour.
type FeatureConfig struct {
	CommentEncryption bool `mapstructure:"comment_encryption"`
	PhoneMetadata     bool `mapstructure:"phone_metadata"`
	DEKForAuth        bool `mapstructure:"dek_for_auth"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WID_ (wallet identity).
// Nested keys use underscore: WID_CHAIN_RPC_URL, WID_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("storage.sealing_key", "")
	v.SetDefault("storage.sealing_passphrase", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_identity")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "wallet-identity")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("chain.rpc_url", "http://localhost:8545")
	v.SetDefault("chain.chain_id", 44787)
	v.SetDefault("chain.accounts_address", "")
	v.SetDefault("chain.attestations_address", "")
	v.SetDefault("chain.stable_token_address", "")
	v.SetDefault("chain.wallet_private_key", "")
	v.SetDefault("chain.mtw_address", "")
	v.SetDefault("chain.rpc_rate_limit", 20)
	v.SetDefault("chain.rpc_burst", 10)
	v.SetDefault("chain.receipt_poll_interval", "1s")
	v.SetDefault("chain.receipt_timeout", "2m")
	v.SetDefault("relayer.base_url", "")
	v.SetDefault("relayer.api_key", "")
	v.SetDefault("relayer.secret", "")
	v.SetDefault("relayer.timeout", "30s")
	v.SetDefault("comment.max_length", 70)
	v.SetDefault("comment.cache_size", 4096)
	v.SetDefault("comment.cache_ttl", "24h")
	v.SetDefault("identity.wallet_lookup_concurrency", 8)
	v.SetDefault("identity.attestations_required", 3)
	v.SetDefault("identity.attestation_threshold", 0.25)
	v.SetDefault("features.comment_encryption", true)
	v.SetDefault("features.phone_metadata", true)
	v.SetDefault("features.dek_for_auth", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WID_CHAIN_RPC_URL -> chain.rpc_url
	v.SetEnvPrefix("WID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
