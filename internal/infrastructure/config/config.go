package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/service"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
	kafkakit "github.com/vahanafin/vahana/pkg/kafka"
	pgkit "github.com/vahanafin/vahana/pkg/postgres"
)

// RedisConfig holds the connection settings for the policy-count cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig holds JWT validation settings.
type AuthConfig struct {
	HMACSecret    string
	PublicKeyPath string
	Issuer        string
}

// Config is the full service configuration, loaded from the environment.
type Config struct {
	GRPCPort    int
	HTTPPort    int
	ServiceName string

	DB    pgkit.Config
	Kafka kafkakit.Config
	Redis RedisConfig
	Auth  AuthConfig

	// EventTopic is the Kafka topic domain events are published to.
	EventTopic string

	// OTLPEndpoint enables trace export when non-empty.
	OTLPEndpoint string

	// AnnualRatePct is the nominal annual interest rate used to estimate
	// EMIs during prescreening.
	AnnualRatePct decimal.Decimal

	Commission service.CommissionConfig
	Insurance  service.InsuranceConfig
}

// Load reads configuration from the environment. Rate tables start from the
// compiled-in defaults; individual entries can be overridden with JSON in
// LENDER_RATES_JSON, DEALER_SHARES_JSON, COVERAGE_RATES_JSON and
// PROVIDER_LIMITS_JSON, and the scalar knobs DEFAULT_LENDER_RATE,
// DEALER_FEE_RATE and PLATFORM_FEE_RATE replace their defaults outright.
func Load() (Config, error) {
	cfg := Config{
		GRPCPort:    getEnvInt("GRPC_PORT", 9090),
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		ServiceName: "vahana",
		DB: pgkit.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "vahana"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "vahana"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
			AppName:  "vahana",
		},
		Kafka: kafkakit.Config{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			HMACSecret:    getEnv("JWT_HMAC_SECRET", ""),
			PublicKeyPath: getEnv("JWT_PUBLIC_KEY_PATH", ""),
			Issuer:        getEnv("JWT_ISSUER", "vahana"),
		},
		EventTopic:    getEnv("EVENT_TOPIC", "vahana.origination.events"),
		OTLPEndpoint:  getEnv("OTLP_ENDPOINT", ""),
		AnnualRatePct: getEnvDecimal("ANNUAL_RATE_PCT", decimal.NewFromFloat(10.5)),
		Commission:    service.DefaultCommissionConfig(),
		Insurance:     service.DefaultInsuranceConfig(),
	}

	cfg.Commission.DefaultRate = getEnvDecimal("DEFAULT_LENDER_RATE", cfg.Commission.DefaultRate)
	cfg.Commission.DealerFeeRate = getEnvDecimal("DEALER_FEE_RATE", cfg.Commission.DealerFeeRate)
	cfg.Commission.PlatformFeeRate = getEnvDecimal("PLATFORM_FEE_RATE", cfg.Commission.PlatformFeeRate)

	if err := applyLenderRateOverrides(&cfg.Commission); err != nil {
		return Config{}, err
	}
	if err := applyDealerShareOverrides(&cfg.Commission); err != nil {
		return Config{}, err
	}
	if err := applyCoverageRateOverrides(&cfg.Insurance); err != nil {
		return Config{}, err
	}
	if err := applyProviderOverrides(&cfg.Insurance); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate panics on settings the service cannot start without.
func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if c.Auth.HMACSecret == "" && c.Auth.PublicKeyPath == "" {
		panic("JWT_HMAC_SECRET or JWT_PUBLIC_KEY_PATH is required")
	}
}

func (c Config) GRPCAddr() string { return fmt.Sprintf(":%d", c.GRPCPort) }
func (c Config) HTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }

// applyLenderRateOverrides merges LENDER_RATES_JSON, a map of lender ID to
// rate, into the compiled-in table.
func applyLenderRateOverrides(cfg *service.CommissionConfig) error {
	raw := os.Getenv("LENDER_RATES_JSON")
	if raw == "" {
		return nil
	}
	var overrides map[string]decimal.Decimal
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		return fmt.Errorf("parse LENDER_RATES_JSON: %w", err)
	}
	for id, rate := range overrides {
		cfg.LenderRates[id] = rate
	}
	return nil
}

// applyDealerShareOverrides merges DEALER_SHARES_JSON, a map of plan tier to
// the dealer's commission share, into the compiled-in table.
func applyDealerShareOverrides(cfg *service.CommissionConfig) error {
	raw := os.Getenv("DEALER_SHARES_JSON")
	if raw == "" {
		return nil
	}
	var overrides map[string]decimal.Decimal
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		return fmt.Errorf("parse DEALER_SHARES_JSON: %w", err)
	}
	for tier, share := range overrides {
		cfg.DealerShare[valueobject.PlanTier(tier)] = share
	}
	return nil
}

// applyCoverageRateOverrides merges COVERAGE_RATES_JSON, a map of coverage
// type to base premium rate, into the compiled-in table.
func applyCoverageRateOverrides(cfg *service.InsuranceConfig) error {
	raw := os.Getenv("COVERAGE_RATES_JSON")
	if raw == "" {
		return nil
	}
	var overrides map[string]decimal.Decimal
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		return fmt.Errorf("parse COVERAGE_RATES_JSON: %w", err)
	}
	for coverage, rate := range overrides {
		cfg.BaseRates[valueobject.CoverageType(coverage)] = rate
	}
	return nil
}

type providerOverride struct {
	MinPremium     decimal.Decimal `json:"min_premium"`
	MaxCoverage    decimal.Decimal `json:"max_coverage"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// applyProviderOverrides merges PROVIDER_LIMITS_JSON, a map of provider ID
// to limits, into the compiled-in table. The reserved key "default" replaces
// the fallback limits applied to unknown providers.
func applyProviderOverrides(cfg *service.InsuranceConfig) error {
	raw := os.Getenv("PROVIDER_LIMITS_JSON")
	if raw == "" {
		return nil
	}
	var overrides map[string]providerOverride
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		return fmt.Errorf("parse PROVIDER_LIMITS_JSON: %w", err)
	}
	for id, o := range overrides {
		limits := service.ProviderLimits{
			MinPremium:     o.MinPremium,
			MaxCoverage:    o.MaxCoverage,
			CommissionRate: o.CommissionRate,
		}
		if id == "default" {
			cfg.DefaultLimits = limits
			continue
		}
		cfg.Providers[id] = limits
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}
