package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Fees     FeesConfig
	Flow     FlowConfig
	Polling  PollingConfig
	Wallet   WalletConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	EventBus EventBusConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

// FeesConfig holds the surcharge schedule per document type. Rates are in
// basis points, caps in kobo. The invoice and receipt flows have historically
// used different rates, so both are explicit configuration, never literals.
type FeesConfig struct {
	InvoiceRateBasisPoints int64
	InvoiceCap             int64
	ReceiptRateBasisPoints int64
	ReceiptCap             int64
}

// FlowConfig governs the PIN-gated issuance flow. IssuanceFee is the fixed
// charge (kobo) deducted when the issuer has no free-tier allowance left.
type FlowConfig struct {
	PINLength   int
	IssuanceFee int64
}

// PollingConfig is the client-side payment-status polling budget: re-fetch
// every Interval until Timeout, then stop.
type PollingConfig struct {
	Interval time.Duration
	Timeout  time.Duration
}

type WalletConfig struct {
	BaseURL string
	Timeout time.Duration
}

type WorkerConfig struct {
	PoolSize   int
	MaxRetries int
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Fees: FeesConfig{
			InvoiceRateBasisPoints: getInt64Env("FEE_INVOICE_RATE_BPS", 350),
			InvoiceCap:             getInt64Env("FEE_INVOICE_CAP", 200000),
			ReceiptRateBasisPoints: getInt64Env("FEE_RECEIPT_RATE_BPS", 200),
			ReceiptCap:             getInt64Env("FEE_RECEIPT_CAP", 200000),
		},
		Flow: FlowConfig{
			PINLength:   getIntEnv("FLOW_PIN_LENGTH", 4),
			IssuanceFee: getInt64Env("FLOW_ISSUANCE_FEE", 10000),
		},
		Polling: PollingConfig{
			Interval: getDurationEnv("PAYMENT_POLL_INTERVAL", 10*time.Second),
			Timeout:  getDurationEnv("PAYMENT_POLL_TIMEOUT", 10*time.Minute),
		},
		Wallet: WalletConfig{
			BaseURL: getEnv("WALLET_BASE_URL", "http://localhost:9090"),
			Timeout: getDurationEnv("WALLET_TIMEOUT", 10*time.Second),
		},
		Worker: WorkerConfig{
			PoolSize:   getIntEnv("WORKER_POOL_SIZE", 10),
			MaxRetries: getIntEnv("MAX_RETRIES", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getInt64Env(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
