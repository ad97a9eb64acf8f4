package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	DesignProviderAddress string
	DatabaseURI           string
	MaxTransactionAmount  float64
	QuotedPrice           float64
	OverrideMarker        string
	StrictPayments        bool
	SnapshotLength        int
	AuditInterval         time.Duration
	ShutdownTimeout       time.Duration
}

const (
	defaultRunAddress      = ":7001"
	defaultMaxTransaction  = 5.00
	defaultQuotedPrice     = 4.99
	defaultOverrideMarker  = "bypass"
	defaultSnapshotLength  = 100
	defaultAuditInterval   = time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DesignProviderAddress: getString(lookup, "DESIGN_PROVIDER_ADDRESS", ""),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		MaxTransactionAmount:  getFloat(lookup, "MAX_TRANSACTION_AMOUNT", defaultMaxTransaction),
		QuotedPrice:           getFloat(lookup, "QUOTED_PRICE", defaultQuotedPrice),
		OverrideMarker:        getString(lookup, "OVERRIDE_MARKER", defaultOverrideMarker),
		StrictPayments:        getBool(lookup, "STRICT_PAYMENTS", false),
		SnapshotLength:        getInt(lookup, "SNAPSHOT_LENGTH", defaultSnapshotLength),
		AuditInterval:         getDuration(lookup, "AUDIT_INTERVAL", defaultAuditInterval),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("teeshop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		auditIntervalStr   = cfg.AuditInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DesignProviderAddress, "r", cfg.DesignProviderAddress, "Image generation provider base URL")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN (empty keeps the in-memory store)")
	fs.Float64Var(&cfg.MaxTransactionAmount, "max-amount", cfg.MaxTransactionAmount, "Transaction ceiling for claimed amounts")
	fs.Float64Var(&cfg.QuotedPrice, "quoted-price", cfg.QuotedPrice, "Flat price quoted for every design")
	fs.StringVar(&cfg.OverrideMarker, "override-marker", cfg.OverrideMarker, "Token substring that disables the transaction ceiling")
	fs.BoolVar(&cfg.StrictPayments, "strict-payments", cfg.StrictPayments, "Serialize payments per order and reject repeat charges")
	fs.IntVar(&cfg.SnapshotLength, "snapshot-length", cfg.SnapshotLength, "Stored length of the encoded image snapshot")
	fs.StringVar(&auditIntervalStr, "audit-interval", auditIntervalStr, "Interval between pending-order audits")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.AuditInterval, err = time.ParseDuration(auditIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid audit interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.MaxTransactionAmount <= 0 {
		cfg.MaxTransactionAmount = defaultMaxTransaction
	}

	if cfg.QuotedPrice <= 0 {
		cfg.QuotedPrice = defaultQuotedPrice
	}

	if cfg.SnapshotLength <= 0 {
		cfg.SnapshotLength = defaultSnapshotLength
	}

	if cfg.AuditInterval <= 0 {
		cfg.AuditInterval = defaultAuditInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DesignProviderAddress == "" {
		return nil, fmt.Errorf("design provider address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
