package config

import "time"

// Server defaults
const (
	DefaultPort        = "8080"
	DefaultServiceName = "slaytrack"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
)

// Logging defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Database defaults
const (
	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "slaytrack"
)

// Database pool defaults
const (
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)
