package constants

import (
	"time"
)

const (
	// ServiceName OpenTelemetry service name
	ServiceName = "smartcart-intake"
	// BinaryVersion is the version reported by the CLI
	BinaryVersion = "v0.1.0"
	// DemoRequestsTable is the table receiving demo requests in both stores.
	DemoRequestsTable = "demo_requests"
	// LocalDatabaseFileName is the file name of the embedded fallback database.
	LocalDatabaseFileName = "demo.db"
	// LocalDataDirName is the directory holding the embedded database.
	LocalDataDirName = "data"
	// LocalBusyTimeout is how long a writer waits on a locked sqlite file.
	LocalBusyTimeout = 5 * time.Second
	// DefaultRemoteTimeout bounds a single remote insert.
	DefaultRemoteTimeout = 10 * time.Second
	// DefaultGracefulTimeout is default timeout for graceful shutdown of the app.
	DefaultGracefulTimeout = 30 * time.Second
	// ReadHeaderTimeout bounds how long the server waits for request headers.
	ReadHeaderTimeout = 10 * time.Second
	// RemoteTimestampLayout is the ISO-8601 layout written to the remote store.
	RemoteTimestampLayout = "2006-01-02T15:04:05.000Z"
)

// Remote store drivers
const (
	RemoteDriverSupabase = "supabase"
	RemoteDriverPostgres = "postgres"
)

// Storage labels reported to callers.
const (
	StorageSupabase      = "supabase"
	StorageLocal         = "local"
	StorageLocalFallback = "local-fallback"
)

// All possible env values
const (
	Dev   = "dev"
	Prod  = "prod"
	Stage = "stage"
)

// RestrictedFilesystemIndicators are env vars set by serverless platforms whose
// project directory is read-only.
var RestrictedFilesystemIndicators = []string{
	"VERCEL",
	"AWS_LAMBDA_FUNCTION_NAME",
	"NETLIFY",
}

// DotEnvFiles are loaded in order before reading the environment.
var DotEnvFiles = []string{".env.local", ".env"}

const (
	// PostgresMaxIdleConnection max postgres idle connections.
	PostgresMaxIdleConnection = 2
	// PostgresMaxOpenConnection max postgres open connections.
	PostgresMaxOpenConnection = 10
	// PostgresMaxConnectionLifetime max postgres connection lifetime.
	PostgresMaxConnectionLifetime = 5 * time.Minute
)
