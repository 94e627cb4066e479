package config

import (
	"time"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
)

type (
	// Config the application's configuration
	Config struct {
		Remote             RemoteStoreConfig
		LocalStore         LocalStoreConfig
		Port               string
		LogFile            string
		LogConfig          lumber.LoggingConfig
		Env                string
		Verbose            bool
		CorsAllowedOrigins []string
		Tracing            TracingConfig
		GracefulTimeout    time.Duration
	}

	// TracingConfig provides opentelemetry configurations
	TracingConfig struct {
		// OtelEndpoint for storing host name for otel collector
		OtelEndpoint string
	}

	// RemoteStoreConfig configures the managed database that receives demo requests first.
	RemoteStoreConfig struct {
		// URL of the supabase project, e.g. https://xyz.supabase.co
		URL string
		// ServiceKey is the service-role secret key
		ServiceKey string
		// Driver selects the client: supabase (REST) or postgres (direct connection)
		Driver string
		// DSN postgres connection string, used by the postgres driver only
		DSN string
		// Table receiving demo requests
		Table string
		// Timeout for a single remote insert
		Timeout time.Duration
	}

	// LocalStoreConfig configures the embedded fallback database.
	LocalStoreConfig struct {
		// Dir overrides the computed database directory
		Dir string
		// ProjectDir is the base of the default data directory
		ProjectDir string
		// Ephemeral is set when running on a read-only or throwaway filesystem
		Ephemeral bool
	}
)

// HasURL reports whether the remote endpoint is configured.
func (r RemoteStoreConfig) HasURL() bool {
	return r.URL != ""
}

// HasServiceKey reports whether the remote secret key is configured.
func (r RemoteStoreConfig) HasServiceKey() bool {
	return r.ServiceKey != ""
}
