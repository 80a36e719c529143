package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	SessionSecret   string        `envconfig:"session_secret" required:"true"`
	SessionLifetime time.Duration `envconfig:"session_lifetime" default:"168h"`

	AdminPassword       string        `envconfig:"admin_password" required:"true"`
	AdminVerifyLifetime time.Duration `envconfig:"admin_verify_lifetime" default:"1h"`

	SecureCookies bool     `envconfig:"secure_cookies" default:"true"`
	CORSOrigins   []string `envconfig:"cors_allowed_origins" default:"*"`
}
