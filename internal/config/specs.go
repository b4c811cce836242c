// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

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

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	JWKSURL               string   `envconfig:"jwks_url"`
	AllowedSubjects       []string `envconfig:"allowed_subjects"`
	RequiredScope         string   `envconfig:"required_scope"`

	MailEnabled  bool   `envconfig:"mail_enabled" default:"false"`
	SMTPHost     string `envconfig:"smtp_host"`
	SMTPPort     int    `envconfig:"smtp_port" default:"587"`
	SMTPUsername string `envconfig:"smtp_username"`
	SMTPPassword string `envconfig:"smtp_password"`
	MailFrom     string `envconfig:"mail_from" default:"no-reply@workflow-service.local"`
}
