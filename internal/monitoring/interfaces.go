// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

// MonitorInterface records the service's operational metrics: per-route
// response times and the availability of external dependencies such as
// the database and the SMTP relay.
type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	SetDependencyAvailability(map[string]string, float64) error
}
