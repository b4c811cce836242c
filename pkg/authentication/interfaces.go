// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
)

type ProviderInterface interface {
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken validates a raw bearer token and returns the subject,
	// the identity id the rest of the service keys on.
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}
