// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

var _ TokenVerifierInterface = (*NoopVerifier)(nil)

// NoopVerifier accepts every token and uses the raw token as the identity
// id. Local development and tests only.
type NoopVerifier struct{}

func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	return rawToken, nil
}
