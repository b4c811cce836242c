// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/workflow-service/internal/logging"
)

var _ MailClientInterface = (*NoopClient)(nil)

// NoopClient logs instead of sending, used when mail is disabled and in tests.
type NoopClient struct {
	logger logging.LoggerInterface
}

func NewNoopClient(logger logging.LoggerInterface) *NoopClient {
	return &NoopClient{logger: logger}
}

func (c *NoopClient) Send(ctx context.Context, to, subject, body string) error {
	c.logger.Debugf("mail disabled, dropping message to %s: %s", to, subject)
	return nil
}
