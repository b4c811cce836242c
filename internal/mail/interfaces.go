// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

type MailClientInterface interface {
	// Send delivers a plain-text email to a single recipient.
	Send(ctx context.Context, to, subject, body string) error
}
