// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"context"
)

type DispatcherInterface interface {
	// Dispatch sends one mail per recipient of the event. Best effort:
	// send failures are logged, never returned.
	Dispatch(ctx context.Context, e Event)
}
