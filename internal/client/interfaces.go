// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Bolotin

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until ctx is cancelled.
	Run(ctx context.Context) error
}
