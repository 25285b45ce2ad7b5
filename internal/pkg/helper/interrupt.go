// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package helper

import (
	"context"
	"os"
	"os/signal"
)

// WithInterrupt returns a context that is cancelled when the process
// receives an interrupt. The returned func releases the signal handler and
// must be called once the context is no longer needed.
func WithInterrupt(ctx context.Context) (context.Context, func()) {
	return signal.NotifyContext(ctx, os.Interrupt)
}
