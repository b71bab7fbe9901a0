// Package closers releases resources whose close errors have no caller to return to.
package closers

import (
	"context"
	"io"

	"github.com/brave-intl/yookassa-go/logging"
)

// Log calls Close on the specified closer, logging any error
func Log(ctx context.Context, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logging.Logger(ctx, "closers.Log").Error().Err(err).Msg("error attempting to close")
	}
}
