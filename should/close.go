// Package should runs cleanup steps whose failure is worth logging but not
// worth returning, typically from defer statements.
package should

import (
	"context"
	"io"

	"github.com/amp-labs/sortkit/logger"
)

// Close closes closer and logs msg with the error if that fails.
//
//	defer should.Close(ctx, file, "closing catalog file")
func Close(ctx context.Context, closer io.Closer, msg string) {
	Succeed(ctx, closer.Close, msg)
}

// Succeed calls f and logs msg with the error if f fails.
func Succeed(ctx context.Context, f func() error, msg string) {
	if err := f(); err != nil {
		logger.Get(ctx).Error(msg, "error", err)
	}
}
