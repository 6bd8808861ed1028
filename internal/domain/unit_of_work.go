package domain

import "context"

// UnitOfWork runs fn so that reads and writes inside it are not interleaved
// with another unit of work.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
