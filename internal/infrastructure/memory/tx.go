package memory

import (
	"context"
	"sync"

	"activityroster/internal/domain"
)

type txKey struct{}

// TxManager serialises units of work over the in-memory store. Nested calls
// on the same context reuse the outer lock.
type TxManager struct {
	mu sync.Mutex
}

func NewTxManager() domain.UnitOfWork {
	return &TxManager{}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) == m {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, m))
}
