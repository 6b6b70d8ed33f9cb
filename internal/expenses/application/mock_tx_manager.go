package application

import (
	"context"
	"database/sql"
)

// MockTxManager runs the function directly, no real transaction. In-memory
// repositories ignore the nil tx handle.
type MockTxManager struct {
	BeginErr error
}

func (m *MockTxManager) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}
	return fn(nil)
}
