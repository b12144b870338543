// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/poachurch/pcobridge/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) RecordFetch(ctx context.Context, rec audit.FetchRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockAuditService) QueryFetches(ctx context.Context, from, to time.Time, endpoint string) ([]audit.FetchRecord, error) {
	args := m.Called(ctx, from, to, endpoint)
	return args.Get(0).([]audit.FetchRecord), args.Error(1)
}
