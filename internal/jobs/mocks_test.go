package jobs_test

import (
	"context"

	"parcellocker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockOccupancyReader struct {
	mock.Mock
}

func (m *MockOccupancyReader) Handle(
	ctx context.Context,
	query queries.CompartmentOccupancyQuery,
) ([]queries.CompartmentOccupancy, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.CompartmentOccupancy), args.Error(1)
}

type MockOccupancySink struct {
	mock.Mock
}

func (m *MockOccupancySink) SetCompartments(buckets []queries.CompartmentOccupancy) {
	m.Called(buckets)
}

type MockIntegrityAuditor struct {
	mock.Mock
}

func (m *MockIntegrityAuditor) Handle(
	ctx context.Context,
	query queries.IntegrityAuditQuery,
) ([]queries.IntegrityFinding, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.IntegrityFinding), args.Error(1)
}
