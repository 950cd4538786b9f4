package http_test

import (
	"context"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockSendParcelHandler struct {
	mock.Mock
}

func (m *MockSendParcelHandler) Handle(
	ctx context.Context,
	command commands.SendParcelCommand,
) (commands.SendParcelResult, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(commands.SendParcelResult), args.Error(1)
}

type MockReceiveParcelHandler struct {
	mock.Mock
}

func (m *MockReceiveParcelHandler) Handle(
	ctx context.Context,
	command commands.ReceiveParcelCommand,
) (commands.ReceiveParcelResult, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(commands.ReceiveParcelResult), args.Error(1)
}

type MockAddSiteHandler struct {
	mock.Mock
}

func (m *MockAddSiteHandler) Handle(ctx context.Context, command commands.AddSiteCommand) (kernel.ID, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockAddCompartmentHandler struct {
	mock.Mock
}

func (m *MockAddCompartmentHandler) Handle(
	ctx context.Context,
	command commands.AddCompartmentCommand,
) (kernel.ID, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockNearestSitesHandler struct {
	mock.Mock
}

func (m *MockNearestSitesHandler) Handle(
	ctx context.Context,
	query queries.NearestSitesQuery,
) ([]queries.NearestSite, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.NearestSite), args.Error(1)
}

type MockClientLocationHandler struct {
	mock.Mock
}

func (m *MockClientLocationHandler) Handle(
	ctx context.Context,
	query queries.GetClientLocationQuery,
) (queries.GetClientLocationQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetClientLocationQueryResponse), args.Error(1)
}
