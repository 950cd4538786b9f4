package queries_test

import (
	"context"

	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/domain/model/client"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/site"
	"parcellocker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

type MockSiteRepository struct{ mock.Mock }

func (m *MockSiteRepository) Add(ctx context.Context, s *site.Site) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSiteRepository) Get(ctx context.Context, id kernel.ID) (*site.Site, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*site.Site), args.Error(1)
}

func (m *MockSiteRepository) GetAll(ctx context.Context) ([]*site.Site, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*site.Site), args.Error(1)
}

type MockReadUoW struct{ mock.Mock }

func (m *MockReadUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReadUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReadUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReadUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockReadUoW) SiteRepository() ports.SiteRepository {
	args := m.Called()
	return args.Get(0).(ports.SiteRepository)
}

type MockReadUoWFactory struct{ mock.Mock }

func (m *MockReadUoWFactory) Create() queries.ReadUoW {
	args := m.Called()
	return args.Get(0).(queries.ReadUoW)
}
