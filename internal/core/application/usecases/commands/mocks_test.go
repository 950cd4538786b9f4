package commands_test

import (
	"context"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/domain/model/client"
	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/parcel"
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

type MockCompartmentRepository struct{ mock.Mock }

func (m *MockCompartmentRepository) Add(ctx context.Context, c *compartment.Compartment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompartmentRepository) Get(ctx context.Context, id kernel.ID) (*compartment.Compartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compartment.Compartment), args.Error(1)
}

func (m *MockCompartmentRepository) GetAll(ctx context.Context) ([]*compartment.Compartment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*compartment.Compartment), args.Error(1)
}

func (m *MockCompartmentRepository) FindAvailable(
	ctx context.Context,
	siteID kernel.ID,
	size kernel.Size,
) ([]kernel.ID, error) {
	args := m.Called(ctx, siteID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.ID), args.Error(1)
}

func (m *MockCompartmentRepository) Claim(ctx context.Context, c *compartment.Compartment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompartmentRepository) Release(ctx context.Context, c *compartment.Compartment, parcelID kernel.ID) error {
	args := m.Called(ctx, c, parcelID)
	return args.Error(0)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.ID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAll(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockUoW) SiteRepository() ports.SiteRepository {
	args := m.Called()
	return args.Get(0).(ports.SiteRepository)
}

func (m *MockUoW) CompartmentRepository() ports.CompartmentRepository {
	args := m.Called()
	return args.Get(0).(ports.CompartmentRepository)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockAllocationUoWFactory struct{ mock.Mock }

func (m *MockAllocationUoWFactory) Create() commands.AllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationUoW)
}

type MockSiteUoWFactory struct{ mock.Mock }

func (m *MockSiteUoWFactory) Create() commands.SiteUoW {
	args := m.Called()
	return args.Get(0).(commands.SiteUoW)
}

type MockCompartmentUoWFactory struct{ mock.Mock }

func (m *MockCompartmentUoWFactory) Create() commands.CompartmentUoW {
	args := m.Called()
	return args.Get(0).(commands.CompartmentUoW)
}

type MockOutcomeRecorder struct{ mock.Mock }

func (m *MockOutcomeRecorder) RecordSend(outcome string) {
	m.Called(outcome)
}

func (m *MockOutcomeRecorder) RecordReceive(outcome string) {
	m.Called(outcome)
}

// allocationFixture wires one MockUoW with all four repositories. Every
// transaction opened by a handler goes through the same mock.
type allocationFixture struct {
	uow          *MockUoW
	factory      *MockAllocationUoWFactory
	clients      *MockClientRepository
	sites        *MockSiteRepository
	compartments *MockCompartmentRepository
	parcels      *MockParcelRepository
	recorder     *MockOutcomeRecorder
}

func newAllocationFixture() *allocationFixture {
	f := &allocationFixture{
		uow:          new(MockUoW),
		factory:      new(MockAllocationUoWFactory),
		clients:      new(MockClientRepository),
		sites:        new(MockSiteRepository),
		compartments: new(MockCompartmentRepository),
		parcels:      new(MockParcelRepository),
		recorder:     new(MockOutcomeRecorder),
	}
	f.factory.On("Create").Return(f.uow)
	f.uow.On("ClientRepository").Return(f.clients).Maybe()
	f.uow.On("SiteRepository").Return(f.sites).Maybe()
	f.uow.On("CompartmentRepository").Return(f.compartments).Maybe()
	f.uow.On("ParcelRepository").Return(f.parcels).Maybe()
	f.uow.On("Begin", mock.Anything).Return(nil)
	return f
}

func (f *allocationFixture) assertExpectations(t mock.TestingT) {
	f.clients.AssertExpectations(t)
	f.sites.AssertExpectations(t)
	f.compartments.AssertExpectations(t)
	f.parcels.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.recorder.AssertExpectations(t)
}
