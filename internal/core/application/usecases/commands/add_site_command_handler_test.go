package commands_test

import (
	"errors"
	"testing"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/site"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddSiteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddSiteCommand("Kraków", "30-001", 50.0647, 19.9450)
	require.NoError(t, err)

	sites := new(MockSiteRepository)
	uow := new(MockUoW)
	factory := new(MockSiteUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SiteRepository").Return(sites).Once(),
		sites.On("Add", ctx, mock.MatchedBy(func(s *site.Site) bool {
			return s.City() == "Kraków" && s.PostalCode() == "30-001"
		})).Run(func(args mock.Arguments) {
			_ = args.Get(1).(*site.Site).Identify(8)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	id, err := commands.NewAddSiteCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(8), id)
	sites.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddSiteCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddSiteCommand("Kraków", "30-001", 50.0647, 19.9450)
	addErr := errors.New("insert failed")

	sites := new(MockSiteRepository)
	uow := new(MockUoW)
	factory := new(MockSiteUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SiteRepository").Return(sites).Once()
	sites.On("Add", ctx, mock.Anything).Return(addErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	id, err := commands.NewAddSiteCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, addErr)
	assert.Zero(t, id)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAddSiteCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockSiteUoWFactory)

	_, err := commands.NewAddSiteCommandHandler(factory).Handle(t.Context(), commands.AddSiteCommand{})

	require.ErrorIs(t, err, commands.ErrAddSiteCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
