package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parcellocker/internal/adapters/out/postgres"
	"parcellocker/internal/adapters/out/postgres/parcelrepo"
	"parcellocker/internal/adapters/out/postgres/pgtest"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var createdAt = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// ParcelRepositoryIntegrationTestSuite verifies package persistence against PostgreSQL.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *parcelrepo.GormParcelRepository
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres.Pool{})
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(context.Background()))
	suite.repository = parcelrepo.NewGormParcelRepository(suite.database.DB)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	p := suite.add()

	stored, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.Equal(p.ID(), stored.ID())
	suite.Equal(kernel.ID(1), stored.SenderID())
	suite.Equal(kernel.ID(2), stored.ReceiverID())
	suite.Equal(kernel.ID(3), stored.SiteID())
	suite.Equal(kernel.ID(4), stored.CompartmentID())
	suite.Equal(kernel.Medium, stored.Size())
	suite.Equal(parcel.InLocker, stored.Status())
	suite.WithinDuration(createdAt, stored.CreatedAt(), time.Microsecond)
	suite.Nil(stored.DeliveredAt())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.ID(5))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_PersistsReceipt() {
	ctx := context.Background()
	p := suite.add()
	deliveredAt := createdAt.Add(2 * time.Hour)
	suite.Require().NoError(p.Receive(deliveredAt))

	suite.Require().NoError(suite.repository.Update(ctx, p))

	stored, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Received, stored.Status())
	suite.Require().NotNil(stored.DeliveredAt())
	suite.WithinDuration(deliveredAt, *stored.DeliveredAt(), time.Microsecond)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_UnknownRow_ReturnsNotFound() {
	ghost, err := parcel.RestoreParcel(77, 1, 2, 3, 4, kernel.Small, parcel.InLocker, createdAt, nil)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), ghost)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()
	p := suite.add()

	err := suite.database.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := parcelrepo.NewGormParcelRepository(tx).GetForUpdate(ctx, p.ID())
		suite.Require().NoError(err)
		suite.Equal(p.ID(), locked.ID())
		return nil
	})

	suite.Require().NoError(err)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetForUpdate_UnknownID_ReturnsNotFound() {
	_, err := suite.repository.GetForUpdate(context.Background(), kernel.ID(12))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAll_OrderedByID() {
	first := suite.add()
	second := suite.add()

	all, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(first.ID(), all[0].ID())
	suite.Equal(second.ID(), all[1].ID())
}

func (suite *ParcelRepositoryIntegrationTestSuite) add() *parcel.Parcel {
	p, err := parcel.NewParcel(1, 2, 3, 4, kernel.Medium, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), p))
	return p
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
