package siterepo_test

import (
	"context"
	"testing"

	"parcellocker/internal/adapters/out/postgres"
	"parcellocker/internal/adapters/out/postgres/pgtest"
	"parcellocker/internal/adapters/out/postgres/siterepo"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/site"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// SiteRepositoryIntegrationTestSuite verifies site persistence against PostgreSQL.
type SiteRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *siterepo.GormSiteRepository
}

func (suite *SiteRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres.Pool{})
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *SiteRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(context.Background()))
	suite.repository = siterepo.NewGormSiteRepository(suite.database.DB)
}

func (suite *SiteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *SiteRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	s := suite.newSite("Kraków", "30-001", 50.0647, 19.9450)

	suite.Require().NoError(suite.repository.Add(ctx, s))
	stored, err := suite.repository.Get(ctx, s.ID())

	suite.Require().NoError(err)
	suite.Equal(s.ID(), stored.ID())
	suite.Equal("Kraków", stored.City())
	suite.Equal("30-001", stored.PostalCode())
	suite.InDelta(50.0647, stored.Location().Latitude(), 1e-9)
	suite.InDelta(19.9450, stored.Location().Longitude(), 1e-9)
}

func (suite *SiteRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.ID(7))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SiteRepositoryIntegrationTestSuite) TestGetAll_OrderedByID() {
	ctx := context.Background()
	first := suite.newSite("Gdańsk", "80-001", 54.3520, 18.6466)
	second := suite.newSite("Poznań", "60-001", 52.4064, 16.9252)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	sites, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(sites, 2)
	suite.Equal(first.ID(), sites[0].ID())
	suite.Equal(second.ID(), sites[1].ID())
}

func (suite *SiteRepositoryIntegrationTestSuite) TestGetAll_Empty() {
	sites, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(sites)
	suite.Empty(sites)
}

func (suite *SiteRepositoryIntegrationTestSuite) newSite(city, postalCode string, lat, lon float64) *site.Site {
	location, err := kernel.NewGeoPoint(lat, lon)
	suite.Require().NoError(err)

	s, err := site.NewSite(city, postalCode, location)
	suite.Require().NoError(err)
	return s
}

func TestSiteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SiteRepositoryIntegrationTestSuite))
}
