package queries_test

import (
	"context"
	"testing"
	"time"

	"fleet/internal/adapters/out/postgres/containerrepo"
	"fleet/internal/adapters/out/postgres/shiprepo"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetShipManifestQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetShipManifestQueryHandler
	fixture   *fleetFixture
}

func (suite *GetShipManifestQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shiprepo.ShipDTO{}, &containerrepo.ContainerDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetShipManifestQueryHandler(db)
}

func (suite *GetShipManifestQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetShipManifestQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE ships, containers").Error
	suite.Require().NoError(err)

	suite.fixture = &fleetFixture{db: suite.db, suite: &suite.Suite}
}

func (suite *GetShipManifestQueryHandlerTestSuite) TestHandle_ReturnsContainersInBoardingOrder() {
	aggregate := suite.fixture.createShip("Poseidon", 10, 50)
	first := suite.fixture.createBasicContainer(400, 10000)
	second := suite.fixture.createBasicContainer(700, 10000)
	suite.fixture.board(aggregate, first, second)

	query, err := queries.NewGetShipManifestQuery(aggregate.ID().String())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(aggregate.ID()))
	suite.Equal("Poseidon", result.Name)
	suite.Equal(10, result.MaxContainers)
	suite.InDelta(50000, result.MaxWeightCapacity, 0)
	suite.InDelta(1100, result.TotalLoad, 1e-9)

	suite.Require().Len(result.Containers, 2)
	suite.Equal(first.SerialNumber().String(), result.Containers[0].Serial)
	suite.Equal("basic", result.Containers[0].Kind)
	suite.InDelta(400, result.Containers[0].LoadMass, 0)
	suite.InDelta(10000, result.Containers[0].MaxWeight, 0)
	suite.Equal(second.SerialNumber().String(), result.Containers[1].Serial)
}

func (suite *GetShipManifestQueryHandlerTestSuite) TestHandle_EmptyShip_ReturnsEmptyManifest() {
	aggregate := suite.fixture.createShip("Poseidon", 10, 50)

	query, err := queries.NewGetShipManifestQuery(aggregate.ID().String())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Poseidon", result.Name)
	suite.InDelta(0, result.TotalLoad, 0)
	suite.NotNil(result.Containers)
	suite.Empty(result.Containers)
}

func (suite *GetShipManifestQueryHandlerTestSuite) TestHandle_UnknownShip_ReturnsNotFoundError() {
	query, err := queries.NewGetShipManifestQuery(kernel.NewUUID().String())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetShipManifestQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetShipManifestQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetShipManifestQuery constructor")
}

func TestGetShipManifestQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(GetShipManifestQueryHandlerTestSuite))
}
