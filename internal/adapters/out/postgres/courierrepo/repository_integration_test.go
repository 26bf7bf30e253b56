package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id any, aggregate any) {
	m.Called(id, aggregate)
}

// CourierRepositoryIntegrationTestSuite provides integration tests for CourierRepository
// using PostgreSQL containers to verify database persistence behavior.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	courierRepository *courierrepo.GormCourierRepository
	tracker           *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.courierRepository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ValidCourier_Success() {
	ctx := context.Background()

	testCourier := suite.createTestCourier(1)

	suite.tracker.On("TrackAggregate", testCourier.ID(), testCourier).Once()

	err := suite.courierRepository.Add(ctx, testCourier)
	suite.Require().NoError(err)

	suite.assertCourierCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_ExistingCourier_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestCourier(7)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.courierRepository.Add(ctx, original))

	retrieved, err := suite.courierRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Transport(), retrieved.Transport())
	suite.Equal(original.Regions(), retrieved.Regions())
	suite.Require().Len(retrieved.WorkingHours(), len(original.WorkingHours()))
	for i, window := range original.WorkingHours() {
		suite.True(window.IsEqual(retrieved.WorkingHours()[i]))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NonExistentCourier_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.courierRepository.Get(ctx, 9999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_PatchedCourier_PersistsChanges() {
	ctx := context.Background()

	original := suite.createTestCourier(3)
	suite.tracker.On("TrackAggregate", original.ID(), original).Twice()
	suite.Require().NoError(suite.courierRepository.Add(ctx, original))

	// Patch transport and regions, keep working hours
	newTransport := courier.Car
	suite.Require().NoError(original.ApplyPatch(courier.Patch{
		Transport: &newTransport,
		Regions:   []int64{40, 50},
	}))
	suite.Require().NoError(suite.courierRepository.Update(ctx, original))

	retrieved, err := suite.courierRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Car, retrieved.Transport())
	suite.Equal([]int64{40, 50}, retrieved.Regions())
	suite.Require().Len(retrieved.WorkingHours(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_NonExistentCourier_ReturnsError() {
	ctx := context.Background()

	testCourier := suite.createTestCourier(42)

	err := suite.courierRepository.Update(ctx, testCourier)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// createTestCourier creates a test courier with default values.
func (suite *CourierRepositoryIntegrationTestSuite) createTestCourier(id int64) *courier.Courier {
	workingHours, err := kernel.ParseTimeWindows([]string{"09:00-13:00", "16:00-21:30"})
	suite.Require().NoError(err)

	c, err := courier.NewCourier(id, courier.Bike, []int64{1, 12, 22}, workingHours)
	suite.Require().NoError(err)
	return c
}

// assertCourierCount verifies the number of couriers in the database.
func (suite *CourierRepositoryIntegrationTestSuite) assertCourierCount(expected int) {
	var count int64
	err := suite.db.Model(&courierrepo.CourierDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
