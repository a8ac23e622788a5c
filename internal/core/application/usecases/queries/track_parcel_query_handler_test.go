package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/eventrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/parcelrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/application/usecases/queries"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TrackParcelQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	parcelRepo *parcelrepo.GormParcelRepository
	eventRepo  *eventrepo.GormEventRepository
	handler    queries.TrackParcelQueryHandler
}

func (s *TrackParcelQueryHandlerTestSuite) SetupSuite() {
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
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}, &eventrepo.EventDTO{}))

	s.parcelRepo = parcelrepo.NewGormParcelRepository(db, &queryAggregateTracker{})
	s.eventRepo = eventrepo.NewGormEventRepository(db)
	s.handler = queries.NewTrackParcelQueryHandler(db)
}

func (s *TrackParcelQueryHandlerTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *TrackParcelQueryHandlerTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("DELETE FROM parcel_events").Error)
	s.Require().NoError(s.db.Exec("DELETE FROM parcels").Error)
}

func (s *TrackParcelQueryHandlerTestSuite) seedRoutedParcel(deleted bool) *parcel.Parcel {
	address, err := parcel.NewAddress("Mehmet Demir", "İzmir", "Konak", "Mithatpaşa Cd. 12", "35260")
	s.Require().NoError(err)

	route, err := parcel.RestoreRoute(
		[]string{"İstanbul", "Balıkesir", "İzmir"},
		1,
		[]string{"MARMARA", "EGE"},
		370, 8, true, time.Now(),
	)
	s.Require().NoError(err)

	estimated := time.Now().Add(8 * time.Hour)
	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), kernel.NewUUID(), parcel.NewTrackingNumber(),
		parcel.StatusInTransit, nil, address, &route,
		&estimated, nil, deleted,
	)
	s.Require().NoError(err)

	s.Require().NoError(s.parcelRepo.Add(context.Background(), p))
	return p
}

func (s *TrackParcelQueryHandlerTestSuite) addEvent(
	p *parcel.Parcel,
	eventType parcel.EventType,
	description string,
	createdAt time.Time,
) {
	event, err := parcel.NewEvent(
		p.ID(), eventType, description, "İstanbul",
		nil, nil, parcel.Metadata{}, createdAt,
	)
	s.Require().NoError(err)
	s.Require().NoError(s.eventRepo.Add(context.Background(), event))
}

func (s *TrackParcelQueryHandlerTestSuite) TestSnapshotWithMaskedNameAndRoute() {
	p := s.seedRoutedParcel(false)
	base := time.Now().Add(-2 * time.Hour)
	s.addEvent(p, parcel.EventTypeParcelCreated, "Gönderi oluşturuldu", base)
	s.addEvent(p, parcel.EventTypeStatusChanged, "Gönderi yola çıktı", base.Add(time.Hour))

	query, err := queries.NewTrackParcelQuery(p.TrackingNumber())
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(p.TrackingNumber(), result.TrackingNumber)
	s.Equal("IN_TRANSIT", result.Status)
	s.Equal("PREPARING", result.OrderStatus)
	s.Equal("Mehmet D*****", result.RecipientName)
	s.Equal("İzmir", result.DestinationCity)
	s.Equal([]string{"İstanbul", "Balıkesir", "İzmir"}, result.RouteCities)
	s.Equal("Balıkesir", result.CurrentCity)
	s.Require().NotNil(result.EstimatedDelivery)
	s.Nil(result.ActualDelivery)

	s.Require().Len(result.Events, 2)
	s.Equal("PARCEL_CREATED", result.Events[0].Type)
	s.Equal("Gönderi oluşturuldu", result.Events[0].Description)
	s.Equal("STATUS_CHANGED", result.Events[1].Type)
}

func (s *TrackParcelQueryHandlerTestSuite) TestParcelWithoutRoute() {
	address, err := parcel.NewAddress("Ayşe Yılmaz", "Ankara", "Çankaya", "Atatürk Blv. 5", "06420")
	s.Require().NoError(err)
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), parcel.NewTrackingNumber(), address)
	s.Require().NoError(err)
	s.Require().NoError(s.parcelRepo.Add(context.Background(), p))

	query, err := queries.NewTrackParcelQuery(p.TrackingNumber())
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal("CREATED", result.Status)
	s.Equal("CONFIRMED", result.OrderStatus)
	s.Empty(result.RouteCities)
	s.Empty(result.CurrentCity)
	s.Empty(result.Events)
}

func (s *TrackParcelQueryHandlerTestSuite) TestUnknownTrackingNumber() {
	query, err := queries.NewTrackParcelQuery("TRK-UNKNOWN")
	s.Require().NoError(err)

	_, err = s.handler.Handle(context.Background(), query)

	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *TrackParcelQueryHandlerTestSuite) TestDeletedParcelIsInvisible() {
	p := s.seedRoutedParcel(true)

	query, err := queries.NewTrackParcelQuery(p.TrackingNumber())
	s.Require().NoError(err)

	_, err = s.handler.Handle(context.Background(), query)

	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestTrackParcelQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackParcelQueryHandlerTestSuite))
}
