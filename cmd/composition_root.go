package cmd

import (
	"log/slog"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/in/http"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/geocode"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/notify"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/auditrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/application/usecases/commands"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/application/usecases/queries"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/services"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	orderStatus ports.OrderStatusPort
	audit       ports.AuditSink
	notifier    ports.Notifier
	geocoder    ports.Geocoder
	planner     services.RoutePlanner

	cleanupSchedule string
	logger          *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var geocoder ports.Geocoder = geocode.NewNominatimGeocoder(
		config.GeocodeBaseURL, config.GeocodeUserAgent)
	if config.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		geocoder = geocode.NewCachedGeocoder(geocoder, redisClient, geocode.DefaultCacheTTL, logger)
	}

	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderStatus:     orderrepo.NewGormOrderStatusRepository(gormDB),
		audit:           auditrepo.NewGormAuditRepository(gormDB),
		notifier:        notify.NewWebhookNotifier(config.NotifyWebhookURL),
		geocoder:        geocoder,
		planner:         services.NewRoutePlanner(),
		cleanupSchedule: config.TokenCleanupSchedule,
		logger:          logger,
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.orderStatus, c.audit, c.logger)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParcelCommandHandler(f, c.audit, c.logger)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f, c.orderStatus, c.audit, c.logger)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.planner, c.orderStatus, c.audit, c.logger)
}

func (c *CompositionRoot) CreateGenerateQRTokenCommandHandler() commands.GenerateQRTokenCommandHandler {
	var f commands.TokenUoWFactory = FuncTokenUoWFactory(func() commands.TokenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateQRTokenCommandHandler(f, c.notifier, c.audit, c.logger)
}

func (c *CompositionRoot) CreateRedeemQRTokenCommandHandler() commands.RedeemQRTokenCommandHandler {
	var f commands.TokenUoWFactory = FuncTokenUoWFactory(func() commands.TokenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRedeemQRTokenCommandHandler(f, c.orderStatus, c.notifier, c.audit, c.logger)
}

func (c *CompositionRoot) CreateLogCourierLocationCommandHandler() commands.LogCourierLocationCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogCourierLocationCommandHandler(f, c.geocoder, c.audit, c.logger)
}

func (c *CompositionRoot) CreateCleanupExpiredTokensCommandHandler() commands.CleanupExpiredTokensCommandHandler {
	var f commands.CleanupUoWFactory = FuncCleanupUoWFactory(func() commands.CleanupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCleanupExpiredTokensCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierLastLocationQueryHandler() queries.GetCourierLastLocationQueryHandler {
	return queries.NewGetCourierLastLocationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateParcelCommandHandler(),
		c.CreateUpdateParcelStatusCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateGenerateQRTokenCommandHandler(),
		c.CreateRedeemQRTokenCommandHandler(),
		c.CreateLogCourierLocationCommandHandler(),
		c.CreateDeleteParcelCommandHandler(),
		c.CreateTrackParcelQueryHandler(),
		c.CreateGetCourierLastLocationQueryHandler(),
		c.CreateGetAllCouriersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCleanupExpiredTokensCommandHandler(),
		c.cleanupSchedule,
		c.logger,
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncTokenUoWFactory func() commands.TokenUoW

func (f FuncTokenUoWFactory) Create() commands.TokenUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncCleanupUoWFactory func() commands.CleanupUoW

func (f FuncCleanupUoWFactory) Create() commands.CleanupUoW {
	return f()
}
