package cmd

import (
	"log/slog"

	httpadapter "parcellocker/internal/adapters/in/http"
	"parcellocker/internal/adapters/out/metrics"
	"parcellocker/internal/adapters/out/postgres"
	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/jobs"
	"parcellocker/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.AllocationMetrics
	clock      clock.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, config.AcquireTimeout),
		metrics:    metrics.NewAllocationMetrics(),
		clock:      clock.Real{},
		logger:     logger,
	}
}

func (c *CompositionRoot) Metrics() *metrics.AllocationMetrics {
	return c.metrics
}

func (c *CompositionRoot) CreateSendParcelCommandHandler() commands.SendParcelCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendParcelCommandHandler(f, c.clock, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateReceiveParcelCommandHandler() commands.ReceiveParcelCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveParcelCommandHandler(f, c.clock, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateAddSiteCommandHandler() commands.AddSiteCommandHandler {
	var f commands.SiteUoWFactory = FuncSiteUoWFactory(func() commands.SiteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddSiteCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCompartmentCommandHandler() commands.AddCompartmentCommandHandler {
	var f commands.CompartmentUoWFactory = FuncCompartmentUoWFactory(func() commands.CompartmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCompartmentCommandHandler(f)
}

func (c *CompositionRoot) CreateNearestSitesQueryHandler() queries.NearestSitesQueryHandler {
	var f queries.ReadUoWFactory = FuncReadUoWFactory(func() queries.ReadUoW {
		return c.uowFactory.Create()
	})
	return queries.NewNearestSitesQueryHandler(f)
}

func (c *CompositionRoot) CreateGetClientLocationQueryHandler() queries.GetClientLocationQueryHandler {
	return queries.NewGetClientLocationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCompartmentOccupancyQueryHandler() queries.CompartmentOccupancyQueryHandler {
	return queries.NewCompartmentOccupancyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIntegrityAuditQueryHandler() queries.IntegrityAuditQueryHandler {
	return queries.NewIntegrityAuditQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(
		c.CreateSendParcelCommandHandler(),
		c.CreateReceiveParcelCommandHandler(),
		c.CreateAddSiteCommandHandler(),
		c.CreateAddCompartmentCommandHandler(),
		c.CreateNearestSitesQueryHandler(),
		c.CreateGetClientLocationQueryHandler(),
		c.logger,
	)
	return httpadapter.NewRouter(server, c.metrics.Handler(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCompartmentOccupancyQueryHandler(),
		c.metrics,
		c.CreateIntegrityAuditQueryHandler(),
		c.config.Schedules(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateIntegrityAuditJob() *jobs.IntegrityAuditJob {
	return jobs.NewIntegrityAuditJob(c.CreateIntegrityAuditQueryHandler(), c.config.AuditSchedule, c.logger)
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncSiteUoWFactory func() commands.SiteUoW

func (f FuncSiteUoWFactory) Create() commands.SiteUoW {
	return f()
}

type FuncCompartmentUoWFactory func() commands.CompartmentUoW

func (f FuncCompartmentUoWFactory) Create() commands.CompartmentUoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
