package cmd

import (
	"context"
	"log/slog"

	httpin "dronefleet/internal/adapters/in/http"
	"dronefleet/internal/adapters/out/postgres"
	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/jobs"
	"dronefleet/internal/pkg/keylock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	// shared by every handler that mutates a drone
	locks  *keylock.KeyLock
	logger *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		locks:      keylock.New(),
		logger:     logger,
	}
}

func (c *CompositionRoot) droneUoWFactory() commands.DroneUoWFactory {
	return FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterDroneCommandHandler() commands.RegisterDroneCommandHandler {
	return commands.NewRegisterDroneCommandHandler(c.droneUoWFactory())
}

func (c *CompositionRoot) CreateLoadDroneCommandHandler() commands.LoadDroneCommandHandler {
	return commands.NewLoadDroneCommandHandler(c.droneUoWFactory(), c.locks, c.logger)
}

func (c *CompositionRoot) CreateChangeDroneStateCommandHandler() commands.ChangeDroneStateCommandHandler {
	return commands.NewChangeDroneStateCommandHandler(c.droneUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateReportBatteryCommandHandler() commands.ReportBatteryCommandHandler {
	return commands.NewReportBatteryCommandHandler(c.uoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateSampleBatteriesCommandHandler() commands.SampleBatteriesCommandHandler {
	return commands.NewSampleBatteriesCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateListDronesQueryHandler() queries.ListDronesQueryHandler {
	return queries.NewListDronesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindLoadableDronesQueryHandler() queries.FindLoadableDronesQueryHandler {
	return queries.NewFindLoadableDronesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDroneLoadsQueryHandler() queries.GetDroneLoadsQueryHandler {
	return queries.NewGetDroneLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatteryLevelQueryHandler() queries.GetBatteryLevelQueryHandler {
	return queries.NewGetBatteryLevelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatteryLogsQueryHandler() queries.GetBatteryLogsQueryHandler {
	return queries.NewGetBatteryLogsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		RegisterDrone:      c.CreateRegisterDroneCommandHandler(),
		LoadDrone:          c.CreateLoadDroneCommandHandler(),
		ChangeDroneState:   c.CreateChangeDroneStateCommandHandler(),
		ReportBattery:      c.CreateReportBatteryCommandHandler(),
		ListDrones:         c.CreateListDronesQueryHandler(),
		FindLoadableDrones: c.CreateFindLoadableDronesQueryHandler(),
		GetDroneLoads:      c.CreateGetDroneLoadsQueryHandler(),
		GetBatteryLevel:    c.CreateGetBatteryLevelQueryHandler(),
		GetBatteryLogs:     c.CreateGetBatteryLogsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	return httpin.NewRouter(ctx, httpin.RouterConfig{
		StorageTimeout:  c.cfg.DBTimeout,
		RateLimitPerSec: c.cfg.RateLimitPerSec,
		RateLimitBurst:  c.cfg.RateLimitBurst,
	}, c.CreateHTTPServer(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSampleBatteriesCommandHandler(), c.cfg.BatterySampleInterval, c.logger)
}

func (c *CompositionRoot) CreateFleetSeeder() FleetSeeder {
	return NewFleetSeeder(c.CreateRegisterDroneCommandHandler(), c.logger)
}

type FuncDroneUoWFactory func() commands.DroneUoW

func (f FuncDroneUoWFactory) Create() commands.DroneUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
