package cmd

import (
	"log/slog"
	"os"

	"fleet/internal/adapters/out/postgres"
	"fleet/internal/adapters/out/report"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/ship"
	"fleet/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *container.Registry
	sink       ship.ReportSink
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	sink := report.NewConsoleSink(os.Stdout)
	notifier := report.NewSinkNotifier(sink)

	registry, err := container.NewRegistry(notifier)
	if err != nil {
		// The notifier is always set here; a failure means broken wiring.
		panic(err)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, notifier, sink),
		registry:   registry,
		sink:       sink,
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateShipCommandHandler() commands.CreateShipCommandHandler {
	var f commands.ShipUoWFactory = FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipCommandHandler(f, c.sink)
}

func (c *CompositionRoot) CreateRegisterContainerCommandHandler() commands.RegisterContainerCommandHandler {
	var f commands.ContainerUoWFactory = FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterContainerCommandHandler(f, c.registry)
}

func (c *CompositionRoot) CreateLoadCargoCommandHandler() commands.LoadCargoCommandHandler {
	var f commands.ContainerUoWFactory = FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoadCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateUnloadCargoCommandHandler() commands.UnloadCargoCommandHandler {
	var f commands.ContainerUoWFactory = FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnloadCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateBoardContainerCommandHandler() commands.BoardContainerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewBoardContainerCommandHandler(f)
}

func (c *CompositionRoot) CreateUnloadContainerCommandHandler() commands.UnloadContainerCommandHandler {
	var f commands.ShipUoWFactory = FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnloadContainerCommandHandler(f)
}

func (c *CompositionRoot) CreateTransferContainerCommandHandler() commands.TransferContainerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferContainerCommandHandler(f, c.config.TransferTwoPhase)
}

func (c *CompositionRoot) CreateGetAllShipsQueryHandler() queries.GetAllShipsQueryHandler {
	return queries.NewGetAllShipsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipManifestQueryHandler() queries.GetShipManifestQueryHandler {
	return queries.NewGetShipManifestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverweightShipsQueryHandler() queries.GetOverweightShipsQueryHandler {
	return queries.NewGetOverweightShipsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOverweightShipsQueryHandler(),
		c.CreateGetAllShipsQueryHandler(),
		c.sink,
		c.logger,
	)
}

type FuncShipUoWFactory func() commands.ShipUoW

func (f FuncShipUoWFactory) Create() commands.ShipUoW {
	return f()
}

type FuncContainerUoWFactory func() commands.ContainerUoW

func (f FuncContainerUoWFactory) Create() commands.ContainerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
