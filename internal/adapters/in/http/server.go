package http

import (
	"errors"
	"net/http"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the fleet service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipHandler        commands.CreateShipCommandHandler
	registerContainerHandler commands.RegisterContainerCommandHandler
	loadCargoHandler         commands.LoadCargoCommandHandler
	unloadCargoHandler       commands.UnloadCargoCommandHandler
	boardContainerHandler    commands.BoardContainerCommandHandler
	unloadContainerHandler   commands.UnloadContainerCommandHandler
	transferContainerHandler commands.TransferContainerCommandHandler

	// Query handlers
	getAllShipsHandler        queries.GetAllShipsQueryHandler
	getShipManifestHandler    queries.GetShipManifestQueryHandler
	getOverweightShipsHandler queries.GetOverweightShipsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipHandler commands.CreateShipCommandHandler,
	registerContainerHandler commands.RegisterContainerCommandHandler,
	loadCargoHandler commands.LoadCargoCommandHandler,
	unloadCargoHandler commands.UnloadCargoCommandHandler,
	boardContainerHandler commands.BoardContainerCommandHandler,
	unloadContainerHandler commands.UnloadContainerCommandHandler,
	transferContainerHandler commands.TransferContainerCommandHandler,
	getAllShipsHandler queries.GetAllShipsQueryHandler,
	getShipManifestHandler queries.GetShipManifestQueryHandler,
	getOverweightShipsHandler queries.GetOverweightShipsQueryHandler,
) *Server {
	return &Server{
		createShipHandler:         createShipHandler,
		registerContainerHandler:  registerContainerHandler,
		loadCargoHandler:          loadCargoHandler,
		unloadCargoHandler:        unloadCargoHandler,
		boardContainerHandler:     boardContainerHandler,
		unloadContainerHandler:    unloadContainerHandler,
		transferContainerHandler:  transferContainerHandler,
		getAllShipsHandler:        getAllShipsHandler,
		getShipManifestHandler:    getShipManifestHandler,
		getOverweightShipsHandler: getOverweightShipsHandler,
	}
}

// RegisterRoutes wires every endpoint into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/api/v1/ships", s.GetShips)
	e.POST("/api/v1/ships", s.CreateShip)
	e.GET("/api/v1/ships/overweight", s.GetOverweightShips)
	e.GET("/api/v1/ships/:shipId/manifest", s.GetShipManifest)
	e.POST("/api/v1/ships/:shipId/containers", s.BoardContainer)
	e.DELETE("/api/v1/ships/:shipId/containers/:serial", s.UnloadContainer)
	e.POST("/api/v1/ships/:shipId/transfers", s.TransferContainer)

	e.POST("/api/v1/containers", s.RegisterContainer)
	e.POST("/api/v1/containers/:serial/cargo", s.LoadCargo)
	e.DELETE("/api/v1/containers/:serial/cargo", s.UnloadCargo)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetShips handles GET /api/v1/ships - retrieves the whole fleet.
func (s *Server) GetShips(ctx echo.Context) error {
	query := queries.NewGetAllShipsQuery()

	ships, err := s.getAllShipsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve ships",
		})
	}

	response := make([]Ship, len(ships))
	for i, item := range ships {
		response[i] = Ship{
			ID:                item.ID.String(),
			Name:              item.Name,
			MaxContainers:     item.MaxContainers,
			MaxWeightCapacity: item.MaxWeightCapacity,
			ContainerCount:    item.ContainerCount,
			TotalLoad:         item.TotalLoad,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShip handles POST /api/v1/ships - registers a new ship.
func (s *Server) CreateShip(ctx echo.Context) error {
	var newShip NewShip
	if err := ctx.Bind(&newShip); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateShipCommand(newShip.Name, newShip.MaxContainers, newShip.CapacityTonnes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid ship data: " + err.Error(),
		})
	}

	if handleErr := s.createShipHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create ship",
		})
	}

	return ctx.JSON(http.StatusCreated, ShipCreated{ID: cmd.ShipID().String()})
}

// GetOverweightShips handles GET /api/v1/ships/overweight.
func (s *Server) GetOverweightShips(ctx echo.Context) error {
	query := queries.NewGetOverweightShipsQuery()

	ships, err := s.getOverweightShipsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve overweight ships",
		})
	}

	response := make([]OverweightShip, len(ships))
	for i, item := range ships {
		response[i] = OverweightShip{
			ID:                item.ID.String(),
			Name:              item.Name,
			MaxWeightCapacity: item.MaxWeightCapacity,
			TotalLoad:         item.TotalLoad,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipManifest handles GET /api/v1/ships/:shipId/manifest.
func (s *Server) GetShipManifest(ctx echo.Context) error {
	query, err := queries.NewGetShipManifestQuery(ctx.Param("shipId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid ship id: " + err.Error(),
		})
	}

	manifest, err := s.getShipManifestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Ship not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve manifest",
		})
	}

	containers := make([]ManifestContainer, len(manifest.Containers))
	for i, c := range manifest.Containers {
		containers[i] = ManifestContainer{
			Serial:    c.Serial,
			Kind:      c.Kind,
			LoadMass:  c.LoadMass,
			MaxWeight: c.MaxWeight,
		}
	}

	return ctx.JSON(http.StatusOK, Manifest{
		ID:                manifest.ID.String(),
		Name:              manifest.Name,
		MaxContainers:     manifest.MaxContainers,
		MaxWeightCapacity: manifest.MaxWeightCapacity,
		TotalLoad:         manifest.TotalLoad,
		Containers:        containers,
	})
}

// RegisterContainer handles POST /api/v1/containers.
func (s *Server) RegisterContainer(ctx echo.Context) error {
	var newContainer NewContainer
	if err := ctx.Bind(&newContainer); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRegisterContainerCommand(
		newContainer.Kind,
		newContainer.MaxWeight,
		newContainer.Height,
		newContainer.Depth,
		newContainer.Hazardous,
		newContainer.Pressure,
		newContainer.ProductType,
		newContainer.Temperature,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid container data: " + err.Error(),
		})
	}

	registered, err := s.registerContainerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to register container",
		})
	}

	return ctx.JSON(http.StatusCreated, ContainerRegistered{
		Serial: registered.SerialNumber().String(),
		Kind:   registered.Kind().String(),
	})
}

// LoadCargo handles POST /api/v1/containers/:serial/cargo.
func (s *Server) LoadCargo(ctx echo.Context) error {
	var request CargoRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewLoadCargoCommand(ctx.Param("serial"), request.Mass)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cargo data: " + err.Error(),
		})
	}

	result, err := s.loadCargoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Container not found",
			})
		case errors.Is(err, container.ErrOverfill):
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to load cargo",
			})
		}
	}

	return ctx.JSON(http.StatusOK, LoadResult{
		Accepted: result.Accepted(),
		Reason:   result.Reason(),
	})
}

// UnloadCargo handles DELETE /api/v1/containers/:serial/cargo.
func (s *Server) UnloadCargo(ctx echo.Context) error {
	cmd, err := commands.NewUnloadCargoCommand(ctx.Param("serial"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid serial number: " + err.Error(),
		})
	}

	if err = s.unloadCargoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Container not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to unload cargo",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BoardContainer handles POST /api/v1/ships/:shipId/containers.
func (s *Server) BoardContainer(ctx echo.Context) error {
	var request BoardRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewBoardContainerCommand(ctx.Param("shipId"), request.Serial)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid boarding data: " + err.Error(),
		})
	}

	boarded, err := s.boardContainerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Ship or container not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to board container",
		})
	}

	return ctx.JSON(http.StatusOK, BoardResult{Boarded: boarded})
}

// UnloadContainer handles DELETE /api/v1/ships/:shipId/containers/:serial.
func (s *Server) UnloadContainer(ctx echo.Context) error {
	cmd, err := commands.NewUnloadContainerCommand(ctx.Param("shipId"), ctx.Param("serial"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid unload data: " + err.Error(),
		})
	}

	removed, err := s.unloadContainerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Ship not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to unload container",
		})
	}

	return ctx.JSON(http.StatusOK, UnloadResult{Removed: removed})
}

// TransferContainer handles POST /api/v1/ships/:shipId/transfers.
func (s *Server) TransferContainer(ctx echo.Context) error {
	var request TransferRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewTransferContainerCommand(ctx.Param("shipId"), request.TargetShipID, request.Serial)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transfer data: " + err.Error(),
		})
	}

	moved, err := s.transferContainerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Ship or container not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to transfer container",
		})
	}

	return ctx.JSON(http.StatusOK, TransferResult{Moved: moved})
}
