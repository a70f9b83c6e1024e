package http

import (
	"net/http"

	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Handlers groups the use cases the HTTP surface dispatches to.
type Handlers struct {
	// Command handlers
	RegisterDrone    commands.RegisterDroneCommandHandler
	LoadDrone        commands.LoadDroneCommandHandler
	ChangeDroneState commands.ChangeDroneStateCommandHandler
	ReportBattery    commands.ReportBatteryCommandHandler

	// Query handlers
	ListDrones         queries.ListDronesQueryHandler
	FindLoadableDrones queries.FindLoadableDronesQueryHandler
	GetDroneLoads      queries.GetDroneLoadsQueryHandler
	GetBatteryLevel    queries.GetBatteryLevelQueryHandler
	GetBatteryLogs     queries.GetBatteryLogsQueryHandler
}

// Server adapts HTTP requests to commands and queries. Failures are returned
// to echo and rendered by HTTPErrorHandler.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// RegisterDrone handles POST /api/drones.
func (s *Server) RegisterDrone(c echo.Context) error {
	var req RegisterDroneRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterDroneCommand(req.Serial, req.Model, req.WeightLimit, req.BatteryCapacity, req.State)
	if err != nil {
		return err
	}

	d, err := s.h.RegisterDrone.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, ok(droneResponse(d)))
}

// ListDrones handles GET /api/drones.
func (s *Server) ListDrones(c echo.Context) error {
	summaries, err := s.h.ListDrones.Handle(c.Request().Context(), queries.NewListDronesQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok(summaryResponses(summaries)))
}

// LoadDrone handles POST /api/drones/:serial/load.
func (s *Server) LoadDrone(c echo.Context) error {
	serial, err := bindSerial(c)
	if err != nil {
		return err
	}

	var req []LoadItemRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	items := make([]commands.LoadItem, 0, len(req))
	for _, it := range req {
		items = append(items, commands.LoadItem{
			Name:           it.Name,
			Weight:         it.Weight,
			Code:           it.Code,
			Image:          it.MedicationImage,
			PickupNumber:   it.PickupNumber,
			DeliveryNumber: it.DeliveryNumber,
			Address:        it.Address,
		})
	}

	cmd, err := commands.NewLoadDroneCommand(serial, items)
	if err != nil {
		return err
	}

	d, err := s.h.LoadDrone.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, ok(droneResponse(d)))
}

// GetDroneLoads handles GET /api/drones/:serial/medications.
func (s *Server) GetDroneLoads(c echo.Context) error {
	serial, err := bindSerial(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDroneLoadsQuery(serial)
	if err != nil {
		return err
	}

	loads, err := s.h.GetDroneLoads.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok(loadResponses(loads)))
}

// FindLoadableDrones handles GET /api/drones/available?weight=.
func (s *Server) FindLoadableDrones(c echo.Context) error {
	var weight *int
	if err := runtime.BindQueryParameter("form", true, false, "weight", c.QueryParams(), &weight); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("weight", err)
	}

	query, err := queries.NewFindLoadableDronesQuery(weight)
	if err != nil {
		return err
	}

	summaries, err := s.h.FindLoadableDrones.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok(summaryResponses(summaries)))
}

// GetBatteryLevel handles GET /api/drones/:serial/battery.
func (s *Server) GetBatteryLevel(c echo.Context) error {
	serial, err := bindSerial(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetBatteryLevelQuery(serial)
	if err != nil {
		return err
	}

	level, err := s.h.GetBatteryLevel.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok(BatteryLevelResponse{
		Serial:          level.Serial,
		BatteryCapacity: level.Battery,
		State:           level.State.String(),
		CreatedAt:       level.CreatedAt,
		UpdatedAt:       level.UpdatedAt,
	}))
}

// ReportBattery handles PATCH /api/drones/:serial/battery.
func (s *Server) ReportBattery(c echo.Context) error {
	serial, err := bindSerial(c)
	if err != nil {
		return err
	}

	var req ReportBatteryRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewReportBatteryCommand(serial, req.Battery)
	if err != nil {
		return err
	}

	d, err := s.h.ReportBattery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok(droneResponse(d)))
}

// ChangeDroneState handles PATCH /api/drones/:serial/state.
func (s *Server) ChangeDroneState(c echo.Context) error {
	serial, err := bindSerial(c)
	if err != nil {
		return err
	}

	var req ChangeStateRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeDroneStateCommand(serial, req.State)
	if err != nil {
		return err
	}

	d, err := s.h.ChangeDroneState.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok(droneResponse(d)))
}

// GetBatteryLogs handles GET /api/logs/battery?perPage=&page=.
func (s *Server) GetBatteryLogs(c echo.Context) error {
	var perPage, page *int
	params := c.QueryParams()
	if err := runtime.BindQueryParameter("form", true, false, "perPage", params, &perPage); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("perPage", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", params, &page); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("page", err)
	}

	query, err := queries.NewGetBatteryLogsQuery(valueOrZero(perPage), valueOrZero(page))
	if err != nil {
		return err
	}

	entries, err := s.h.GetBatteryLogs.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok(batteryLogResponses(entries)))
}

func bindSerial(c echo.Context) (string, error) {
	var serial string
	err := runtime.BindStyledParameterWithOptions("simple", "serial", c.Param("serial"), &serial,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("serial", err)
	}
	return serial, nil
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
