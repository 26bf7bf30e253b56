// Package http exposes the dispatch API over HTTP using echo.
// Handlers translate JSON bodies into commands and queries, and domain errors
// into status codes: unknown resources give 404, rejected input 400,
// everything unexpected 500.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCouriersHandler commands.CreateCouriersCommandHandler
	updateCourierHandler  commands.UpdateCourierCommandHandler
	createOrdersHandler   commands.CreateOrdersCommandHandler
	assignOrdersHandler   commands.AssignOrdersCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler

	// Query handlers
	getCourierHandler          queries.GetCourierQueryHandler
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCouriersHandler commands.CreateCouriersCommandHandler,
	updateCourierHandler commands.UpdateCourierCommandHandler,
	createOrdersHandler commands.CreateOrdersCommandHandler,
	assignOrdersHandler commands.AssignOrdersCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getCourierHandler queries.GetCourierQueryHandler,
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
) *Server {
	return &Server{
		createCouriersHandler:      createCouriersHandler,
		updateCourierHandler:       updateCourierHandler,
		createOrdersHandler:        createOrdersHandler,
		assignOrdersHandler:        assignOrdersHandler,
		completeOrderHandler:       completeOrderHandler,
		getCourierHandler:          getCourierHandler,
		getUnassignedOrdersHandler: getUnassignedOrdersHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/couriers", s.CreateCouriers)
	e.PATCH("/couriers/:id", s.PatchCourier)
	e.GET("/couriers/:id", s.GetCourier)
	e.POST("/orders", s.CreateOrders)
	e.GET("/orders/unassigned", s.GetUnassignedOrders)
	e.POST("/orders/assign", s.AssignOrders)
	e.POST("/orders/complete", s.CompleteOrder)
}

// CreateCouriers handles POST /couriers - registers a batch of couriers.
func (s *Server) CreateCouriers(ctx echo.Context) error {
	var request CreateCouriersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	data := make([]commands.CourierData, 0, len(request.Data))
	for _, c := range request.Data {
		data = append(data, commands.CourierData{
			ID:           c.CourierID,
			Transport:    c.CourierType,
			Regions:      c.Regions,
			WorkingHours: c.WorkingHours,
		})
	}

	cmd, err := commands.NewCreateCouriersCommand(data)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	couriers, err := s.createCouriersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	response := CreateCouriersResponse{Couriers: make([]IDItem, 0, len(couriers))}
	for _, c := range couriers {
		response.Couriers = append(response.Couriers, IDItem{ID: c.ID()})
	}

	return ctx.JSON(http.StatusCreated, response)
}

// PatchCourier handles PATCH /couriers/:id - partially updates a courier.
// Outstanding orders the courier can no longer serve are released as part of
// the same operation.
func (s *Server) PatchCourier(ctx echo.Context) error {
	courierID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	var request PatchCourierRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCourierCommand(
		courierID,
		request.CourierType,
		request.Regions,
		request.WorkingHours,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	patched, err := s.updateCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Courier{
		CourierID:    patched.ID(),
		CourierType:  patched.Transport().String(),
		Regions:      patched.Regions(),
		WorkingHours: kernel.FormatTimeWindows(patched.WorkingHours()),
	})
}

// GetCourier handles GET /couriers/:id - returns a courier with statistics.
func (s *Server) GetCourier(ctx echo.Context) error {
	courierID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	query, err := queries.NewGetCourierQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	profile, err := s.getCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierWithStatistics{
		Courier: Courier{
			CourierID:    profile.ID,
			CourierType:  profile.Transport,
			Regions:      profile.Regions,
			WorkingHours: profile.WorkingHours,
		},
		Rating:   profile.Rating,
		Earnings: profile.Earnings,
	})
}

// CreateOrders handles POST /orders - registers a batch of orders.
func (s *Server) CreateOrders(ctx echo.Context) error {
	var request CreateOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	data := make([]commands.OrderData, 0, len(request.Data))
	for _, o := range request.Data {
		data = append(data, commands.OrderData{
			ID:            o.OrderID,
			Weight:        o.Weight,
			Region:        o.Region,
			DeliveryHours: o.DeliveryHours,
		})
	}

	cmd, err := commands.NewCreateOrdersCommand(data)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.createOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	response := CreateOrdersResponse{Orders: make([]IDItem, 0, len(orders))}
	for _, o := range orders {
		response.Orders = append(response.Orders, IDItem{ID: o.ID()})
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetUnassignedOrders handles GET /orders/unassigned - lists the order backlog.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.getUnassignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := UnassignedOrdersResponse{Orders: make([]Order, 0, len(orders))}
	for _, o := range orders {
		response.Orders = append(response.Orders, Order{
			OrderID:       o.ID,
			Weight:        o.Weight,
			Region:        o.Region,
			DeliveryHours: o.DeliveryHours,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignOrders handles POST /orders/assign - runs assignment for one courier.
func (s *Server) AssignOrders(ctx echo.Context) error {
	var request AssignOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignOrdersCommand(request.CourierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.assignOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	response := AssignOrdersResponse{Orders: make([]IDItem, 0, len(result.Orders))}
	for _, o := range result.Orders {
		response.Orders = append(response.Orders, IDItem{ID: o.ID()})
	}
	if result.AssignTime != nil {
		response.AssignTime = kernel.FormatTimestamp(*result.AssignTime)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// CompleteOrder handles POST /orders/complete - reports a delivered order.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	var request CompleteOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	completeTime, err := kernel.ParseTimestamp(request.CompleteTime)
	if err != nil {
		return badRequest(ctx, "invalid complete_time")
	}

	cmd, err := commands.NewCompleteOrderCommand(request.CourierID, request.OrderID, completeTime)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CompleteOrderResponse{OrderID: request.OrderID})
}

func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps a use case failure to a status code.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, assignment.ErrAlreadyCompleted),
		errors.Is(err, assignment.ErrInvalidCompleteTime):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}
