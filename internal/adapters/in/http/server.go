package http

import (
	"net/http"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the ordering API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	removeOrderHandler  commands.RemoveOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	listAuditHandler  queries.ListAuditEntriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listAuditHandler queries.ListAuditEntriesQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:   placeOrderHandler,
		changeStatusHandler: changeStatusHandler,
		removeOrderHandler:  removeOrderHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
		listAuditHandler:    listAuditHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance. Every /api/v1
// route runs behind the JWT middleware so handlers always find an actor in
// the request context.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:id", s.RemoveOrder)
	api.GET("/audit", s.ListAuditEntries)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
// Authenticated callers become the order's owner; anonymous callers place
// guest orders with no owner.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	items, err := toLineItems(req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	var ownerID *kernel.UUID
	if requestedBy := actorFromContext(ctx); requestedBy.IsAuthenticated() {
		id := requestedBy.ID()
		ownerID = &id
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		ownerID,
		items,
		paymentMethod,
		req.DeliveryAddress,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(placed))
}

// ListOrders handles GET /api/v1/orders - lists orders visible to the caller.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(found))
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status - moves an order
// to a new lifecycle status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	targetStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, targetStatus, actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// RemoveOrder handles DELETE /api/v1/orders/:id - permanently removes an order.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID, actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListAuditEntries handles GET /api/v1/audit - lists the admin audit trail.
func (s *Server) ListAuditEntries(ctx echo.Context) error {
	query, err := queries.NewListAuditEntriesQuery(actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.listAuditHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AuditEntryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, toAuditEntryResponse(row))
	}

	return ctx.JSON(http.StatusOK, response)
}
