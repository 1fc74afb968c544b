package http

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/rider"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handler is the shape shared by command and query handlers.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers lists the use cases the HTTP surface exposes.
type Handlers struct {
	CreateOrder       Handler[commands.CreateOrderCommand, *order.Order]
	MarkOrderPaid     Handler[commands.MarkOrderPaidCommand, *order.Order]
	UpdateOrderStatus Handler[commands.UpdateOrderStatusCommand, *order.Order]
	AcceptDelivery    Handler[commands.AcceptDeliveryCommand, *order.Order]
	RejectDelivery    Handler[commands.RejectDeliveryCommand, *order.Order]
	CompleteDelivery  Handler[commands.CompleteDeliveryCommand, *order.Order]
	CreateRider       Handler[commands.CreateRiderCommand, *rider.Rider]

	GetOrders      Handler[queries.GetOrdersQuery, []queries.OrderView]
	GetRiderOrders Handler[queries.GetRiderOrdersQuery, []queries.OrderView]
	GetAllRiders   Handler[queries.GetAllRidersQuery, []queries.GetAllRidersQueryResponse]
}

// Server implements servers.ServerInterface on top of the use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{handlers: handlers, logger: logger.With("component", "http")}
}

// CreateOrder handles POST /api/v1/orders. The caller becomes the owner.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := requireRole(ctx, commands.RoleCustomer)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&body); err != nil {
		return badRequest(ctx, "Validation failed: "+err.Error())
	}

	cmd, err := newCreateOrderCommand(actor.ID, body)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrder(viewOf(created)))
}

// GetOrders handles GET /api/v1/orders, the operator listing.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	if _, err := requireRole(ctx, commands.RoleAdmin); err != nil {
		return s.fail(ctx, err)
	}

	statuses, err := parseStatuses(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrdersQuery(statuses)
	if err != nil {
		return s.fail(ctx, err)
	}

	return listOrders(s, ctx, s.handlers.GetOrders, query)
}

// GetMyOrders handles GET /api/v1/orders/my.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actor, err := requireRole(ctx, commands.RoleCustomer)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetMyOrdersQuery(actor.ID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return listOrders(s, ctx, s.handlers.GetOrders, query)
}

// PayOrder handles PUT /api/v1/orders/{orderId}/pay. Ownership is checked by
// the command.
func (s *Server) PayOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkOrderPaidCommand(id, actorOf(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	paid, err := s.handlers.MarkOrderPaid.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(viewOf(paid)))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status. Which role
// may request which status is decided by the command.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, target, actorOf(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(viewOf(updated)))
}

// GetRiderOrders handles GET /api/v1/rider/orders for the calling rider.
func (s *Server) GetRiderOrders(ctx echo.Context, params servers.GetRiderOrdersParams) error {
	actor, err := requireRole(ctx, commands.RoleRider)
	if err != nil {
		return s.fail(ctx, err)
	}

	statuses, err := parseStatuses(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetRiderOrdersQuery(actor.ID, statuses)
	if err != nil {
		return s.fail(ctx, err)
	}

	return listOrders(s, ctx, s.handlers.GetRiderOrders, query)
}

// AcceptDelivery handles PUT /api/v1/rider/orders/{orderId}/accept.
func (s *Server) AcceptDelivery(ctx echo.Context, orderId servers.OrderId) error {
	return s.riderAction(ctx, orderId, func(c context.Context, id, riderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewAcceptDeliveryCommand(id, riderID)
		if err != nil {
			return nil, err
		}
		return s.handlers.AcceptDelivery.Handle(c, cmd)
	})
}

// RejectDelivery handles PUT /api/v1/rider/orders/{orderId}/reject.
func (s *Server) RejectDelivery(ctx echo.Context, orderId servers.OrderId) error {
	return s.riderAction(ctx, orderId, func(c context.Context, id, riderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewRejectDeliveryCommand(id, riderID)
		if err != nil {
			return nil, err
		}
		return s.handlers.RejectDelivery.Handle(c, cmd)
	})
}

// CompleteDelivery handles PUT /api/v1/rider/orders/{orderId}/delivered.
func (s *Server) CompleteDelivery(ctx echo.Context, orderId servers.OrderId) error {
	return s.riderAction(ctx, orderId, func(c context.Context, id, riderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewCompleteDeliveryCommand(id, riderID)
		if err != nil {
			return nil, err
		}
		return s.handlers.CompleteDelivery.Handle(c, cmd)
	})
}

// GetRiders handles GET /api/v1/riders.
func (s *Server) GetRiders(ctx echo.Context) error {
	if _, err := requireRole(ctx, commands.RoleAdmin); err != nil {
		return s.fail(ctx, err)
	}

	riders, err := s.handlers.GetAllRiders.Handle(ctx.Request().Context(), queries.NewGetAllRidersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Rider, len(riders))
	for i, r := range riders {
		response[i] = servers.Rider{
			Id:             r.ID.Bytes(),
			Name:           r.Name,
			Phone:          r.Phone,
			Available:      r.Available,
			LastAssignedAt: r.LastAssignedAt,
			ActiveOrders:   r.ActiveOrders,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRider handles POST /api/v1/riders.
func (s *Server) CreateRider(ctx echo.Context) error {
	if _, err := requireRole(ctx, commands.RoleAdmin); err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewRider
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, "Validation failed: "+err.Error())
	}

	cmd, err := commands.NewCreateRiderCommand(kernel.NewUUID(), body.Name, body.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateRider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Rider{
		Id:             created.ID().Bytes(),
		Name:           created.Name(),
		Phone:          created.Phone(),
		Available:      created.IsAvailable(),
		LastAssignedAt: created.LastAssignedAt(),
	})
}

func (s *Server) riderAction(
	ctx echo.Context,
	orderId openapi_types.UUID,
	run func(c context.Context, id, riderID kernel.UUID) (*order.Order, error),
) error {
	actor, err := requireRole(ctx, commands.RoleRider)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := run(ctx.Request().Context(), id, actor.ID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(viewOf(updated)))
}

func listOrders[Q any](s *Server, ctx echo.Context, handler Handler[Q, []queries.OrderView], query Q) error {
	views, err := handler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = toOrder(view)
	}
	return ctx.JSON(http.StatusOK, response)
}
