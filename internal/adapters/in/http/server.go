// Package http exposes the order lifecycle over a REST API. Handlers parse
// and validate transport concerns, delegate to command and query handlers,
// and map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/application/usecases/queries"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ActorHeader carries the identity on whose behalf a write operation runs.
const ActorHeader = "X-Actor"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler
	updateOrderHandler         commands.UpdateOrderCommandHandler

	getOrdersHandler     queries.GetOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getOrderStatsHandler queries.GetOrderStatsQueryHandler
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		cancelOrderHandler:         cancelOrderHandler,
		updatePaymentStatusHandler: updatePaymentStatusHandler,
		updateOrderHandler:         updateOrderHandler,
		getOrdersHandler:           getOrdersHandler,
		getOrderHandler:            getOrderHandler,
		getOrderStatsHandler:       getOrderStatsHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/stats", s.GetOrderStats)
	v1.GET("/orders/code/:code", s.GetOrderByCode)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id", s.UpdateOrder)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.PATCH("/orders/:id/payment-status", s.UpdatePaymentStatus)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
}

// ErrorResponse is the API error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type orderLineRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Discount  decimal.Decimal `json:"discount"`
}

type createOrderRequest struct {
	CustomerID   string             `json:"customerId"`
	Items        []orderLineRequest `json:"items"`
	DeliveryDate *time.Time         `json:"deliveryDate"`
	SalesPerson  string             `json:"salesPerson"`
	Notes        string             `json:"notes"`
	Discount     decimal.Decimal    `json:"discount"`
	Tax          *decimal.Decimal   `json:"tax"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type updatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

type updateOrderRequest struct {
	DeliveryDate *time.Time       `json:"deliveryDate"`
	SalesPerson  *string          `json:"salesPerson"`
	Notes        *string          `json:"notes"`
	Discount     *decimal.Decimal `json:"discount"`
	Tax          *decimal.Decimal `json:"tax"`
}

type orderItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	Code          string              `json:"code"`
	CustomerID    string              `json:"customerId"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	Items         []orderItemResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Discount      decimal.Decimal     `json:"discount"`
	Tax           decimal.Decimal     `json:"tax"`
	TotalAmount   decimal.Decimal     `json:"totalAmount"`
	SalesPerson   string              `json:"salesPerson"`
	Notes         string              `json:"notes"`
	DeliveryDate  *time.Time          `json:"deliveryDate,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	Version       int64               `json:"version"`
}

func orderToResponse(aggregate *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, aggregate.ItemCount())
	for _, item := range aggregate.Items() {
		items = append(items, orderItemResponse{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			SKU:         item.SKU(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			Discount:    item.Discount().Amount(),
			TotalAmount: item.Total().Amount(),
		})
	}

	return orderResponse{
		ID:            aggregate.ID().String(),
		Code:          aggregate.Code(),
		CustomerID:    aggregate.CustomerID().String(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		Items:         items,
		Subtotal:      aggregate.Subtotal().Amount(),
		Discount:      aggregate.Discount().Amount(),
		Tax:           aggregate.Tax().Amount(),
		TotalAmount:   aggregate.Total().Amount(),
		SalesPerson:   aggregate.SalesPerson(),
		Notes:         aggregate.Notes(),
		DeliveryDate:  aggregate.DeliveryDate(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Version:       aggregate.Version(),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customerId")
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, lineErr := kernel.UUIDFromString(item.ProductID)
		if lineErr != nil {
			return badRequest(ctx, "invalid productId")
		}
		discount, lineErr := kernel.NewMoney(item.Discount)
		if lineErr != nil {
			return badRequest(ctx, "invalid item discount")
		}
		lines = append(lines, commands.OrderLine{
			ProductID: productID,
			Quantity:  item.Quantity,
			Discount:  discount,
		})
	}

	discount, err := kernel.NewMoney(req.Discount)
	if err != nil {
		return badRequest(ctx, "invalid discount")
	}

	var tax *kernel.Money
	if req.Tax != nil {
		t, taxErr := kernel.NewMoney(*req.Tax)
		if taxErr != nil {
			return badRequest(ctx, "invalid tax")
		}
		tax = &t
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor, customerID, lines, req.DeliveryDate,
		req.SalesPerson, req.Notes, discount, tax,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrders handles GET /api/v1/orders with optional filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	filter, err := filterFrom(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrdersQuery(filter)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQueryByID(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detail)
}

// GetOrderByCode handles GET /api/v1/orders/code/:code.
func (s *Server) GetOrderByCode(ctx echo.Context) error {
	query, err := queries.NewGetOrderQueryByCode(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detail)
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "unknown status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, id, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(actor, id, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePaymentStatus handles PATCH /api/v1/orders/:id/payment-status.
func (s *Server) UpdatePaymentStatus(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updatePaymentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	paymentStatus, err := order.PaymentStatusFromString(req.PaymentStatus)
	if err != nil {
		return badRequest(ctx, "unknown payment status: "+req.PaymentStatus)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(actor, id, paymentStatus)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updatePaymentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// UpdateOrder handles PATCH /api/v1/orders/:id. Line items cannot be amended
// through this endpoint; orders with wrong items are cancelled and re-created.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	amendment := order.Amendment{
		DeliveryDate: req.DeliveryDate,
		SalesPerson:  req.SalesPerson,
		Notes:        req.Notes,
	}
	if req.Discount != nil {
		discount, moneyErr := kernel.NewMoney(*req.Discount)
		if moneyErr != nil {
			return badRequest(ctx, "invalid discount")
		}
		amendment.Discount = &discount
	}
	if req.Tax != nil {
		tax, moneyErr := kernel.NewMoney(*req.Tax)
		if moneyErr != nil {
			return badRequest(ctx, "invalid tax")
		}
		amendment.Tax = &tax
	}

	cmd, err := commands.NewUpdateOrderCommand(actor, id, amendment)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

func actorFrom(ctx echo.Context) (string, error) {
	actor := ctx.Request().Header.Get(ActorHeader)
	if actor == "" {
		return "", errors.New("missing " + ActorHeader + " header")
	}
	return actor, nil
}

func filterFrom(ctx echo.Context) (queries.OrderFilter, error) {
	var filter queries.OrderFilter

	if raw := ctx.QueryParam("customerId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return queries.OrderFilter{}, errors.New("invalid customerId")
		}
		filter.CustomerID = &id
	}
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return queries.OrderFilter{}, errors.New("unknown status: " + raw)
		}
		filter.Status = &status
	}
	if raw := ctx.QueryParam("paymentStatus"); raw != "" {
		paymentStatus, err := order.PaymentStatusFromString(raw)
		if err != nil {
			return queries.OrderFilter{}, errors.New("unknown payment status: " + raw)
		}
		filter.PaymentStatus = &paymentStatus
	}
	filter.SalesPerson = ctx.QueryParam("salesPerson")
	if raw := ctx.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return queries.OrderFilter{}, errors.New("invalid from timestamp")
		}
		filter.CreatedFrom = &from
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return queries.OrderFilter{}, errors.New("invalid to timestamp")
		}
		filter.CreatedTo = &to
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		var limit int
		if err := echo.QueryParamsBinder(ctx).Int("limit", &limit).BindError(); err != nil {
			return queries.OrderFilter{}, errors.New("invalid limit")
		}
		filter.Limit = limit
	}

	return filter, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInsufficientInventory),
		errors.Is(err, errs.ErrConcurrentModification):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrProductInactive):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
