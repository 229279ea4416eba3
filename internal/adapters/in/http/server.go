package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"salesledger/internal/core/application/usecases/commands"
	"salesledger/internal/core/application/usecases/queries"
	"salesledger/internal/core/domain/model/order"
	"salesledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	recordShipmentHandler commands.RecordShipmentCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getUnshippedOrdersHandler queries.GetUnshippedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	recordShipmentHandler commands.RecordShipmentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUnshippedOrdersHandler queries.GetUnshippedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		recordShipmentHandler:     recordShipmentHandler,
		getOrderHandler:           getOrderHandler,
		getUnshippedOrdersHandler: getUnshippedOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/unshipped", s.GetUnshippedOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/shipment", s.RecordShipment)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderLine is one requested line in an order creation request.
type NewOrderLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	CustomerID string         `json:"customerId"`
	Lines      []NewOrderLine `json:"lines"`
}

// OrderLineResponse is one line of a returned order.
type OrderLineResponse struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID              int                 `json:"id"`
	CustomerID      string              `json:"customerId"`
	PlacedAt        time.Time           `json:"placedAt"`
	ShippedAt       *time.Time          `json:"shippedAt,omitempty"`
	Discount        string              `json:"discount"`
	ShippingStreet  string              `json:"shippingStreet"`
	ShippingCity    string              `json:"shippingCity"`
	ShippingCountry string              `json:"shippingCountry"`
	Lines           []OrderLineResponse `json:"lines"`
	Total           string              `json:"total"`
}

// UnshippedOrderResponse is one entry of the unshipped orders listing.
type UnshippedOrderResponse struct {
	ID           int       `json:"id"`
	CustomerID   string    `json:"customerId"`
	PlacedAt     time.Time `json:"placedAt"`
	ShippingCity string    `json:"shippingCity"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.OrderLineRequest, 0, len(request.Lines))
	for _, line := range request.Lines {
		lines = append(lines, commands.OrderLineRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(request.CustomerID, lines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// RecordShipment handles POST /api/v1/orders/:id/shipment - records the
// shipment of an order. Repeating the call for an already shipped order
// returns the existing state unchanged.
func (s *Server) RecordShipment(ctx echo.Context) error {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewRecordShipmentCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment data: " + err.Error(),
		})
	}

	shipped, err := s.recordShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(shipped))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.orderError(ctx, err)
	}

	response := OrderResponse{
		ID:              detail.ID,
		CustomerID:      detail.CustomerID,
		PlacedAt:        detail.PlacedAt,
		ShippedAt:       detail.ShippedAt,
		Discount:        detail.Discount.String(),
		ShippingStreet:  detail.ShippingStreet,
		ShippingCity:    detail.ShippingCity,
		ShippingCountry: detail.ShippingCountry,
		Lines:           make([]OrderLineResponse, 0, len(detail.Lines)),
		Total:           detail.Total.String(),
	}
	for _, line := range detail.Lines {
		response.Lines = append(response.Lines, OrderLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnshippedOrders handles GET /api/v1/orders/unshipped - lists every order
// awaiting shipment, oldest first.
func (s *Server) GetUnshippedOrders(ctx echo.Context) error {
	query := queries.NewGetUnshippedOrdersQuery()

	orders, err := s.getUnshippedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]UnshippedOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = UnshippedOrderResponse{
			ID:           o.ID,
			CustomerID:   o.CustomerID,
			PlacedAt:     o.PlacedAt,
			ShippingCity: o.ShippingCity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// orderError maps domain errors to HTTP status codes.
func (s *Server) orderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// toOrderResponse converts an order aggregate to its JSON representation.
func toOrderResponse(aggregate *order.Order) OrderResponse {
	response := OrderResponse{
		ID:              aggregate.ID(),
		CustomerID:      aggregate.CustomerID(),
		PlacedAt:        aggregate.PlacedAt(),
		ShippedAt:       aggregate.ShippedAt(),
		Discount:        aggregate.Discount().String(),
		ShippingStreet:  aggregate.ShippingAddress().Street(),
		ShippingCity:    aggregate.ShippingAddress().City(),
		ShippingCountry: aggregate.ShippingAddress().Country(),
		Lines:           make([]OrderLineResponse, 0, len(aggregate.Lines())),
		Total:           aggregate.Total().String(),
	}

	for _, line := range aggregate.Lines() {
		response.Lines = append(response.Lines, OrderLineResponse{
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().String(),
		})
	}

	return response
}
