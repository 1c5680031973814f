// Package http exposes the order subsystem over a REST API.
// It coordinates between HTTP handlers and application use cases: requests
// are parsed into commands and queries, and notification messages returned
// by the write side are dispatched after the response is committed.
package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lcnogueira/plataforma-sabia/internal/core/application/usecases/commands"
	"github.com/lcnogueira/plataforma-sabia/internal/core/application/usecases/queries"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/notifications"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// Handlers bundles the command and query handlers the server routes to.
type Handlers struct {
	CreateTechnologyOrder commands.CreateTechnologyOrderCommandHandler
	CloseTechnologyOrder  commands.CloseTechnologyOrderCommandHandler
	CancelTechnologyOrder commands.CancelTechnologyOrderCommandHandler
	CheckoutServiceOrders commands.CheckoutServiceOrdersCommandHandler
	PerformServiceOrder   commands.PerformServiceOrderCommandHandler
	UpdateServiceOrder    commands.UpdateServiceOrderCommandHandler
	DeleteServiceOrder    commands.DeleteServiceOrderCommandHandler
	CreateReview          commands.CreateReviewCommandHandler
	UpdateReview          commands.UpdateReviewCommandHandler
	DeleteReview          commands.DeleteReviewCommandHandler

	ListTechnologyOrders queries.ListTechnologyOrdersQueryHandler
	GetTechnologyOrder   queries.GetTechnologyOrderQueryHandler
	ListServiceOrders    queries.ListServiceOrdersQueryHandler
	ListReviews          queries.ListReviewsQueryHandler
}

// Server implements the REST API for technology orders, service orders and
// reviews.
type Server struct {
	handlers   Handlers
	dispatcher *notifications.Dispatcher
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(handlers Handlers, dispatcher *notifications.Dispatcher) *Server {
	return &Server{handlers: handlers, dispatcher: dispatcher}
}

// RegisterRoutes binds the API routes. Every route requires authentication.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	api := e.Group("/api", auth.Authenticate)

	api.POST("/technologies/:technologyId/orders", s.CreateTechnologyOrder)
	api.GET("/technologies/:technologyId/orders", s.ListTechnologyOrdersForTechnology)
	api.GET("/orders", s.ListTechnologyOrders)
	api.GET("/orders/:id", s.GetTechnologyOrder)
	api.PUT("/orders/:id/close", s.CloseTechnologyOrder)
	api.PUT("/orders/:id/cancel", s.CancelTechnologyOrder)

	api.POST("/services/orders", s.CheckoutServiceOrders)
	api.GET("/services/orders", s.ListServiceOrders)
	api.PUT("/services/orders/:id", s.UpdateServiceOrder)
	api.PUT("/services/orders/:id/perform", s.PerformServiceOrder)
	api.DELETE("/services/orders/:id", s.DeleteServiceOrder)

	api.POST("/services/orders/:id/review", s.CreateReview)
	api.GET("/services/orders/reviews", s.ListReviews)
	api.PUT("/services/orders/reviews/:id", s.UpdateReview)
	api.DELETE("/services/orders/reviews/:id", s.DeleteReview)
}

// notify hands pending notification messages to the dispatcher without
// blocking the response. The request context may be cancelled as soon as the
// response is written, so dispatch runs on a detached context.
func (s *Server) notify(ctx echo.Context, msgs []notifications.Message) {
	if len(msgs) == 0 {
		return
	}
	go s.dispatcher.Dispatch(context.WithoutCancel(ctx.Request().Context()), msgs)
}

type newTechnologyOrderRequest struct {
	Quantity int    `json:"quantity"`
	Use      string `json:"use"`
	Funding  string `json:"funding"`
	Comment  string `json:"comment"`
}

// CreateTechnologyOrder handles POST /api/technologies/:technologyId/orders.
func (s *Server) CreateTechnologyOrder(ctx echo.Context) error {
	technologyID, err := kernel.UUIDFromString(ctx.Param("technologyId"))
	if err != nil {
		return writeValidationError(ctx, "invalid technology id")
	}

	var body newTechnologyOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return writeValidationError(ctx, "invalid request body")
	}

	use, err := techorder.UseFromString(body.Use)
	if err != nil {
		return writeError(ctx, err)
	}
	funding, err := techorder.FundingFromString(body.Funding)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateTechnologyOrderCommand(
		kernel.NewUUID(),
		technologyID,
		currentUser(ctx).ID(),
		body.Quantity,
		use,
		funding,
		body.Comment,
	)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	order, msgs, err := s.handlers.CreateTechnologyOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	s.notify(ctx, msgs)
	return ctx.JSON(http.StatusCreated, toTechnologyOrderResponse(order))
}

// ListTechnologyOrders handles GET /api/orders.
func (s *Server) ListTechnologyOrders(ctx echo.Context) error {
	filter, err := parseTechnologyOrderFilter(ctx)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	query, err := queries.NewListTechnologyOrdersQuery(currentUser(ctx), filter, parsePage(ctx))
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	response, err := s.handlers.ListTechnologyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTechnologyOrderListResponse(response))
}

// ListTechnologyOrdersForTechnology handles GET /api/technologies/:technologyId/orders.
func (s *Server) ListTechnologyOrdersForTechnology(ctx echo.Context) error {
	technologyID, err := kernel.UUIDFromString(ctx.Param("technologyId"))
	if err != nil {
		return writeValidationError(ctx, "invalid technology id")
	}

	filter, err := parseTechnologyOrderFilter(ctx)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}
	filter.TechnologyID = &technologyID

	query, err := queries.NewListTechnologyOrdersQuery(currentUser(ctx), filter, parsePage(ctx))
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	response, err := s.handlers.ListTechnologyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTechnologyOrderListResponse(response))
}

// GetTechnologyOrder handles GET /api/orders/:id.
func (s *Server) GetTechnologyOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeValidationError(ctx, "invalid order id")
	}

	query, err := queries.NewGetTechnologyOrderQuery(orderID, currentUser(ctx))
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	row, err := s.handlers.GetTechnologyOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTechnologyOrderItem(row))
}

type closeTechnologyOrderRequest struct {
	Quantity  int     `json:"quantity"`
	UnitValue float64 `json:"unit_value"`
}

// CloseTechnologyOrder handles PUT /api/orders/:id/close.
func (s *Server) CloseTechnologyOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeValidationError(ctx, "invalid order id")
	}

	var body closeTechnologyOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return writeValidationError(ctx, "invalid request body")
	}

	cmd, err := commands.NewCloseTechnologyOrderCommand(
		orderID,
		currentUser(ctx).ID(),
		body.Quantity,
		body.UnitValue,
	)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	order, msgs, err := s.handlers.CloseTechnologyOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	s.notify(ctx, msgs)
	return ctx.JSON(http.StatusOK, toTechnologyOrderResponse(order))
}

type cancelTechnologyOrderRequest struct {
	Reason string `json:"cancellation_reason"`
}

// CancelTechnologyOrder handles PUT /api/orders/:id/cancel.
func (s *Server) CancelTechnologyOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeValidationError(ctx, "invalid order id")
	}

	var body cancelTechnologyOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return writeValidationError(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelTechnologyOrderCommand(orderID, currentUser(ctx).ID(), body.Reason)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	order, msgs, err := s.handlers.CancelTechnologyOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	s.notify(ctx, msgs)
	return ctx.JSON(http.StatusOK, toTechnologyOrderResponse(order))
}

type cartItemRequest struct {
	ServiceID string `json:"service_id"`
	Quantity  int    `json:"quantity"`
	Comment   string `json:"comment"`
}

type checkoutRequest struct {
	Services []cartItemRequest `json:"services"`
	Comment  string            `json:"comment"`
}

// toCartItems maps the request body to cart items. The request-level comment
// applies to every line unless the line carries its own.
func (r checkoutRequest) toCartItems() ([]commands.CartItem, error) {
	items := make([]commands.CartItem, 0, len(r.Services))
	for _, item := range r.Services {
		serviceID, err := kernel.UUIDFromString(item.ServiceID)
		if err != nil {
			return nil, err
		}
		comment := r.Comment
		if item.Comment != "" {
			comment = item.Comment
		}
		items = append(items, commands.CartItem{
			OrderID:   kernel.NewUUID(),
			ServiceID: serviceID,
			Quantity:  item.Quantity,
			Comment:   comment,
		})
	}
	return items, nil
}

// CheckoutServiceOrders handles POST /api/services/orders.
func (s *Server) CheckoutServiceOrders(ctx echo.Context) error {
	var body checkoutRequest
	if err := ctx.Bind(&body); err != nil {
		return writeValidationError(ctx, "invalid request body")
	}

	items, err := body.toCartItems()
	if err != nil {
		return writeValidationError(ctx, "invalid service id")
	}

	cmd, err := commands.NewCheckoutServiceOrdersCommand(currentUser(ctx).ID(), items)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	orders, msgs, err := s.handlers.CheckoutServiceOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]serviceOrderResponse, len(orders))
	for i, order := range orders {
		response[i] = toServiceOrderResponse(order)
	}

	s.notify(ctx, msgs)
	return ctx.JSON(http.StatusCreated, response)
}

// ListServiceOrders handles GET /api/services/orders.
func (s *Server) ListServiceOrders(ctx echo.Context) error {
	filter, err := parseServiceOrderFilter(ctx)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	query, err := queries.NewListServiceOrdersQuery(currentUser(ctx), filter, parsePage(ctx))
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	response, err := s.handlers.ListServiceOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toServiceOrderListResponse(response))
}

type updateServiceOrderRequest struct {
	Quantity int    `json:"quantity"`
	Comment  string `json:"comment"`
}

// UpdateServiceOrder handles PUT /api/services/orders/:id.
func (s *Server) UpdateServiceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeValidationError(ctx, "invalid order id")
	}

	var body updateServiceOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return writeValidationError(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateServiceOrderCommand(
		orderID,
		currentUser(ctx).ID(),
		body.Quantity,
		body.Comment,
	)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	order, err := s.handlers.UpdateServiceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toServiceOrderResponse(order))
}

// PerformServiceOrder handles PUT /api/services/orders/:id/perform.
func (s *Server) PerformServiceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeValidationError(ctx, "invalid order id")
	}

	cmd, err := commands.NewPerformServiceOrderCommand(orderID, currentUser(ctx).ID())
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	order, err := s.handlers.PerformServiceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toServiceOrderResponse(order))
}

// DeleteServiceOrder handles DELETE /api/services/orders/:id.
func (s *Server) DeleteServiceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeValidationError(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteServiceOrderCommand(orderID, currentUser(ctx).ID())
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err = s.handlers.DeleteServiceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type reviewRequest struct {
	Content  string   `json:"content"`
	Rating   int      `json:"rating"`
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// CreateReview handles POST /api/services/orders/:id/review.
func (s *Server) CreateReview(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeValidationError(ctx, "invalid service order id")
	}

	var body reviewRequest
	if err = ctx.Bind(&body); err != nil {
		return writeValidationError(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateReviewCommand(
		kernel.NewUUID(),
		serviceOrderID,
		currentUser(ctx).ID(),
		body.Content,
		body.Rating,
		body.Positive,
		body.Negative,
	)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	review, err := s.handlers.CreateReview.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toReviewResponse(review))
}

// ListReviews handles GET /api/services/orders/reviews.
func (s *Server) ListReviews(ctx echo.Context) error {
	var filter queries.ListReviewsFilter
	if raw := ctx.QueryParam("orderId"); raw != "" {
		serviceOrderID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeValidationError(ctx, "invalid service order id")
		}
		filter.ServiceOrderID = &serviceOrderID
	}

	query, err := queries.NewListReviewsQuery(currentUser(ctx), filter, parsePage(ctx))
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	response, err := s.handlers.ListReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReviewListResponse(response))
}

// UpdateReview handles PUT /api/services/orders/reviews/:id.
func (s *Server) UpdateReview(ctx echo.Context) error {
	reviewID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeValidationError(ctx, "invalid review id")
	}

	var body reviewRequest
	if err = ctx.Bind(&body); err != nil {
		return writeValidationError(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateReviewCommand(
		reviewID,
		currentUser(ctx).ID(),
		body.Content,
		body.Rating,
		body.Positive,
		body.Negative,
	)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	review, err := s.handlers.UpdateReview.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReviewResponse(review))
}

// DeleteReview handles DELETE /api/services/orders/reviews/:id.
func (s *Server) DeleteReview(ctx echo.Context) error {
	reviewID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeValidationError(ctx, "invalid review id")
	}

	cmd, err := commands.NewDeleteReviewCommand(reviewID, currentUser(ctx).ID())
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err = s.handlers.DeleteReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parsePage(ctx echo.Context) queries.Page {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	perPage, _ := strconv.Atoi(ctx.QueryParam("perPage"))
	return queries.NewPage(page, perPage)
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parseFromCurrentUser selects the buyer view. A fromCurrentUser parameter
// that is present but empty counts as true.
func parseFromCurrentUser(ctx echo.Context) bool {
	params := ctx.QueryParams()
	if !params.Has("fromCurrentUser") {
		return false
	}
	value := params.Get("fromCurrentUser")
	return value == "true" || value == ""
}

func parseTechnologyOrderFilter(ctx echo.Context) (queries.ListTechnologyOrdersFilter, error) {
	filter := queries.ListTechnologyOrdersFilter{
		FromCurrentUser: parseFromCurrentUser(ctx),
		OrderBy:         ctx.QueryParam("orderBy"),
		Order:           ctx.QueryParam("order"),
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status, err := techorder.StatusFromString(strings.TrimSpace(part))
			if err != nil {
				return queries.ListTechnologyOrdersFilter{}, err
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	if raw := ctx.QueryParam("technologyId"); raw != "" {
		technologyID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return queries.ListTechnologyOrdersFilter{}, err
		}
		filter.TechnologyID = &technologyID
	}

	if raw := ctx.QueryParam("buyerId"); raw != "" {
		buyerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return queries.ListTechnologyOrdersFilter{}, err
		}
		filter.BuyerID = &buyerID
	}

	if raw := ctx.QueryParam("unitValue"); raw != "" {
		unitValue, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return queries.ListTechnologyOrdersFilter{}, err
		}
		filter.UnitValue = &unitValue
	}

	var err error
	if filter.DateFrom, err = parseDate(ctx.QueryParam("dateFrom")); err != nil {
		return queries.ListTechnologyOrdersFilter{}, err
	}
	if filter.DateTo, err = parseDate(ctx.QueryParam("dateTo")); err != nil {
		return queries.ListTechnologyOrdersFilter{}, err
	}

	return filter, nil
}

func parseServiceOrderFilter(ctx echo.Context) (queries.ListServiceOrdersFilter, error) {
	filter := queries.ListServiceOrdersFilter{
		FromCurrentUser: parseFromCurrentUser(ctx),
		OrderBy:         ctx.QueryParam("orderBy"),
		Order:           ctx.QueryParam("order"),
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status, err := serviceorder.StatusFromString(strings.TrimSpace(part))
			if err != nil {
				return queries.ListServiceOrdersFilter{}, err
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	var err error
	if filter.DateFrom, err = parseDate(ctx.QueryParam("dateFrom")); err != nil {
		return queries.ListServiceOrdersFilter{}, err
	}
	if filter.DateTo, err = parseDate(ctx.QueryParam("dateTo")); err != nil {
		return queries.ListServiceOrdersFilter{}, err
	}

	return filter, nil
}
