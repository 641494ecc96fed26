package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/commands"
	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/queries"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// GeoPointRequest carries coordinates in a request body.
type GeoPointRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// CreateOrderRequest is the body for POST /orders.
type CreateOrderRequest struct {
	Sender struct {
		Name           string           `json:"name" validate:"required"`
		Phone          string           `json:"phone" validate:"required"`
		Email          string           `json:"email" validate:"omitempty,email"`
		AlternatePhone string           `json:"alternate_phone"`
		PickupAddress  string           `json:"pickup_address" validate:"required"`
		PickupGeo      *GeoPointRequest `json:"pickup_geo"`
	} `json:"sender" validate:"required"`
	Recipient struct {
		Name    string          `json:"name" validate:"required"`
		Phone   string          `json:"phone" validate:"required"`
		Email   string          `json:"email" validate:"omitempty,email"`
		Address string          `json:"address" validate:"required"`
		Geo     GeoPointRequest `json:"geo" validate:"required"`
	} `json:"recipient" validate:"required"`
	Package struct {
		Category    string `json:"category" validate:"required"`
		Nature      string `json:"nature" validate:"required"`
		Label       string `json:"label" validate:"required"`
		Description string `json:"description"`
	} `json:"package" validate:"required"`
	Fee decimal.Decimal `json:"fee"`
}

// CreateOrderResponse returns the tracking reference of the new order.
type CreateOrderResponse struct {
	Reference string `json:"reference"`
}

// CourierActionRequest identifies the courier performing a lifecycle action.
type CourierActionRequest struct {
	CourierID string `json:"courier_id" validate:"required,uuid"`
}

// CompleteDeliveryRequest is the body for POST /orders/:orderID/deliver.
type CompleteDeliveryRequest struct {
	CourierID        string `json:"courier_id" validate:"required,uuid"`
	ConfirmationCode string `json:"confirmation_code" validate:"required,len=4"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}
	if err := ctx.Validate(&req); err != nil {
		return errorResponse(ctx, err)
	}

	sender, err := senderFromRequest(req)
	if err != nil {
		return errorResponse(ctx, err)
	}

	recipientGeo, err := kernel.NewGeoPoint(req.Recipient.Geo.Latitude, req.Recipient.Geo.Longitude)
	if err != nil {
		return errorResponse(ctx, err)
	}

	recipient, err := order.NewRecipient(
		req.Recipient.Name, req.Recipient.Phone, req.Recipient.Email, req.Recipient.Address, recipientGeo,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	pkg, err := packageFromRequest(req)
	if err != nil {
		return errorResponse(ctx, err)
	}

	fee := kernel.ZeroMoney()
	if req.Fee.IsPositive() {
		if fee, err = kernel.NewMoney(req.Fee); err != nil {
			return errorResponse(ctx, err)
		}
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), sender, recipient, pkg, fee)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{Reference: result.Reference})
}

// AcceptOrder handles POST /api/v1/orders/:orderID/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, courierID, err := s.bindCourierAction(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickUpOrder handles POST /api/v1/orders/:orderID/pickup.
func (s *Server) PickUpOrder(ctx echo.Context) error {
	orderID, courierID, err := s.bindCourierAction(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewPickUpOrderCommand(orderID, courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.pickUpOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartTransit handles POST /api/v1/orders/:orderID/transit.
func (s *Server) StartTransit(ctx echo.Context) error {
	orderID, courierID, err := s.bindCourierAction(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewStartTransitCommand(orderID, courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.startTransitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:orderID/deliver.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := uuidFromParam(ctx, "orderID")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req CompleteDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}
	if err = ctx.Validate(&req); err != nil {
		return errorResponse(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, courierID, req.ConfirmationCode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := uuidFromParam(ctx, "orderID")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackOrderResponse is the public tracking view of an order.
type TrackOrderResponse struct {
	Reference        string     `json:"reference"`
	Status           string     `json:"status"`
	RecipientAddress string     `json:"recipient_address"`
	CreatedAt        time.Time  `json:"created_at"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
	CourierName      string     `json:"courier_name,omitempty"`
	CourierPhone     string     `json:"courier_phone,omitempty"`
	RemainingKm      *float64   `json:"remaining_km,omitempty"`
	EstimatedMinutes *int       `json:"estimated_minutes,omitempty"`
}

// TrackOrder handles GET /api/v1/orders/track/:reference.
func (s *Server) TrackOrder(ctx echo.Context) error {
	query, err := queries.NewTrackOrderQuery(ctx.Param("reference"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	tracked, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackOrderResponse{
		Reference:        tracked.Reference,
		Status:           tracked.Status,
		RecipientAddress: tracked.RecipientAddress,
		CreatedAt:        tracked.CreatedAt,
		DeliveredAt:      tracked.DeliveredAt,
		CourierName:      tracked.CourierName,
		CourierPhone:     tracked.CourierPhone,
		RemainingKm:      tracked.RemainingKm,
		EstimatedMinutes: tracked.EstimatedMinutes,
	})
}

// AvailableOrderResponse is one row of the courier's order board.
type AvailableOrderResponse struct {
	Reference       string          `json:"reference"`
	SenderName      string          `json:"sender_name"`
	PickupAddress   string          `json:"pickup_address"`
	RecipientName   string          `json:"recipient_name"`
	DeliveryAddress string          `json:"delivery_address"`
	PackageCategory string          `json:"package_category"`
	PackageNature   string          `json:"package_nature"`
	PackageLabel    string          `json:"package_label"`
	Fee             decimal.Decimal `json:"fee"`
	CreatedAt       time.Time       `json:"created_at"`
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	available, err := s.availableOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]AvailableOrderResponse, 0, len(available))
	for _, row := range available {
		response = append(response, AvailableOrderResponse{
			Reference:       row.Reference,
			SenderName:      row.SenderName,
			PickupAddress:   row.PickupAddress,
			RecipientName:   row.RecipientName,
			DeliveryAddress: row.DeliveryAddress,
			PackageCategory: row.PackageCategory,
			PackageNature:   row.PackageNature,
			PackageLabel:    row.PackageLabel,
			Fee:             row.Fee,
			CreatedAt:       row.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// SenderOrderResponse is one row of a sender's order history.
type SenderOrderResponse struct {
	Reference       string          `json:"reference"`
	Status          string          `json:"status"`
	RecipientName   string          `json:"recipient_name"`
	DeliveryAddress string          `json:"delivery_address"`
	PackageLabel    string          `json:"package_label"`
	Fee             decimal.Decimal `json:"fee"`
	CourierName     string          `json:"courier_name,omitempty"`
	CourierPhone    string          `json:"courier_phone,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// GetSenderOrders handles GET /api/v1/orders?sender_phone=...
func (s *Server) GetSenderOrders(ctx echo.Context) error {
	query, err := queries.NewGetSenderOrdersQuery(ctx.QueryParam("sender_phone"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows, err := s.senderOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]SenderOrderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, SenderOrderResponse{
			Reference:       row.Reference,
			Status:          row.Status,
			RecipientName:   row.RecipientName,
			DeliveryAddress: row.DeliveryAddress,
			PackageLabel:    row.PackageLabel,
			Fee:             row.Fee,
			CourierName:     row.CourierName,
			CourierPhone:    row.CourierPhone,
			CreatedAt:       row.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelledOrderResponse is one row of a sender's cancelled orders.
type CancelledOrderResponse struct {
	Reference       string    `json:"reference"`
	RecipientName   string    `json:"recipient_name"`
	DeliveryAddress string    `json:"delivery_address"`
	PackageLabel    string    `json:"package_label"`
	CreatedAt       time.Time `json:"created_at"`
	CancelledAt     time.Time `json:"cancelled_at"`
}

// GetCancelledOrders handles GET /api/v1/orders/cancelled?sender_phone=...
func (s *Server) GetCancelledOrders(ctx echo.Context) error {
	query, err := queries.NewGetCancelledOrdersQuery(ctx.QueryParam("sender_phone"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows, err := s.cancelledOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]CancelledOrderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, CancelledOrderResponse{
			Reference:       row.Reference,
			RecipientName:   row.RecipientName,
			DeliveryAddress: row.DeliveryAddress,
			PackageLabel:    row.PackageLabel,
			CreatedAt:       row.CreatedAt,
			CancelledAt:     row.CancelledAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) bindCourierAction(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := uuidFromParam(ctx, "orderID")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	var req CourierActionRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, courierID, nil
}

func senderFromRequest(req CreateOrderRequest) (order.Sender, error) {
	var pickupGeo *kernel.GeoPoint
	if req.Sender.PickupGeo != nil {
		geo, err := kernel.NewGeoPoint(req.Sender.PickupGeo.Latitude, req.Sender.PickupGeo.Longitude)
		if err != nil {
			return order.Sender{}, err
		}
		pickupGeo = &geo
	}

	return order.NewSender(
		req.Sender.Name,
		req.Sender.Phone,
		req.Sender.Email,
		req.Sender.AlternatePhone,
		req.Sender.PickupAddress,
		pickupGeo,
	)
}

func packageFromRequest(req CreateOrderRequest) (order.Package, error) {
	category, err := order.CategoryFromString(req.Package.Category)
	if err != nil {
		return order.Package{}, err
	}

	nature, err := order.NatureFromString(req.Package.Nature)
	if err != nil {
		return order.Package{}, err
	}

	return order.NewPackage(category, nature, req.Package.Label, req.Package.Description)
}

func uuidFromParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return id, nil
}
