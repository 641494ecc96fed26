package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/commands"
	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/queries"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/courier"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
)

// RegisterCourierRequest is the body for POST /couriers.
type RegisterCourierRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Vehicle string `json:"vehicle" validate:"required"`
}

// RegisterCourierResponse returns the identifier of the new courier.
type RegisterCourierResponse struct {
	ID string `json:"id"`
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var req RegisterCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}
	if err := ctx.Validate(&req); err != nil {
		return errorResponse(ctx, err)
	}

	vehicle, err := courier.VehicleTypeFromString(req.Vehicle)
	if err != nil {
		return errorResponse(ctx, err)
	}

	courierID := kernel.NewUUID()

	cmd, err := commands.NewRegisterCourierCommand(courierID, req.Name, req.Phone, req.Email, vehicle)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.registerCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterCourierResponse{ID: courierID.String()})
}

// ActivateCourier handles POST /api/v1/couriers/:courierID/activate.
func (s *Server) ActivateCourier(ctx echo.Context) error {
	courierID, err := uuidFromParam(ctx, "courierID")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewActivateCourierCommand(courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.activateCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCourierPositionRequest is the body for POST /couriers/:courierID/position.
type UpdateCourierPositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// UpdateCourierPosition handles POST /api/v1/couriers/:courierID/position.
func (s *Server) UpdateCourierPosition(ctx echo.Context) error {
	courierID, err := uuidFromParam(ctx, "courierID")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req UpdateCourierPositionRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}
	if err = ctx.Validate(&req); err != nil {
		return errorResponse(ctx, err)
	}

	position, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateCourierPositionCommand(courierID, position)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateCourierPositionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CourierDeliveryResponse is one completed delivery of a courier.
type CourierDeliveryResponse struct {
	Reference       string          `json:"reference"`
	RecipientName   string          `json:"recipient_name"`
	DeliveryAddress string          `json:"delivery_address"`
	Fee             decimal.Decimal `json:"fee"`
	DeliveredAt     time.Time       `json:"delivered_at"`
}

// GetCourierDeliveries handles GET /api/v1/couriers/:courierID/deliveries.
func (s *Server) GetCourierDeliveries(ctx echo.Context) error {
	courierID, err := uuidFromParam(ctx, "courierID")
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetCourierDeliveriesQuery(courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows, err := s.courierDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]CourierDeliveryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, CourierDeliveryResponse{
			Reference:       row.Reference,
			RecipientName:   row.RecipientName,
			DeliveryAddress: row.DeliveryAddress,
			Fee:             row.Fee,
			DeliveredAt:     row.DeliveredAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
