// Package http exposes the application's use cases over a REST API.
// Handlers bind and validate request bodies, translate them into
// commands and queries, and map the error taxonomy onto HTTP status
// codes. No business rules live here.
package http

import (
	"github.com/labstack/echo/v4"

	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/commands"
	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	acceptOrderHandler           commands.AcceptOrderCommandHandler
	pickUpOrderHandler           commands.PickUpOrderCommandHandler
	startTransitHandler          commands.StartTransitCommandHandler
	completeDeliveryHandler      commands.CompleteDeliveryCommandHandler
	cancelOrderHandler           commands.CancelOrderCommandHandler
	registerCourierHandler       commands.RegisterCourierCommandHandler
	activateCourierHandler       commands.ActivateCourierCommandHandler
	updateCourierPositionHandler commands.UpdateCourierPositionCommandHandler
	recordCashPaymentHandler     commands.RecordCashPaymentCommandHandler
	initiateMobilePaymentHandler commands.InitiateMobilePaymentCommandHandler
	confirmMobilePaymentHandler  commands.ConfirmMobilePaymentCommandHandler
	cancelPendingPaymentHandler  commands.CancelPendingPaymentCommandHandler
	gatewayCallbackHandler       commands.ProcessGatewayCallbackCommandHandler

	// Query handlers
	trackOrderHandler            queries.TrackOrderQueryHandler
	availableOrdersHandler       queries.GetAvailableOrdersQueryHandler
	courierDeliveriesHandler     queries.GetCourierDeliveriesQueryHandler
	senderOrdersHandler          queries.GetSenderOrdersQueryHandler
	cancelledOrdersHandler       queries.GetCancelledOrdersQueryHandler
	amountDueTodayHandler        queries.GetAmountDueTodayQueryHandler
	paymentHistoryHandler        queries.GetPaymentHistoryQueryHandler
	dayDetailHandler             queries.GetDayDetailQueryHandler
	pendingMobilePaymentsHandler queries.GetPendingMobilePaymentsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	pickUpOrderHandler commands.PickUpOrderCommandHandler,
	startTransitHandler commands.StartTransitCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	registerCourierHandler commands.RegisterCourierCommandHandler,
	activateCourierHandler commands.ActivateCourierCommandHandler,
	updateCourierPositionHandler commands.UpdateCourierPositionCommandHandler,
	recordCashPaymentHandler commands.RecordCashPaymentCommandHandler,
	initiateMobilePaymentHandler commands.InitiateMobilePaymentCommandHandler,
	confirmMobilePaymentHandler commands.ConfirmMobilePaymentCommandHandler,
	cancelPendingPaymentHandler commands.CancelPendingPaymentCommandHandler,
	gatewayCallbackHandler commands.ProcessGatewayCallbackCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	courierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler,
	senderOrdersHandler queries.GetSenderOrdersQueryHandler,
	cancelledOrdersHandler queries.GetCancelledOrdersQueryHandler,
	amountDueTodayHandler queries.GetAmountDueTodayQueryHandler,
	paymentHistoryHandler queries.GetPaymentHistoryQueryHandler,
	dayDetailHandler queries.GetDayDetailQueryHandler,
	pendingMobilePaymentsHandler queries.GetPendingMobilePaymentsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		acceptOrderHandler:           acceptOrderHandler,
		pickUpOrderHandler:           pickUpOrderHandler,
		startTransitHandler:          startTransitHandler,
		completeDeliveryHandler:      completeDeliveryHandler,
		cancelOrderHandler:           cancelOrderHandler,
		registerCourierHandler:       registerCourierHandler,
		activateCourierHandler:       activateCourierHandler,
		updateCourierPositionHandler: updateCourierPositionHandler,
		recordCashPaymentHandler:     recordCashPaymentHandler,
		initiateMobilePaymentHandler: initiateMobilePaymentHandler,
		confirmMobilePaymentHandler:  confirmMobilePaymentHandler,
		cancelPendingPaymentHandler:  cancelPendingPaymentHandler,
		gatewayCallbackHandler:       gatewayCallbackHandler,
		trackOrderHandler:            trackOrderHandler,
		availableOrdersHandler:       availableOrdersHandler,
		courierDeliveriesHandler:     courierDeliveriesHandler,
		senderOrdersHandler:          senderOrdersHandler,
		cancelledOrdersHandler:       cancelledOrdersHandler,
		amountDueTodayHandler:        amountDueTodayHandler,
		paymentHistoryHandler:        paymentHistoryHandler,
		dayDetailHandler:             dayDetailHandler,
		pendingMobilePaymentsHandler: pendingMobilePaymentsHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetSenderOrders)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/orders/cancelled", s.GetCancelledOrders)
	api.GET("/orders/track/:reference", s.TrackOrder)
	api.POST("/orders/:orderID/accept", s.AcceptOrder)
	api.POST("/orders/:orderID/pickup", s.PickUpOrder)
	api.POST("/orders/:orderID/transit", s.StartTransit)
	api.POST("/orders/:orderID/deliver", s.CompleteDelivery)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.POST("/couriers", s.RegisterCourier)
	api.POST("/couriers/:courierID/activate", s.ActivateCourier)
	api.POST("/couriers/:courierID/position", s.UpdateCourierPosition)
	api.GET("/couriers/:courierID/deliveries", s.GetCourierDeliveries)
	api.GET("/couriers/:courierID/payments/due", s.GetAmountDueToday)
	api.GET("/couriers/:courierID/payments/history", s.GetPaymentHistory)
	api.GET("/couriers/:courierID/payments/days/:date", s.GetDayDetail)

	api.POST("/payments/cash", s.RecordCashPayment)
	api.POST("/payments/mobile", s.InitiateMobilePayment)
	api.GET("/payments/pending", s.GetPendingMobilePayments)
	api.POST("/payments/:reference/confirm", s.ConfirmMobilePayment)
	api.POST("/payments/:reference/cancel", s.CancelPendingPayment)
	api.POST("/payments/webhook/cinetpay", s.CinetPayWebhook)
}
