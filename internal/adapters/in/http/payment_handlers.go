package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/commands"
	"github.com/Salamjean/kksExpress-backend/internal/core/application/usecases/queries"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// RecordCashPaymentRequest is the body for POST /payments/cash.
type RecordCashPaymentRequest struct {
	CourierID   string          `json:"courier_id" validate:"required,uuid"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description"`
}

// RecordCashPayment handles POST /api/v1/payments/cash.
func (s *Server) RecordCashPayment(ctx echo.Context) error {
	var req RecordCashPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}
	if err := ctx.Validate(&req); err != nil {
		return errorResponse(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRecordCashPaymentCommand(kernel.NewUUID(), courierID, amount, req.Description)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.recordCashPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// InitiateMobilePaymentRequest is the body for POST /payments/mobile.
type InitiateMobilePaymentRequest struct {
	CourierID   string          `json:"courier_id" validate:"required,uuid"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Method      string          `json:"method" validate:"required"`
	PhoneUsed   string          `json:"phone_used" validate:"required"`
	Description string          `json:"description"`
}

// InitiateMobilePaymentResponse returns what the courier app needs to
// open the checkout page.
type InitiateMobilePaymentResponse struct {
	Reference  string `json:"reference"`
	PaymentURL string `json:"payment_url"`
}

// InitiateMobilePayment handles POST /api/v1/payments/mobile.
func (s *Server) InitiateMobilePayment(ctx echo.Context) error {
	var req InitiateMobilePaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}
	if err := ctx.Validate(&req); err != nil {
		return errorResponse(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if method == payment.MethodCash {
		return errorResponse(ctx, errs.NewValueIsInvalidError("method"))
	}

	cmd, err := commands.NewInitiateMobilePaymentCommand(
		kernel.NewUUID(), courierID, amount, method, req.PhoneUsed, req.Description,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.initiateMobilePaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, InitiateMobilePaymentResponse{
		Reference:  result.Reference,
		PaymentURL: result.PaymentURL,
	})
}

// ConfirmMobilePaymentResponse reports the verdict applied to a payment.
type ConfirmMobilePaymentResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// ConfirmMobilePayment handles POST /api/v1/payments/:reference/confirm.
func (s *Server) ConfirmMobilePayment(ctx echo.Context) error {
	cmd, err := commands.NewConfirmMobilePaymentCommand(ctx.Param("reference"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.confirmMobilePaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ConfirmMobilePaymentResponse{
		Reference: result.Reference,
		Status:    result.Status.String(),
	})
}

// CancelPendingPayment handles POST /api/v1/payments/:reference/cancel.
func (s *Server) CancelPendingPayment(ctx echo.Context) error {
	cmd, err := commands.NewCancelPendingPaymentCommand(ctx.Param("reference"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.cancelPendingPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AmountDueTodayResponse is the courier's standing for the current day.
type AmountDueTodayResponse struct {
	Date         string          `json:"date"`
	Quota        decimal.Decimal `json:"quota"`
	Arrears      decimal.Decimal `json:"arrears"`
	TotalDue     decimal.Decimal `json:"total_due"`
	PaidToday    decimal.Decimal `json:"paid_today"`
	RemainingDue decimal.Decimal `json:"remaining_due"`
}

// GetAmountDueToday handles GET /api/v1/couriers/:courierID/payments/due.
func (s *Server) GetAmountDueToday(ctx echo.Context) error {
	courierID, err := uuidFromParam(ctx, "courierID")
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetAmountDueTodayQuery(courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	due, err := s.amountDueTodayHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AmountDueTodayResponse{
		Date:         due.Date.String(),
		Quota:        due.Quota.Amount(),
		Arrears:      due.Arrears.Amount(),
		TotalDue:     due.TotalDue.Amount(),
		PaidToday:    due.PaidToday.Amount(),
		RemainingDue: due.RemainingDue.Amount(),
	})
}

// PaymentHistoryDayResponse is one day of a courier's ledger.
type PaymentHistoryDayResponse struct {
	Date         string          `json:"date"`
	AmountDue    decimal.Decimal `json:"amount_due"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Remaining    decimal.Decimal `json:"remaining"`
	Settlement   string          `json:"settlement"`
	PaymentCount int             `json:"payment_count"`
}

// PaymentHistoryResponse is a courier's ledger over the selected period.
type PaymentHistoryResponse struct {
	Days      []PaymentHistoryDayResponse `json:"days"`
	TotalPaid decimal.Decimal             `json:"total_paid"`
	TotalDue  decimal.Decimal             `json:"total_due"`
	Arrears   decimal.Decimal             `json:"arrears"`
}

// GetPaymentHistory handles GET /api/v1/couriers/:courierID/payments/history.
// Optional year and month query parameters narrow the period; both must
// be given together.
func (s *Server) GetPaymentHistory(ctx echo.Context) error {
	courierID, err := uuidFromParam(ctx, "courierID")
	if err != nil {
		return errorResponse(ctx, err)
	}

	year, err := intQueryParam(ctx, "year")
	if err != nil {
		return errorResponse(ctx, err)
	}

	month, err := intQueryParam(ctx, "month")
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetPaymentHistoryQuery(courierID, year, time.Month(month))
	if err != nil {
		return errorResponse(ctx, err)
	}

	history, err := s.paymentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	days := make([]PaymentHistoryDayResponse, 0, len(history.Days))
	for _, day := range history.Days {
		days = append(days, PaymentHistoryDayResponse{
			Date:         day.Date.String(),
			AmountDue:    day.AmountDue.Amount(),
			TotalPaid:    day.TotalPaid.Amount(),
			Remaining:    day.Remaining.Amount(),
			Settlement:   day.Settlement,
			PaymentCount: day.PaymentCount,
		})
	}

	return ctx.JSON(http.StatusOK, PaymentHistoryResponse{
		Days:      days,
		TotalPaid: history.TotalPaid.Amount(),
		TotalDue:  history.TotalDue.Amount(),
		Arrears:   history.Arrears.Amount(),
	})
}

// DayDetailPaymentResponse is one payment row inside a day.
type DayDetailPaymentResponse struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	PhoneUsed string          `json:"phone_used,omitempty"`
	Status    string          `json:"status"`
	PaidAt    time.Time       `json:"paid_at"`
}

// DayDetailResponse is the full ledger view of one day.
type DayDetailResponse struct {
	Date       string                     `json:"date"`
	AmountDue  decimal.Decimal            `json:"amount_due"`
	TotalPaid  decimal.Decimal            `json:"total_paid"`
	Remaining  decimal.Decimal            `json:"remaining"`
	Settlement string                     `json:"settlement"`
	Payments   []DayDetailPaymentResponse `json:"payments"`
}

// GetDayDetail handles GET /api/v1/couriers/:courierID/payments/days/:date.
func (s *Server) GetDayDetail(ctx echo.Context) error {
	courierID, err := uuidFromParam(ctx, "courierID")
	if err != nil {
		return errorResponse(ctx, err)
	}

	date, err := kernel.ParseDate(ctx.Param("date"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetDayDetailQuery(courierID, date)
	if err != nil {
		return errorResponse(ctx, err)
	}

	detail, err := s.dayDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows := make([]DayDetailPaymentResponse, 0, len(detail.Payments))
	for _, row := range detail.Payments {
		rows = append(rows, DayDetailPaymentResponse{
			Reference: row.Reference,
			Amount:    row.Amount.Amount(),
			Method:    row.Method,
			PhoneUsed: row.PhoneUsed,
			Status:    row.Status,
			PaidAt:    row.PaidAt,
		})
	}

	return ctx.JSON(http.StatusOK, DayDetailResponse{
		Date:       detail.Date.String(),
		AmountDue:  detail.AmountDue.Amount(),
		TotalPaid:  detail.TotalPaid.Amount(),
		Remaining:  detail.Remaining.Amount(),
		Settlement: detail.Settlement,
		Payments:   rows,
	})
}

// PendingMobilePaymentResponse is one mobile payment still awaiting a
// gateway verdict.
type PendingMobilePaymentResponse struct {
	Reference    string          `json:"reference"`
	CourierName  string          `json:"courier_name"`
	CourierPhone string          `json:"courier_phone"`
	Amount       decimal.Decimal `json:"amount"`
	Method       string          `json:"method"`
	PhoneUsed    string          `json:"phone_used"`
	PaidAt       time.Time       `json:"paid_at"`
}

// GetPendingMobilePayments handles GET /api/v1/payments/pending.
func (s *Server) GetPendingMobilePayments(ctx echo.Context) error {
	rows, err := s.pendingMobilePaymentsHandler.Handle(ctx.Request().Context(), queries.NewGetPendingMobilePaymentsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]PendingMobilePaymentResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, PendingMobilePaymentResponse{
			Reference:    row.Reference,
			CourierName:  row.CourierName,
			CourierPhone: row.CourierPhone,
			Amount:       row.Amount,
			Method:       row.Method,
			PhoneUsed:    row.PhoneUsed,
			PaidAt:       row.PaidAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// WebhookAck is the acknowledgment body CinetPay expects.
type WebhookAck struct {
	Result       string `json:"cpm_result"`
	TransID      string `json:"cpm_trans_id"`
	ErrorMessage string `json:"cpm_error_message,omitempty"`
}

// CinetPayWebhook handles POST /api/v1/payments/webhook/cinetpay.
// The gateway redelivers until it gets an OK, so this endpoint always
// answers 200 and folds every outcome into the ack body.
func (s *Server) CinetPayWebhook(ctx echo.Context) error {
	reference := ctx.FormValue("cpm_trans_id")
	pageAction := ctx.FormValue("cpm_page_action")
	errorMessage := ctx.FormValue("cpm_error_message")
	phoneUsed := ctx.FormValue("cel_phone_num")

	cmd := commands.NewProcessGatewayCallbackCommand(reference, pageAction, errorMessage, phoneUsed)

	result := s.gatewayCallbackHandler.Handle(ctx.Request().Context(), cmd)

	ack := WebhookAck{Result: "KO", TransID: reference, ErrorMessage: errorMessage}
	if result.Acknowledged {
		ack.Result = "OK"
		ack.ErrorMessage = ""
	}

	return ctx.JSON(http.StatusOK, ack)
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return value, nil
}
