// Package paymentrepo provides data transfer objects and mapping functions for
// payment row persistence. Each row carries the courier snapshot and the day
// audit stamps rewritten by the reconciliation pass.
package paymentrepo

import (
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment rows.
type PaymentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference string    `gorm:"uniqueIndex;size:32"`

	CourierID    uuid.UUID `gorm:"type:uuid;index"`
	CourierName  string    `gorm:"size:128"`
	CourierPhone string    `gorm:"size:32"`

	Amount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Method    string          `gorm:"size:16"`
	PhoneUsed string          `gorm:"size:32"`
	Status    string          `gorm:"size:16;index"`

	PaidOn time.Time `gorm:"type:date;index"`
	PaidAt time.Time

	Description    string `gorm:"size:512"`
	GatewayMessage string `gorm:"size:512"`

	AmountDueForDay decimal.Decimal `gorm:"type:numeric(12,2)"`
	RemainingForDay decimal.Decimal `gorm:"type:numeric(12,2)"`
	Arrears         decimal.Decimal `gorm:"type:numeric(12,2)"`
	DaySettlement   string          `gorm:"size:16"`
}

// TableName specifies the database table name for payment rows.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:              aggregate.ID().Bytes(),
		Reference:       aggregate.Reference(),
		CourierID:       aggregate.CourierID().Bytes(),
		CourierName:     aggregate.CourierName(),
		CourierPhone:    aggregate.CourierPhone(),
		Amount:          aggregate.Amount().Amount(),
		Method:          aggregate.Method().String(),
		PhoneUsed:       aggregate.PhoneUsed(),
		Status:          aggregate.Status().String(),
		PaidOn:          aggregate.PaidOn().ToTime(),
		PaidAt:          aggregate.PaidAt(),
		Description:     aggregate.Description(),
		GatewayMessage:  aggregate.GatewayMessage(),
		AmountDueForDay: aggregate.AmountDueForDay().Amount(),
		RemainingForDay: aggregate.RemainingForDay().Amount(),
		Arrears:         aggregate.Arrears().Amount(),
		DaySettlement:   aggregate.DaySettlement().String(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	settlement, err := payment.SettlementFromString(dto.DaySettlement)
	if err != nil {
		return nil, err
	}

	due, err := kernel.NewMoney(dto.AmountDueForDay)
	if err != nil {
		return nil, err
	}

	remaining, err := kernel.NewMoney(dto.RemainingForDay)
	if err != nil {
		return nil, err
	}

	arrears, err := kernel.NewMoney(dto.Arrears)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		dto.Reference,
		courierID,
		dto.CourierName,
		dto.CourierPhone,
		amount,
		method,
		dto.PhoneUsed,
		status,
		kernel.DateOf(dto.PaidOn),
		dto.PaidAt,
		dto.Description,
		dto.GatewayMessage,
		due,
		remaining,
		arrears,
		settlement,
	)
}
