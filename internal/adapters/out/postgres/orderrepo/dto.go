// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Sender, recipient, package and the courier snapshot are flattened into the
// orders table; the status and courier columns are indexed for the courier
// marketplace queries.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference string    `gorm:"uniqueIndex;size:32"`

	Sender    SenderDTO    `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	Package   PackageDTO   `gorm:"embedded;embeddedPrefix:package_"`

	Fee    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status string          `gorm:"size:16;index"`

	CourierID    *uuid.UUID `gorm:"type:uuid;index"`
	CourierName  string     `gorm:"size:128"`
	CourierPhone string     `gorm:"size:32"`
	CourierEmail string     `gorm:"size:128"`
	CourierLat   *float64
	CourierLng   *float64

	ConfirmationCode string `gorm:"size:8"`

	CreatedAt   time.Time
	AcceptedAt  *time.Time
	PickedUpAt  *time.Time
	TransitAt   *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// SenderDTO holds the sender contact columns embedded in the order row.
type SenderDTO struct {
	Name           string `gorm:"size:128"`
	Phone          string `gorm:"size:32"`
	Email          string `gorm:"size:128"`
	AlternatePhone string `gorm:"size:32"`
	PickupAddress  string `gorm:"size:256"`
	PickupLat      *float64
	PickupLng      *float64
}

// RecipientDTO holds the recipient contact and destination columns.
type RecipientDTO struct {
	Name    string `gorm:"size:128"`
	Phone   string `gorm:"size:32"`
	Email   string `gorm:"size:128"`
	Address string `gorm:"size:256"`
	Lat     float64
	Lng     float64
}

// PackageDTO holds the package description columns.
type PackageDTO struct {
	Category    string `gorm:"size:16"`
	Nature      string `gorm:"size:16"`
	Label       string `gorm:"size:128"`
	Description string `gorm:"size:512"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:        aggregate.ID().Bytes(),
		Reference: aggregate.Reference(),
		Sender: SenderDTO{
			Name:           aggregate.Sender().Name(),
			Phone:          aggregate.Sender().Phone(),
			Email:          aggregate.Sender().Email(),
			AlternatePhone: aggregate.Sender().AlternatePhone(),
			PickupAddress:  aggregate.Sender().PickupAddress(),
		},
		Recipient: RecipientDTO{
			Name:    aggregate.Recipient().Name(),
			Phone:   aggregate.Recipient().Phone(),
			Email:   aggregate.Recipient().Email(),
			Address: aggregate.Recipient().Address(),
			Lat:     aggregate.Recipient().Geo().Latitude(),
			Lng:     aggregate.Recipient().Geo().Longitude(),
		},
		Package: PackageDTO{
			Category:    aggregate.Package().Category().String(),
			Nature:      aggregate.Package().Nature().String(),
			Label:       aggregate.Package().Label(),
			Description: aggregate.Package().Description(),
		},
		Fee:              aggregate.Fee().Amount(),
		Status:           aggregate.Status().String(),
		ConfirmationCode: aggregate.ConfirmationCode(),
		CreatedAt:        aggregate.CreatedAt(),
		AcceptedAt:       aggregate.AcceptedAt(),
		PickedUpAt:       aggregate.PickedUpAt(),
		TransitAt:        aggregate.TransitAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		CancelledAt:      aggregate.CancelledAt(),
	}

	if geo := aggregate.Sender().PickupGeo(); geo != nil {
		lat, lng := geo.Latitude(), geo.Longitude()
		dto.Sender.PickupLat = &lat
		dto.Sender.PickupLng = &lng
	}

	if snapshot := aggregate.Courier(); snapshot != nil {
		courierID := snapshot.ID().Bytes()
		dto.CourierID = &courierID
		dto.CourierName = snapshot.Name()
		dto.CourierPhone = snapshot.Phone()
		dto.CourierEmail = snapshot.Email()

		if pos := snapshot.Position(); pos != nil {
			lat, lng := pos.Latitude(), pos.Longitude()
			dto.CourierLat = &lat
			dto.CourierLng = &lng
		}
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var pickupGeo *kernel.GeoPoint
	if dto.Sender.PickupLat != nil && dto.Sender.PickupLng != nil {
		geo, geoErr := kernel.NewGeoPoint(*dto.Sender.PickupLat, *dto.Sender.PickupLng)
		if geoErr != nil {
			return nil, geoErr
		}
		pickupGeo = &geo
	}

	sender, err := order.NewSender(
		dto.Sender.Name,
		dto.Sender.Phone,
		dto.Sender.Email,
		dto.Sender.AlternatePhone,
		dto.Sender.PickupAddress,
		pickupGeo,
	)
	if err != nil {
		return nil, err
	}

	recipientGeo, err := kernel.NewGeoPoint(dto.Recipient.Lat, dto.Recipient.Lng)
	if err != nil {
		return nil, err
	}

	recipient, err := order.NewRecipient(
		dto.Recipient.Name,
		dto.Recipient.Phone,
		dto.Recipient.Email,
		dto.Recipient.Address,
		recipientGeo,
	)
	if err != nil {
		return nil, err
	}

	category, err := order.CategoryFromString(dto.Package.Category)
	if err != nil {
		return nil, err
	}

	nature, err := order.NatureFromString(dto.Package.Nature)
	if err != nil {
		return nil, err
	}

	pkg, err := order.NewPackage(category, nature, dto.Package.Label, dto.Package.Description)
	if err != nil {
		return nil, err
	}

	fee, err := kernel.NewMoney(dto.Fee)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var snapshot *order.CourierInfo
	if dto.CourierID != nil {
		courierID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		var position *kernel.GeoPoint
		if dto.CourierLat != nil && dto.CourierLng != nil {
			pos, posErr := kernel.NewGeoPoint(*dto.CourierLat, *dto.CourierLng)
			if posErr != nil {
				return nil, posErr
			}
			position = &pos
		}

		info, infoErr := order.NewCourierInfo(courierID, dto.CourierName, dto.CourierPhone, dto.CourierEmail, position)
		if infoErr != nil {
			return nil, infoErr
		}
		snapshot = &info
	}

	return order.RestoreOrder(
		id,
		dto.Reference,
		sender,
		recipient,
		pkg,
		fee,
		status,
		snapshot,
		dto.ConfirmationCode,
		dto.CreatedAt,
		dto.AcceptedAt,
		dto.PickedUpAt,
		dto.TransitAt,
		dto.DeliveredAt,
		dto.CancelledAt,
	)
}
