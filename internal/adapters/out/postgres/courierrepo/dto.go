// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
package courierrepo

import (
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/courier"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
type CourierDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"size:128"`
	Phone      string    `gorm:"size:32"`
	Email      string    `gorm:"size:128"`
	Status     string    `gorm:"size:16;index"`
	Vehicle    string    `gorm:"size:16"`
	Lat        *float64
	Lng        *float64
	Online     bool
	LastSeenAt *time.Time
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Phone:      aggregate.Phone(),
		Email:      aggregate.Email(),
		Status:     aggregate.Status().String(),
		Vehicle:    aggregate.Vehicle().String(),
		Online:     aggregate.IsOnline(),
		LastSeenAt: aggregate.LastSeenAt(),
	}

	if pos := aggregate.Position(); pos != nil {
		lat, lng := pos.Latitude(), pos.Longitude()
		dto.Lat = &lat
		dto.Lng = &lng
	}

	return dto
}

// toDomain converts a database DTO to a courier domain aggregate using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := courier.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	vehicle, err := courier.VehicleTypeFromString(dto.Vehicle)
	if err != nil {
		return nil, err
	}

	var position *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		pos, posErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if posErr != nil {
			return nil, posErr
		}
		position = &pos
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		dto.Phone,
		dto.Email,
		status,
		vehicle,
		position,
		dto.Online,
		dto.LastSeenAt,
	)
}
