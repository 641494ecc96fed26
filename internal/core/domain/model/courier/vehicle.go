package courier

import (
	"fmt"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// VehicleType is the kind of vehicle a courier rides. It is informational
// for dispatch and support, no routing rule depends on it.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota
	// VehicleMoto is a motorbike, the default for the fleet.
	VehicleMoto
	// VehicleCar is a passenger car.
	VehicleCar
	// VehicleVan is a delivery van.
	VehicleVan
	// VehicleBike is a bicycle.
	VehicleBike
)

func getVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		VehicleMoto: "moto",
		VehicleCar:  "car",
		VehicleVan:  "van",
		VehicleBike: "bike",
	}
}

// VehicleTypeFromString parses the persistence representation of a
// vehicle type. An empty string resolves to the default moto.
func VehicleTypeFromString(s string) (VehicleType, error) {
	if s == "" {
		return VehicleMoto, nil
	}
	for vehicle, str := range getVehicleTypeStrings() {
		if str == s {
			return vehicle, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle type is invalid",
		fmt.Errorf("%q is not a valid vehicle type", s),
	)
}

// Validate checks if the VehicleType value is valid.
func (v VehicleType) Validate() error {
	if _, ok := getVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type is invalid", fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the persistence name of the vehicle type.
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "unknown"
}
