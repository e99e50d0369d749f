package domain

import "time"

type CarStatus string

const (
	CarStatusActive     CarStatus = "active"
	CarStatusRented     CarStatus = "rented"
	CarStatusUnrepaired CarStatus = "unrepaired"
	CarStatusSold       CarStatus = "sold"
)

type FuelType string

const (
	FuelTypePetrol     FuelType = "petrol"
	FuelTypeElectric   FuelType = "electric"
	FuelTypePetrolGas  FuelType = "petrol_gas"
	FuelTypeMethaneGas FuelType = "methane_gas"
	FuelTypePropaneGas FuelType = "propane_gas"
	FuelTypeDiesel     FuelType = "diesel"
	FuelTypeOther      FuelType = "other"
)

type Car struct {
	ID                 int32     `json:"id"`
	Name               string    `json:"name"`
	CarNumber          string    `json:"car_number"`
	CarYear            int32     `json:"car_year"`
	Information        string    `json:"information"`
	TechPassportNumber string    `json:"tech_passport_number"`
	FuelType           FuelType  `json:"fuel_type"`
	Status             CarStatus `json:"status"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ValidFuelType reports whether s is one of the known fuel types.
func ValidFuelType(s FuelType) bool {
	switch s {
	case FuelTypePetrol, FuelTypeElectric, FuelTypePetrolGas,
		FuelTypeMethaneGas, FuelTypePropaneGas, FuelTypeDiesel, FuelTypeOther:
		return true
	}
	return false
}
