package entity

import (
	"time"
)

type Vehicle struct {
	ID      string `json:"id" firestore:"id"`
	OwnerID string `json:"owner_id" firestore:"ownerId"`

	Name             string `json:"name" firestore:"name"`
	Brand            string `json:"brand" firestore:"brand"`
	Model            string `json:"model" firestore:"model"`
	VehicleType      string `json:"vehicle_type" firestore:"vehicleType"`
	FuelType         string `json:"fuel_type" firestore:"fuelType"`
	TransmissionType string `json:"transmission_type" firestore:"transmissionType"`
	CCHP             string `json:"cchp,omitempty" firestore:"cchp,omitempty"`

	PricePerDay float64 `json:"price_per_day" firestore:"pricePerDay"`
	Location    string  `json:"location" firestore:"location"`

	DefaultImg string   `json:"default_img,omitempty" firestore:"defaultImg,omitempty"`
	Images     []string `json:"images,omitempty" firestore:"images,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// CoverImage falls back to the first gallery image when no default is set.
func (v *Vehicle) CoverImage() string {
	if v.DefaultImg != "" {
		return v.DefaultImg
	}
	if len(v.Images) > 0 {
		return v.Images[0]
	}
	return ""
}
