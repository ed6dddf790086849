package entity

import (
	"time"
)

const (
	BookingComplete  = "Complete"
	BookingCancelled = "Cancelled"
)

// Booking is read-only from the dashboard's point of view. RenterRating is
// only meaningful when Rated is true on a Complete booking; that is the sole
// source of a renter's aggregated rating.
type Booking struct {
	ID        string `json:"id" firestore:"id"`
	RenterID  string `json:"renter_id" firestore:"renterId"`
	VehicleID string `json:"vehicle_id" firestore:"vehicleId"`

	Status       string  `json:"status" firestore:"status"`
	Rated        bool    `json:"rated" firestore:"rated"`
	RenterRating float64 `json:"renter_rating,omitempty" firestore:"renterRating,omitempty"`

	TotalPrice float64   `json:"total_price" firestore:"totalPrice"`
	PickupAt   time.Time `json:"pickup_at" firestore:"pickupAt"`
	ReturnAt   time.Time `json:"return_at" firestore:"returnAt"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
