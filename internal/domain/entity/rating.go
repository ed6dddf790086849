package entity

import (
	"time"
)

// Rating is one review in a vehicle's or owner's ratings subcollection.
// Scores are expected in the 1-5 range but never validated on write, so
// consumers must tolerate anything the client app stored.
type Rating struct {
	ID      string  `json:"id" firestore:"id"`
	UserID  string  `json:"user_id" firestore:"userId"`
	Score   float64 `json:"rating" firestore:"rating"`
	Comment string  `json:"comment,omitempty" firestore:"comment,omitempty"`

	// Author identity resolved at read time from the users collection,
	// never stored alongside the rating.
	UserName  string `json:"user_name,omitempty" firestore:"-"`
	UserEmail string `json:"user_email,omitempty" firestore:"-"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
