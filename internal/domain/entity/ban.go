package entity

import (
	"time"
)

// Ban is an append-only moderation record. A user is banned iff a record
// referencing their ID exists; there is no mutable flag to drift out of
// sync, and no unban operation.
type Ban struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"user_id" firestore:"userId"`

	// Snapshots taken at ban time so the record stays readable after the
	// user's vehicles (and potentially profile) are gone.
	UserEmail string `json:"user_email,omitempty" firestore:"userEmail,omitempty"`
	UserName  string `json:"user_name,omitempty" firestore:"userName,omitempty"`

	Reason   string    `json:"reason" firestore:"reason"`
	Status   string    `json:"status" firestore:"status"`
	BannedAt time.Time `json:"banned_at" firestore:"bannedAt"`
}
