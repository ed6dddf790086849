package entity

import (
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
	RoleRenter Role = "renter"
)

// ParseRole maps the raw role field written by the client app onto the
// closed role set. The app stores "Owner" for suppliers and "admin" for
// dashboard accounts; renters have no role field at all. Resolution happens
// once here, at the mapping boundary, never downstream.
func ParseRole(raw string) Role {
	switch raw {
	case "admin":
		return RoleAdmin
	case "Owner":
		return RoleOwner
	default:
		return RoleRenter
	}
}

type User struct {
	ID   string `json:"id" firestore:"id"`
	Role Role   `json:"role" firestore:"role"`

	BusinessName string `json:"business_name,omitempty" firestore:"businessName,omitempty"`
	FirstName    string `json:"first_name,omitempty" firestore:"firstName,omitempty"`
	LastName     string `json:"last_name,omitempty" firestore:"lastName,omitempty"`
	UserName     string `json:"user_name,omitempty" firestore:"userName,omitempty"`
	DisplayName  string `json:"display_name,omitempty" firestore:"displayName,omitempty"`

	Email         string `json:"email,omitempty" firestore:"email,omitempty"`
	BusinessEmail string `json:"business_email,omitempty" firestore:"businessEmail,omitempty"`
	Phone         string `json:"phone,omitempty" firestore:"phone,omitempty"`

	BusinessProfile string `json:"business_profile,omitempty" firestore:"businessProfile,omitempty"`
	PersonalProfile string `json:"personal_profile,omitempty" firestore:"personalProfile,omitempty"`
	PhotoURL        string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`

	VerificationDocs map[string]string `json:"verification_docs,omitempty" firestore:"verificationDocs,omitempty"`
	BusinessVerified bool              `json:"business_verified" firestore:"businessVerified"`

	WalletBalance   float64 `json:"wallet_balance,omitempty" firestore:"walletBalance,omitempty"`
	BusinessAddress string  `json:"business_address,omitempty" firestore:"businessAddress,omitempty"`
	BusinessLat     float64 `json:"business_lat,omitempty" firestore:"businessLat,omitempty"`
	BusinessLng     float64 `json:"business_lng,omitempty" firestore:"businessLng,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// DisplayLabel resolves the user's display name: business name first, then
// legal name, then username, then the auth display name.
func (u *User) DisplayLabel() string {
	if u.BusinessName != "" {
		return u.BusinessName
	}
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.UserName != "" {
		return u.UserName
	}
	return u.DisplayName
}

// ContactEmail prefers the personal email over the business one.
func (u *User) ContactEmail() string {
	if u.Email != "" {
		return u.Email
	}
	return u.BusinessEmail
}
