package service

import (
	"availio-admin/internal/domain/entity"
)

const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
)

// BanIndex is a pre-built set of banned user IDs. Screens render many users
// against the same ban list, so lookups must not rescan the records.
type BanIndex map[string]struct{}

func NewBanIndex(bans []*entity.Ban) BanIndex {
	ix := make(BanIndex, len(bans))
	for _, b := range bans {
		ix[b.UserID] = struct{}{}
	}
	return ix
}

// IsBanned reports whether some ban record references the user.
func (ix BanIndex) IsBanned(userID string) bool {
	_, ok := ix[userID]
	return ok
}

// VerificationStatus reads the user's verification flag; there is no
// derived computation behind it.
func VerificationStatus(u *entity.User) string {
	if u.BusinessVerified {
		return VerificationVerified
	}
	return VerificationPending
}
