package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"availio-admin/internal/domain/entity"
)

func TestBanIndexReflectsRecords(t *testing.T) {
	ix := NewBanIndex(nil)
	assert.False(t, ix.IsBanned("x"))

	ix = NewBanIndex([]*entity.Ban{{ID: "b1", UserID: "x"}})
	assert.True(t, ix.IsBanned("x"))
	assert.False(t, ix.IsBanned("y"))
}

func TestVerificationStatus(t *testing.T) {
	assert.Equal(t, VerificationPending, VerificationStatus(&entity.User{}))
	assert.Equal(t, VerificationVerified, VerificationStatus(&entity.User{BusinessVerified: true}))
}
