package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleOwner, ParseRole("Owner"))
	assert.Equal(t, RoleRenter, ParseRole(""))
	assert.Equal(t, RoleRenter, ParseRole("owner")) // the app writes "Owner", case matters
}

func TestDisplayLabelPriority(t *testing.T) {
	u := &User{BusinessName: "Acme", FirstName: "Ana", LastName: "Cruz", UserName: "ana", DisplayName: "AC"}
	assert.Equal(t, "Acme", u.DisplayLabel())

	u.BusinessName = ""
	assert.Equal(t, "Ana Cruz", u.DisplayLabel())

	u.FirstName = ""
	assert.Equal(t, "ana", u.DisplayLabel())

	u.UserName = ""
	assert.Equal(t, "AC", u.DisplayLabel())
}

func TestContactEmailPriority(t *testing.T) {
	u := &User{Email: "a@x.com", BusinessEmail: "biz@x.com"}
	assert.Equal(t, "a@x.com", u.ContactEmail())

	u.Email = ""
	assert.Equal(t, "biz@x.com", u.ContactEmail())
}
