package forms

import (
	"testing"

	"github.com/dmitrijs2005/renewadmin/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestValidator_Client(t *testing.T) {
	v := NewValidator()

	valid := models.Client{
		Name:           "PT Maju",
		Email:          "admin@maju.co.id",
		Phone:          "+62 (21) 555-0101",
		ClientTypeID:   1,
		ClientStatusID: 1,
	}
	assert.Nil(t, v.Fields(valid))

	bad := valid
	bad.Name = ""
	bad.Email = "not-an-email"
	bad.Phone = "0812abc"
	assert.Equal(t, map[string]string{
		"name":  MsgRequired,
		"email": MsgEmail,
		"phone": MsgPhone,
	}, v.Fields(bad))
}

func TestValidator_Service(t *testing.T) {
	v := NewValidator()

	s := models.Service{
		Name:          "Hosting",
		ClientID:      1,
		ServiceTypeID: 2,
		StartDate:     "2024-01-01",
		EndDate:       "01/01/2025",
		NormalPrice:   -1,
		DiscountType:  "bogus",
	}
	assert.Equal(t, map[string]string{
		"end_date":      MsgDate,
		"normal_price":  MsgNegative,
		"discount_type": MsgChoice,
	}, v.Fields(s))
}

func TestValidator_OptionalFields(t *testing.T) {
	v := NewValidator()

	vendor := models.Vendor{Name: "Niagahoster"}
	assert.Nil(t, v.Fields(vendor))

	vendor.Website = "nope"
	vendor.Phone = "x"
	assert.Equal(t, map[string]string{"website": MsgURL, "phone": MsgPhone}, v.Fields(vendor))

	u := models.User{Username: "op", FullName: "Operator", Email: "op@example.com", RoleID: 2, Password: "short"}
	assert.Equal(t, map[string]string{"password": "Minimal 8 karakter"}, v.Fields(u))
}
