package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validContactInput() ContactInput {
	return ContactInput{
		Name:        "Ann",
		Surname:     "Lee",
		Bio:         "hi",
		PhoneNumber: "+12345678901",
		Email:       "ann@x.com",
		CategoryID:  "c1",
	}
}

func TestContactInputValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ContactInput)
		want   []string
	}{
		{"valid", func(*ContactInput) {}, nil},
		{"empty name", func(c *ContactInput) { c.Name = "" }, []string{MsgNameInvalid}},
		{"long name", func(c *ContactInput) { c.Name = strings.Repeat("a", 101) }, []string{MsgNameInvalid}},
		{"name at limit", func(c *ContactInput) { c.Name = strings.Repeat("a", 100) }, nil},
		{"long surname", func(c *ContactInput) { c.Surname = strings.Repeat("a", 101) }, []string{MsgSurnameInvalid}},
		{"empty bio", func(c *ContactInput) { c.Bio = "" }, []string{MsgBioInvalid}},
		{"bio at limit", func(c *ContactInput) { c.Bio = strings.Repeat("b", 250) }, nil},
		{"long bio", func(c *ContactInput) { c.Bio = strings.Repeat("b", 251) }, []string{MsgBioInvalid}},
		{"missing phone", func(c *ContactInput) { c.PhoneNumber = "" }, []string{MsgPhoneRequired}},
		{"short phone", func(c *ContactInput) { c.PhoneNumber = "123456789" }, []string{MsgPhoneFormat}},
		{"long phone", func(c *ContactInput) { c.PhoneNumber = "1234567890123456" }, []string{MsgPhoneFormat}},
		{"phone with letters", func(c *ContactInput) { c.PhoneNumber = "12345abc901" }, []string{MsgPhoneFormat}},
		{"phone without plus", func(c *ContactInput) { c.PhoneNumber = "1234567890" }, nil},
		{"missing email", func(c *ContactInput) { c.Email = nil }, []string{MsgEmailRequired}},
		{"empty email", func(c *ContactInput) { c.Email = "" }, []string{MsgEmailRequired}},
		{"numeric email", func(c *ContactInput) { c.Email = float64(42) }, []string{MsgEmailType}},
		{"email without at", func(c *ContactInput) { c.Email = "annx.com" }, []string{MsgEmailFormat}},
		{"email non ascii", func(c *ContactInput) { c.Email = "änn@x.com" }, []string{MsgEmailFormat}},
		{"email leading digit", func(c *ContactInput) { c.Email = "1ann@x.com" }, []string{MsgEmailFormat}},
		{"email short tld", func(c *ContactInput) { c.Email = "ann@x.c" }, []string{MsgEmailFormat}},
		{"missing category", func(c *ContactInput) { c.CategoryID = "" }, []string{MsgCategoryIDRequired}},
		{
			"everything wrong",
			func(c *ContactInput) { *c = ContactInput{PhoneNumber: "x"} },
			[]string{MsgNameInvalid, MsgSurnameInvalid, MsgBioInvalid, MsgPhoneFormat, MsgEmailRequired, MsgCategoryIDRequired},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validContactInput()
			tt.modify(&in)
			assert.Equal(t, tt.want, in.Validate())
		})
	}
}

func TestCategoryInputValidate(t *testing.T) {
	assert.Nil(t, (&CategoryInput{Name: "Friends"}).Validate())
	assert.Equal(t, []string{MsgNameInvalid}, (&CategoryInput{}).Validate())
	assert.Equal(t, []string{MsgNameInvalid}, (&CategoryInput{Name: strings.Repeat("x", 101)}).Validate())
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("john.smith+tag@example.co.uk"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("john@"))
	assert.False(t, IsValidEmail("john@exämple.com"))
	assert.False(t, IsValidEmail("john@b@example.com"))
}

func TestContactPatchApply(t *testing.T) {
	stored := Contact{ID: "1", Name: "Ann", Address: "Main St", CategoryID: "c1"}
	name := "Anna"
	got := ContactPatch{Name: &name}.Apply(stored)
	assert.Equal(t, "Anna", got.Name)
	assert.Equal(t, "Main St", got.Address)
	assert.Equal(t, "c1", got.CategoryID)
	assert.Equal(t, "1", got.ID)
}

func TestContactInputPatchKeepsOmittedFields(t *testing.T) {
	in := validContactInput()
	p := in.Patch()
	assert.Nil(t, p.Address)
	if assert.NotNil(t, p.Email) {
		assert.Equal(t, "ann@x.com", *p.Email)
	}

	in.CategoryID = ""
	assert.Nil(t, in.Patch().CategoryID)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Errors: []string{MsgEmailRequired, MsgCategoryIDRequired}}
	assert.Equal(t, "validation failed: Email is required; Category ID is required", err.Error())
}
