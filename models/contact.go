package models

import "time"

// Contact represents a person in the address book.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Bio         string    `json:"bio"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Date        time.Time `json:"date"` // set on creation, never updated
	CategoryID  string    `json:"categoryId"`
}

// ContactInput is used for creating/updating contacts.
//
// Email is decoded as any so that a non-string value can be reported as a
// validation error instead of a decoding failure.
type ContactInput struct {
	Name        string  `json:"name"        example:"Ann"`
	Surname     string  `json:"surname"     example:"Lee"`
	Bio         string  `json:"bio"         example:"hi"`
	PhoneNumber string  `json:"phoneNumber" example:"+12345678901"`
	Email       any     `json:"email"       example:"ann@x.com" swaggertype:"string"`
	Address     *string `json:"address"`
	CategoryID  string  `json:"categoryId"`
}

// ContactPatch holds the fields to merge into an existing contact.
// Nil fields are left untouched.
type ContactPatch struct {
	Name        *string
	Surname     *string
	Bio         *string
	PhoneNumber *string
	Email       *string
	Address     *string
	CategoryID  *string
}

// Apply merges p into c. ID and Date are never changed.
func (p ContactPatch) Apply(c Contact) Contact {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.Name, p.Name)
	set(&c.Surname, p.Surname)
	set(&c.Bio, p.Bio)
	set(&c.PhoneNumber, p.PhoneNumber)
	set(&c.Email, p.Email)
	set(&c.Address, p.Address)
	set(&c.CategoryID, p.CategoryID)
	return c
}

// EmailString returns the email if it was supplied as a string.
func (c *ContactInput) EmailString() string {
	s, _ := c.Email.(string)
	return s
}

// Contact builds the entity to store from a validated input. ID and Date are
// assigned by the store.
func (c *ContactInput) Contact() Contact {
	contact := Contact{
		Name:        c.Name,
		Surname:     c.Surname,
		Bio:         c.Bio,
		PhoneNumber: c.PhoneNumber,
		Email:       c.EmailString(),
		CategoryID:  c.CategoryID,
	}
	if c.Address != nil {
		contact.Address = *c.Address
	}
	return contact
}

// Patch converts a validated input into a patch. An omitted address and an
// empty category keep their stored values.
func (c *ContactInput) Patch() ContactPatch {
	name, surname, bio, phone, email := c.Name, c.Surname, c.Bio, c.PhoneNumber, c.EmailString()
	p := ContactPatch{
		Name:        &name,
		Surname:     &surname,
		Bio:         &bio,
		PhoneNumber: &phone,
		Email:       &email,
		Address:     c.Address,
	}
	if c.CategoryID != "" {
		id := c.CategoryID
		p.CategoryID = &id
	}
	return p
}

// Validate returns every rule the input violates, in field order. It does not
// check that the category exists.
func (c *ContactInput) Validate() []string {
	var errs []string
	if validate.Var(c.Name, "required,max=100") != nil {
		errs = append(errs, MsgNameInvalid)
	}
	if validate.Var(c.Surname, "required,max=100") != nil {
		errs = append(errs, MsgSurnameInvalid)
	}
	if validate.Var(c.Bio, "required,max=250") != nil {
		errs = append(errs, MsgBioInvalid)
	}

	switch {
	case c.PhoneNumber == "":
		errs = append(errs, MsgPhoneRequired)
	case validate.Var(c.PhoneNumber, "contactphone") != nil:
		errs = append(errs, MsgPhoneFormat)
	}

	switch email := c.Email.(type) {
	case nil:
		errs = append(errs, MsgEmailRequired)
	case string:
		if email == "" {
			errs = append(errs, MsgEmailRequired)
		} else if validate.Var(email, "contactemail") != nil {
			errs = append(errs, MsgEmailFormat)
		}
	default:
		errs = append(errs, MsgEmailType)
	}

	if c.CategoryID == "" {
		errs = append(errs, MsgCategoryIDRequired)
	}
	return errs
}
